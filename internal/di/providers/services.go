package providers

import (
	"github.com/samber/do/v2"

	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/service"
	"github.com/hueforge/hueforge/internal/suggest"
)

// ProvideSuggestClient provides the generative-text client.
func ProvideSuggestClient(i do.Injector) (*suggest.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := suggest.New(suggest.Config{
		Endpoint:          cfg.Suggest.Endpoint,
		Model:             cfg.Suggest.Model,
		APIKey:            cfg.Suggest.APIKey,
		Timeout:           cfg.Suggest.Timeout,
		RequestsPerMinute: cfg.Suggest.RequestsPerMinute,
	}, log.Logger)

	if !client.Configured() {
		log.Warn("Suggestion credential not configured; suggestions are disabled",
			"env", config.EnvSuggestAPIKey,
		)
	}

	return client, nil
}

// ProvideServices provides the business services.
func ProvideServices(i do.Injector) (*service.Services, error) {
	store := do.MustInvoke[*palette.Store](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	client := do.MustInvoke[*suggest.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.New(store, indexHandle.Index, client, log.Logger), nil
}
