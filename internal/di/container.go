// Package di provides dependency injection configuration for the Hueforge API server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/hueforge/hueforge/internal/api"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/di/providers"
	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/service"
	"github.com/hueforge/hueforge/internal/suggest"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line arguments without the program name.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ConfigProvider(args))
	do.Provide(injector, providers.ProvideLogger)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalogStore)
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Outbound clients
	do.Provide(injector, providers.ProvideSuggestClient)

	// Business services
	do.Provide(injector, providers.ProvideServices)

	// Server
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the HTTP server is
// listening in the background.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*palette.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.SearchIndexHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.CatalogWatcherHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*suggest.Client](injector)
	_ = do.MustInvoke[*service.Services](injector)
	_ = do.MustInvoke[*api.Server](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
