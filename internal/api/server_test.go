package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/service"
)

// fakeSuggester returns a fixed color or error.
type fakeSuggester struct {
	hex        string
	err        error
	configured bool
	prompts    []string
}

func (f *fakeSuggester) Suggest(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.hex, nil
}

func (f *fakeSuggester) Configured() bool {
	return f.configured
}

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api       humatest.TestAPI
	suggester *fakeSuggester
}

// envelope mirrors response.Envelope with raw data for decoding.
type envelope struct {
	Version int             `json:"v"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details"`
}

// setupTestServer creates a server over the builtin catalog.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithOptions(t, Options{SuggestionsPerMinute: 100})
}

func setupTestServerWithOptions(t *testing.T, opts Options) *testServer {
	t.Helper()

	log := logger.Discard().Logger

	store, err := palette.NewStore("", log)
	require.NoError(t, err)
	index, err := palette.NewIndex(store.Catalog(), log)
	require.NoError(t, err)

	suggester := &fakeSuggester{hex: "#336699", configured: true}
	services := service.New(store, index, suggester, log)

	s := NewServer(services, opts, log)
	t.Cleanup(func() {
		_ = s.Shutdown()
		_ = index.Close()
	})

	return &testServer{
		Server:    s,
		api:       humatest.Wrap(t, s.API()),
		suggester: suggester,
	}
}

// decode parses an envelope and, when out is non-nil, its data.
func decode(t *testing.T, resp *httptest.ResponseRecorder, out any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env), resp.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
