package suggest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)

	client := New(Config{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
	}, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
	client.http = server.Client()

	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client, server
}

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})
	return string(b)
}

func TestClient_SuggestRequestShape(t *testing.T) {
	var gotPath, gotKey, gotMethod string
	var gotBody generateRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotKey = r.Header.Get("x-goog-api-key")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_, _ = io.WriteString(w, candidateBody("#6A5ACD"))
	})

	hex, err := client.Suggest(context.Background(), "  calm twilight  ")
	require.NoError(t, err)
	assert.Equal(t, "#6A5ACD", hex)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/models/gemini-pro:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, Instruction("calm twilight"), gotBody.Contents[0].Parts[0].Text)
}

func TestClient_Suggest(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   string
		want       string
		wantErr    error
	}{
		{
			name:       "trims whitespace",
			statusCode: http.StatusOK,
			response:   candidateBody("  #a1b2c3\n"),
			want:       "#a1b2c3",
		},
		{
			name:       "prose instead of hex",
			statusCode: http.StatusOK,
			response:   candidateBody("Sure! Here is a color: #a1b2c3"),
			wantErr:    domainerrors.ErrUnexpectedResponse,
		},
		{
			name:       "short hex",
			statusCode: http.StatusOK,
			response:   candidateBody("#abc"),
			wantErr:    domainerrors.ErrUnexpectedResponse,
		},
		{
			name:       "no candidates",
			statusCode: http.StatusOK,
			response:   `{"candidates": []}`,
			wantErr:    domainerrors.ErrUnexpectedResponse,
		},
		{
			name:       "missing text",
			statusCode: http.StatusOK,
			response:   `{"candidates": [{"content": {"parts": [{}]}}]}`,
			wantErr:    domainerrors.ErrUnexpectedResponse,
		},
		{
			name:       "not json",
			statusCode: http.StatusOK,
			response:   `<html>oops</html>`,
			wantErr:    domainerrors.ErrUnexpectedResponse,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			response:   `{"error": "boom"}`,
			wantErr:    domainerrors.ErrNetworkFailure,
		},
		{
			name:       "rejected credential",
			statusCode: http.StatusForbidden,
			response:   `{"error": {"code": 403}}`,
			wantErr:    domainerrors.ErrNetworkFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = io.WriteString(w, tt.response)
			})

			got, err := client.Suggest(context.Background(), "forest at dawn")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_SuggestEmptyPrompt(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.False(t, called, "no request for an empty prompt")
}

func TestClient_SuggestWithoutCredential(t *testing.T) {
	client := New(Config{Endpoint: "http://127.0.0.1:0"}, nil)
	defer client.Close()

	assert.False(t, client.Configured())
	_, err := client.Suggest(context.Background(), "sunset")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestClient_SuggestTransportFailure(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Suggest(context.Background(), "sunset")
	assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}

func TestInstruction(t *testing.T) {
	assert.Equal(t,
		`Generate a single hexadecimal color code that best represents this theme or mood: "ocean calm". Only respond with the hex code, nothing else. Format should be: #RRGGBB`,
		Instruction("ocean calm"))
}
