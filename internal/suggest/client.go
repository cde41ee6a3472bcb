// Package suggest asks a generative-text API for a color matching a
// free-text theme or mood.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/ratelimit"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1"
	DefaultModel    = "gemini-pro"
	DefaultTimeout  = 30 * time.Second

	// Outbound budget shared by all callers of a client.
	DefaultRequestsPerMinute = 30

	apiKeyHeader    = "x-goog-api-key"
	limiterKey      = "upstream"
	maxResponseSize = 1 << 20
)

// hexPattern is the only accepted reply shape.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config configures a Client.
type Config struct {
	Endpoint          string
	Model             string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Client is a rate-limited generative-text client. Each Suggest call makes
// exactly one request; there is no retry and no deduplication.
type Client struct {
	http     *http.Client
	endpoint string
	model    string
	apiKey   string
	limiter  *ratelimit.KeyedRateLimiter
	logger   *slog.Logger
}

// New creates a client. Zero config fields take their defaults.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		limiter:  ratelimit.PerMinute(cfg.RequestsPerMinute),
		logger:   logger,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// Shutdown implements do.Shutdowner.
func (c *Client) Shutdown() error {
	c.Close()
	return nil
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Instruction wraps a user prompt in the request sent upstream.
func Instruction(prompt string) string {
	return `Generate a single hexadecimal color code that best represents this theme or mood: "` + prompt +
		`". Only respond with the hex code, nothing else. Format should be: #RRGGBB`
}

// Suggest returns a "#RRGGBB" color for prompt, exactly as the model wrote
// it after trimming whitespace.
func (c *Client) Suggest(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domainerrors.Validation("Please enter a description")
	}
	if !c.Configured() {
		return "", domainerrors.Validation("suggestion credential not configured")
	}

	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return "", domainerrors.RateLimited("suggestion budget exhausted").WithCause(err)
	}

	body, err := c.doRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	hex, err := parseResponse(body)
	if err != nil {
		c.logger.Warn("unexpected suggestion response", "error", err)
		return "", err
	}

	c.logger.Debug("suggestion resolved", "model", c.model, "hex", hex)
	return hex, nil
}

func (c *Client) url() string {
	return c.endpoint + "/models/" + c.model + ":generateContent"
}

// doRequest posts the prompt and returns the raw response body.
func (c *Client) doRequest(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: Instruction(prompt)}}}},
	})
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(payload))
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Hueforge/1.0")
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.Debug("suggestion request", "model", c.model)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerrors.NetworkFailure(err, "suggestion request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, domainerrors.NetworkFailure(err, "read suggestion response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domainerrors.NetworkFailure(
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200)),
			"suggestion request rejected",
		)
	}
	return body, nil
}

// parseResponse extracts the first text part of the first candidate.
func parseResponse(body []byte) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeUnexpectedResponse, "decode suggestion response")
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 ||
		resp.Candidates[0].Content.Parts[0].Text == nil {
		return "", domainerrors.UnexpectedResponse("suggestion response has no candidate text")
	}

	hex := strings.TrimSpace(*resp.Candidates[0].Content.Parts[0].Text)
	if !hexPattern.MatchString(hex) {
		return "", domainerrors.UnexpectedResponsef("Invalid color format received: %q", truncate(hex, 40))
	}
	return hex, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Wire types.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
