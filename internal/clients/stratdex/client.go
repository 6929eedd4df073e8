// Package stratdex is the client for the strategy dex RPC endpoints
package stratdex

//go:generate mockgen -destination=mock/mock_client.go -package=stratdexmock github.com/KirkDiggler/strat-dex/internal/clients/stratdex Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/strat-dex/internal/entities/dex"
	"github.com/KirkDiggler/strat-dex/internal/errors"
)

// Endpoint names, appended to the base URL
const (
	EndpointBasics  = "dump-basics"
	EndpointPokemon = "dump-pokemon"
	EndpointFormat  = "dump-format"
)

const (
	defaultBaseURL     = "https://www.smogon.com/dex/_rpc"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "strat-dex"

	// how much of a failed response body ends up in the error message
	errorBodyLimit = 512
)

// Client defines the interface for strategy dex lookups. Every call goes to
// the network; nothing is cached.
type Client interface {
	// GetBasics fetches the bulk listing of pokemon, formats, natures,
	// abilities, moves, types and items for a generation
	GetBasics(ctx context.Context, gen dex.Generation) (*dex.BasicsResponse, error)

	// GetPokemon fetches the strategies of one pokemon by alias, e.g. "great-tusk"
	GetPokemon(ctx context.Context, gen dex.Generation, alias string) (*dex.PokemonResponse, error)

	// GetFormat fetches a format description by alias, e.g. "ou"
	GetFormat(ctx context.Context, gen dex.Generation, alias string) (*dex.FormatResponse, error)
}

// Config contains configuration options for the client
type Config struct {
	// BaseURL of the RPC endpoints (optional, defaults to https://www.smogon.com/dex/_rpc)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 30 seconds). Ignored when HTTPClient is set.
	HTTPTimeout time.Duration
	// HTTPClient overrides the client used to send requests (optional)
	HTTPClient *http.Client
	// UserAgent sent with each request (optional)
	UserAgent string
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	vb := errors.NewValidationBuilder()
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Fieldf("BaseURL", "must be an http(s) URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a new strategy dex client with the given configuration
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetBasics(ctx context.Context, gen dex.Generation) (*dex.BasicsResponse, error) {
	req := &dex.BasicsRequest{
		Gen:      gen,
		Language: dex.LanguageEnglish,
	}

	var resp dex.BasicsResponse
	if err := c.post(ctx, EndpointBasics, req, &resp); err != nil {
		return nil, err.WithMeta("generation", gen.Code())
	}
	return &resp, nil
}

func (c *client) GetPokemon(ctx context.Context, gen dex.Generation, alias string) (*dex.PokemonResponse, error) {
	req := &dex.DetailRequest{
		Gen:      gen,
		Alias:    alias,
		Language: dex.LanguageEnglish,
	}

	var resp dex.PokemonResponse
	if err := c.post(ctx, EndpointPokemon, req, &resp); err != nil {
		return nil, err.WithMeta("generation", gen.Code()).WithMeta("alias", alias)
	}
	return &resp, nil
}

func (c *client) GetFormat(ctx context.Context, gen dex.Generation, alias string) (*dex.FormatResponse, error) {
	req := &dex.DetailRequest{
		Gen:      gen,
		Alias:    alias,
		Language: dex.LanguageEnglish,
	}

	var resp dex.FormatResponse
	if err := c.post(ctx, EndpointFormat, req, &resp); err != nil {
		return nil, err.WithMeta("generation", gen.Code()).WithMeta("alias", alias)
	}
	return &resp, nil
}

// post sends body as JSON to the endpoint and decodes the JSON reply into out.
// Every failure is returned as UNAVAILABLE with the endpoint in its metadata.
func (c *client) post(ctx context.Context, endpoint string, body, out interface{}) *errors.Error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to encode %s request", endpoint).
			WithMeta("endpoint", endpoint)
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to build %s request", endpoint).
			WithMeta("endpoint", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "%s request failed", endpoint).
			WithMeta("endpoint", endpoint)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully consumed or abandoned
	}()

	slog.DebugContext(ctx, "strategy dex request completed",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return errors.Unavailablef("%s: unexpected status %d: %s",
			endpoint, resp.StatusCode, strings.TrimSpace(string(snippet))).
			WithMeta("endpoint", endpoint).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to decode %s response", endpoint).
			WithMeta("endpoint", endpoint)
	}

	return nil
}

// IsFetchError reports whether err is a failed remote call from this client
func IsFetchError(err error) bool {
	if !errors.IsUnavailable(err) {
		return false
	}
	_, ok := errors.GetMeta(err)["endpoint"]
	return ok
}
