// Package groq builds the language-model client used by the convert
// endpoint.  Groq exposes an OpenAI-compatible API, so the client is the
// openai-go SDK pointed at Groq's base URL.
package groq

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/iliyamo/tone-converter/internal/config"
)

// Client is constructed once at startup and shared read-only by every
// request.  A Client without an API key is valid; calls made through it
// would be rejected by the provider, which is why Configured exists.  The
// SDK handle in api is kept for the real conversion stage; the placeholder
// conversion does not call it.
type Client struct {
	api     *openai.Client
	model   string
	baseURL string
	hasKey  bool
}

// New builds a Client from cfg.  It never fails: a missing key is reported
// through Configured so the caller can decide how loudly to warn.
func New(cfg config.GroqConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGroqBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	api := openai.NewClient(opts...)
	return &Client{
		api:     &api,
		model:   cfg.Model,
		baseURL: baseURL,
		hasKey:  cfg.APIKey != "",
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool { return c != nil && c.hasKey }

// Model returns the model name requests would be sent to.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}
