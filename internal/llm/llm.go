// Package llm provides the Ollama chat client used to judge page state.
//
// The client is stateless per call and safe to share read-only across all
// concurrent site checks. The orchestrator never talks to it directly; it is
// passed opaquely into the agent client.
package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
)

// Config holds the recognized LLM options: model identifier, context window
// size, and response timeout. The timeout is connection-level; it is the only
// per-check time bound in the system.
type Config struct {
	// Model is the Ollama model identifier.
	Model string

	// Host is the Ollama server base URL.
	Host string

	// NumCtx is the context window size requested from the model.
	NumCtx int

	// Timeout bounds a single chat round-trip.
	Timeout time.Duration
}

// Client is a thin wrapper around the Ollama API client carrying the
// configured model and options.
type Client struct {
	api *api.Client
	cfg Config
}

// NewClient constructs an Ollama client from the configuration.
// Returns an error wrapped with ErrLLMSetup if the host URL is invalid.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, scouterrors.Wrapf(scouterrors.ErrLLMSetup, "parsing host %q", cfg.Host)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, scouterrors.Wrapf(scouterrors.ErrLLMSetup, "host %q must be an absolute URL", cfg.Host)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		api: api.NewClient(base, httpClient),
		cfg: cfg,
	}, nil
}

// Complete sends a single-turn chat request and returns the model's full
// text response. Streaming is disabled; the agent needs the complete verdict
// object, not incremental tokens.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.cfg.Model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]any{
			"num_ctx": c.cfg.NumCtx,
		},
	}

	var sb strings.Builder
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", scouterrors.Wrapf(err, "chat with model %s", c.cfg.Model)
	}

	return sb.String(), nil
}
