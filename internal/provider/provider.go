// Package provider implements the backend adapters that translate chat
// requests into each provider family's wire format.
//
// Every adapter satisfies Generator; the resolution engine depends only
// on the interface, so adapters can be swapped or stubbed in tests. All
// adapter failures are *Error values: missing credentials fail
// immediately with no network call, and HTTP calls are bounded by the
// shared client timeout and cancelled with the request context.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/workmate-ai/gateway/internal/config"
	"github.com/workmate-ai/gateway/pkg/models"
)

// Generator produces a textual answer for a persona's system prompt,
// the latest user message, and optional canonical history.
type Generator interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error)
}

// Error is the failure type for all backend adapters: missing
// credential, transport failure, non-2xx status, or a response missing
// the expected text field. The engine recovers from every Error by
// falling back; it is never surfaced to callers.
type Error struct {
	Provider string
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// FromConfig returns the Generator for the process-wide provider
// selection, or nil when the selection is mock (no backend is ever
// called for mock).
func FromConfig(cfg *config.Config) Generator {
	client := &http.Client{Timeout: cfg.RequestTimeout}

	switch cfg.Provider {
	case models.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI, client)
	case models.ProviderGroq:
		return NewGroq(cfg.Groq, client)
	case models.ProviderAnthropic:
		return NewAnthropic(cfg.Anthropic, client)
	case models.ProviderGoogle:
		return NewGoogle(cfg.Google, client)
	case models.ProviderLocal:
		return NewOllama(cfg.Local, client)
	}
	return nil
}

// statusReason formats a non-2xx response into an error reason. The
// body is truncated; it is logged server-side only, never echoed to
// callers.
func statusReason(code int, body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 256 {
		s = s[:256]
	}
	if s == "" {
		return fmt.Sprintf("status %d", code)
	}
	return fmt.Sprintf("status %d: %s", code, s)
}
