// Package chat implements the response resolution engine: it validates
// a chat request, selects the configured provider adapter, and
// guarantees a usable textual answer by substituting the deterministic
// fallback responder whenever the backend is unconfigured, unreachable,
// or erroring.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/workmate-ai/gateway/internal/agents"
	"github.com/workmate-ai/gateway/internal/fallback"
	"github.com/workmate-ai/gateway/internal/provider"
	"github.com/workmate-ai/gateway/pkg/models"
)

var tracer = otel.Tracer("workmate-gateway/chat")

// BadRequestError marks caller input missing required fields. It is
// terminal: no fallback is attempted for malformed requests.
type BadRequestError struct {
	Field string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Engine resolves chat requests. It holds no cross-request state; the
// registry and generator are read-only after construction, so a single
// Engine is safe for concurrent use.
type Engine struct {
	registry  *agents.Registry
	generator provider.Generator // nil means mock-only: never dispatch
	responder *fallback.Responder
	provider  models.ProviderKind
}

// NewEngine builds the resolution engine. A nil generator (the mock
// selection) routes every request straight to the fallback responder.
func NewEngine(reg *agents.Registry, gen provider.Generator, resp *fallback.Responder, selection models.ProviderKind) *Engine {
	return &Engine{
		registry:  reg,
		generator: gen,
		responder: resp,
		provider:  selection,
	}
}

// Resolve runs the request through validation, normalization,
// dispatch, and fallback.
//
// Errors are only returned for invalid input (*BadRequestError,
// *agents.NotFoundError). Backend failures never escape: they are
// swallowed and answered by the fallback responder with
// UsedFallback=true.
func (e *Engine) Resolve(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.AgentID) == "" {
		return nil, &BadRequestError{Field: "agent"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, &BadRequestError{Field: "message"}
	}

	persona, err := e.registry.Lookup(req.AgentID)
	if err != nil {
		return nil, err
	}

	if e.generator == nil || e.provider == models.ProviderMock {
		return e.respond(req, e.responder.Respond(persona.ID, req.Message), true), nil
	}

	history := NormalizeHistory(req.History)

	text, err := e.dispatch(ctx, persona, req.Message, history)
	if err != nil {
		log.Warn().
			Str("provider", e.generator.Name()).
			Str("agent", persona.ID).
			Err(err).
			Msg("Provider call failed, using fallback")
		return e.respond(req, e.responder.Respond(persona.ID, req.Message), true), nil
	}
	if strings.TrimSpace(text) == "" {
		log.Warn().
			Str("provider", e.generator.Name()).
			Str("agent", persona.ID).
			Msg("Provider returned empty text, using fallback")
		return e.respond(req, e.responder.Respond(persona.ID, req.Message), true), nil
	}

	return e.respond(req, text, false), nil
}

func (e *Engine) dispatch(ctx context.Context, persona *models.Persona, message string, history []models.ConversationTurn) (string, error) {
	ctx, span := tracer.Start(ctx, "chat.dispatch")
	span.SetAttributes(
		attribute.String("gen_ai.system", e.generator.Name()),
		attribute.String("workmate.agent", persona.ID),
	)
	defer span.End()

	text, err := e.generator.Generate(ctx, persona.SystemPrompt, message, history)
	if err != nil {
		span.RecordError(err)
	}
	return text, err
}

func (e *Engine) respond(req models.ChatRequest, text string, usedFallback bool) *models.ChatResponse {
	name := string(e.provider)
	if usedFallback {
		name = string(models.ProviderMock)
	}
	return &models.ChatResponse{
		ID:           uuid.New().String(),
		Text:         text,
		Provider:     name,
		UsedFallback: usedFallback,
	}
}
