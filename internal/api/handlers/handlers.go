// Package handlers implements the HTTP handlers for the WorkMate
// gateway: the chat endpoint, the agent directory, and provider info.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/workmate-ai/gateway/internal/agents"
	"github.com/workmate-ai/gateway/internal/chat"
	"github.com/workmate-ai/gateway/internal/config"
	"github.com/workmate-ai/gateway/pkg/models"
)

// Handlers holds all handler dependencies.
type Handlers struct {
	Engine   *chat.Engine
	Registry *agents.Registry
	Config   *config.Config
}

// New creates a new Handlers instance with all dependencies.
func New(engine *chat.Engine, reg *agents.Registry, cfg *config.Config) *Handlers {
	return &Handlers{Engine: engine, Registry: reg, Config: cfg}
}

// chatRequest is the wire shape of POST /chat.
type chatRequest struct {
	Agent               string                   `json:"agent"`
	Message             string                   `json:"message"`
	ConversationHistory []models.IncomingMessage `json:"conversationHistory"`
}

// Chat resolves a chat message against the selected persona.
//
// 200 → {response, provider, fallback}; 400 for missing fields or an
// unknown agent; 500 only if resolution itself fails, with a generic
// message (full detail is logged, raw backend payloads never leak).
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Engine.Resolve(r.Context(), models.ChatRequest{
		AgentID: req.Agent,
		Message: req.Message,
		History: req.ConversationHistory,
	})
	if err != nil {
		var badReq *chat.BadRequestError
		var notFound *agents.NotFoundError
		switch {
		case errors.As(err, &badReq), errors.As(err, &notFound):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Error().Err(err).Str("agent", req.Agent).Msg("Chat resolution failed")
			respondError(w, http.StatusInternalServerError, "Failed to process request")
		}
		return
	}

	log.Info().
		Str("agent", req.Agent).
		Str("provider", resp.Provider).
		Bool("fallback", resp.UsedFallback).
		Msg("Chat resolved")
	respondJSON(w, http.StatusOK, resp)
}

// ListAgents returns the persona directory with display metadata.
func (h *Handlers) ListAgents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Registry.List())
}

// GetAgent returns a single persona.
func (h *Handlers) GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID := chi.URLParam(r, "agentID")
	persona, err := h.Registry.Lookup(agentID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, persona)
}

// ProviderInfo reports the active provider selection. The credential
// itself is never echoed, only whether one is configured.
func (h *Handlers) ProviderInfo(w http.ResponseWriter, r *http.Request) {
	creds := h.Config.ActiveCredentials()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"provider":   h.Config.Provider,
		"model":      creds.Model,
		"configured": h.Config.Provider == models.ProviderMock ||
			h.Config.Provider == models.ProviderLocal ||
			creds.APIKey != "",
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
