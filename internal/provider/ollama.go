package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/workmate-ai/gateway/internal/config"
	"github.com/workmate-ai/gateway/pkg/models"
)

// ── Local Completion Wire Format (Ollama) ────────────────────

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Ollama adapts a local-network completion service. It sends a single
// concatenated prompt (system + latest message) with streaming disabled
// and requires no credential.
type Ollama struct {
	cfg    config.ProviderConfig
	client *http.Client
}

func NewOllama(cfg config.ProviderConfig, client *http.Client) *Ollama {
	return &Ollama{cfg: cfg, client: client}
}

func (p *Ollama) Name() string { return "local" }

func (p *Ollama) Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error) {
	body, _ := json.Marshal(ollamaRequest{
		Model:  p.cfg.Model,
		Prompt: systemPrompt + "\n\nUsuário: " + message + "\n\nAssistente:",
		Stream: false,
	})

	url := p.cfg.BaseURL + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: "local", Reason: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: "local", Reason: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return "", &Error{Provider: "local", Reason: statusReason(httpResp.StatusCode, respBody)}
	}

	var resp ollamaResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", &Error{Provider: "local", Reason: "decode response", Err: err}
	}

	if strings.TrimSpace(resp.Response) == "" {
		return "", &Error{Provider: "local", Reason: "empty completion"}
	}
	return resp.Response, nil
}
