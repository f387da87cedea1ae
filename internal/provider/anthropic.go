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

// ── Messages Wire Format (Anthropic) ─────────────────────────

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Anthropic adapts the Anthropic messages API. The system prompt is a
// top-level field rather than a message, and history turns with empty
// content are dropped before inclusion (the API rejects them).
type Anthropic struct {
	cfg    config.ProviderConfig
	client *http.Client
}

func NewAnthropic(cfg config.ProviderConfig, client *http.Client) *Anthropic {
	return &Anthropic{cfg: cfg, client: client}
}

func (p *Anthropic) Name() string { return "anthropic" }

func (p *Anthropic) Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error) {
	if p.cfg.APIKey == "" {
		return "", &Error{Provider: "anthropic", Reason: "api key not configured"}
	}

	messages := make([]chatMessage, 0, len(history)+1)
	for _, t := range history {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		messages = append(messages, chatMessage{Role: string(t.Role), Content: t.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: message})

	body, _ := json.Marshal(anthropicRequest{
		Model:     p.cfg.Model,
		MaxTokens: 1000,
		System:    systemPrompt,
		Messages:  messages,
	})

	url := p.cfg.BaseURL + "/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: "anthropic", Reason: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: "anthropic", Reason: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return "", &Error{Provider: "anthropic", Reason: statusReason(httpResp.StatusCode, respBody)}
	}

	var resp anthropicResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", &Error{Provider: "anthropic", Reason: "decode response", Err: err}
	}

	if len(resp.Content) == 0 || strings.TrimSpace(resp.Content[0].Text) == "" {
		return "", &Error{Provider: "anthropic", Reason: "empty completion"}
	}
	return resp.Content[0].Text, nil
}
