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

// ── Chat-Completion Wire Format (OpenAI / Groq) ──────────────

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion adapts the OpenAI chat-completions API. Groq exposes
// the same schema on a different base URL, so both selections share
// this implementation.
type ChatCompletion struct {
	name      string
	cfg       config.ProviderConfig
	maxTokens int
	client    *http.Client
}

// NewOpenAI creates the OpenAI adapter.
func NewOpenAI(cfg config.ProviderConfig, client *http.Client) *ChatCompletion {
	return &ChatCompletion{name: "openai", cfg: cfg, maxTokens: 500, client: client}
}

// NewGroq creates the Groq adapter: OpenAI-compatible schema, larger
// completion budget.
func NewGroq(cfg config.ProviderConfig, client *http.Client) *ChatCompletion {
	return &ChatCompletion{name: "groq", cfg: cfg, maxTokens: 1000, client: client}
}

func (p *ChatCompletion) Name() string { return p.name }

func (p *ChatCompletion) Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error) {
	if p.cfg.APIKey == "" {
		return "", &Error{Provider: p.name, Reason: "api key not configured"}
	}

	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, t := range history {
		messages = append(messages, chatMessage{Role: string(t.Role), Content: t.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: message})

	body, _ := json.Marshal(chatCompletionRequest{
		Model:       p.cfg.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   p.maxTokens,
	})

	url := p.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: p.name, Reason: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: p.name, Reason: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return "", &Error{Provider: p.name, Reason: statusReason(httpResp.StatusCode, respBody)}
	}

	var resp chatCompletionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", &Error{Provider: p.name, Reason: "decode response", Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &Error{Provider: p.name, Reason: "empty completion"}
	}
	return resp.Choices[0].Message.Content, nil
}
