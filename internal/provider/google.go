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

// ── Generate-Content Wire Format (Google) ────────────────────

type googleRequest struct {
	Contents []googleContent `json:"contents"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []googlePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Google adapts the generate-content API. The API has no native
// multi-turn message array, so system prompt, history, and the new
// message are flattened into a single labeled prompt string with a
// trailing cue for the model to continue as the assistant.
type Google struct {
	cfg    config.ProviderConfig
	client *http.Client
}

func NewGoogle(cfg config.ProviderConfig, client *http.Client) *Google {
	return &Google{cfg: cfg, client: client}
}

func (p *Google) Name() string { return "google" }

// flattenPrompt builds the single prompt string:
//
//	<system>\n\n<Label>: <content>\n...\n\nUsuário: <message>\n\nAssistente:
func flattenPrompt(systemPrompt, message string, history []models.ConversationTurn) string {
	lines := make([]string, 0, len(history))
	for _, t := range history {
		label := "Usuário"
		if t.Role == models.RoleAssistant {
			label = "Assistente"
		}
		lines = append(lines, label+": "+t.Content)
	}
	return systemPrompt + "\n\n" + strings.Join(lines, "\n") + "\n\nUsuário: " + message + "\n\nAssistente:"
}

func (p *Google) Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error) {
	if p.cfg.APIKey == "" {
		return "", &Error{Provider: "google", Reason: "api key not configured"}
	}

	prompt := flattenPrompt(systemPrompt, message, history)
	body, _ := json.Marshal(googleRequest{
		Contents: []googleContent{{Parts: []googlePart{{Text: prompt}}}},
	})

	url := p.cfg.BaseURL + "/v1/models/" + p.cfg.Model + ":generateContent?key=" + p.cfg.APIKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: "google", Reason: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: "google", Reason: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return "", &Error{Provider: "google", Reason: statusReason(httpResp.StatusCode, respBody)}
	}

	var resp googleResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", &Error{Provider: "google", Reason: "decode response", Err: err}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 ||
		strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text) == "" {
		return "", &Error{Provider: "google", Reason: "empty completion"}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
