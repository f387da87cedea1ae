// Package models defines the shared domain and wire types for the
// WorkMate gateway: personas, conversation turns, and the chat
// request/response envelope exchanged with clients.
package models

// ── Provider Selection ───────────────────────────────────────

// ProviderKind identifies the backend family that answers chat requests.
type ProviderKind string

const (
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderGoogle    ProviderKind = "google"
	ProviderGroq      ProviderKind = "groq"
	ProviderLocal     ProviderKind = "local"
	ProviderMock      ProviderKind = "mock"
)

// Known reports whether k names a supported provider family.
func (k ProviderKind) Known() bool {
	switch k {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderGroq, ProviderLocal, ProviderMock:
		return true
	}
	return false
}

// ── Personas ─────────────────────────────────────────────────

// Persona is a named behavioral profile presented to the underlying
// language model. Personas are constructed once at startup and are
// read-only afterwards.
type Persona struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Role         string   `json:"role" yaml:"role"`
	Expertise    []string `json:"expertise" yaml:"expertise"`
	Color        string   `json:"color" yaml:"color"`
	SystemPrompt string   `json:"-" yaml:"system_prompt"`
}

// ── Conversation ─────────────────────────────────────────────

// TurnRole attributes a conversation turn to the human caller or the persona.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// ConversationTurn is one message in a conversation, in canonical form.
// Ordering is chronological and meaningful.
type ConversationTurn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// IncomingMessage is the loosely-shaped history entry accepted from
// clients. Different callers name the fields differently (sender vs
// role, text vs content); the normalizer reduces them to
// ConversationTurn.
type IncomingMessage struct {
	Sender  string `json:"sender,omitempty"`
	Role    string `json:"role,omitempty"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// ── Chat Envelope ────────────────────────────────────────────

// ChatRequest is the inbound request handed to the engine. History is
// kept in the loose caller shape; the engine normalizes it before
// dispatch.
type ChatRequest struct {
	AgentID string
	Message string
	History []IncomingMessage
}

// ChatResponse is the outbound envelope. Text is always non-empty on
// success; raw backend error payloads are never exposed here.
type ChatResponse struct {
	ID           string `json:"id"`
	Text         string `json:"response"`
	Provider     string `json:"provider"`
	UsedFallback bool   `json:"fallback"`
}
