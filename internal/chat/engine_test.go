package chat_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/workmate-ai/gateway/internal/agents"
	"github.com/workmate-ai/gateway/internal/chat"
	"github.com/workmate-ai/gateway/internal/fallback"
	"github.com/workmate-ai/gateway/internal/provider"
	"github.com/workmate-ai/gateway/pkg/models"
)

// stubGenerator is a test provider adapter.
type stubGenerator struct {
	text    string
	err     error
	calls   int
	history []models.ConversationTurn
}

func (s *stubGenerator) Name() string { return "stub" }

func (s *stubGenerator) Generate(ctx context.Context, systemPrompt, message string, history []models.ConversationTurn) (string, error) {
	s.calls++
	s.history = history
	return s.text, s.err
}

func newTestEngine(gen provider.Generator, selection models.ProviderKind, seed int64) *chat.Engine {
	reg := agents.NewRegistry()
	resp := fallback.NewResponderWithRand(rand.New(rand.NewSource(seed)))
	return chat.NewEngine(reg, gen, resp, selection)
}

func TestResolve_ProviderSuccess(t *testing.T) {
	gen := &stubGenerator{text: "resposta do modelo"}
	e := newTestEngine(gen, models.ProviderOpenAI, 1)

	resp, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "datamate",
		Message: "Como estão as vendas?",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Text != "resposta do modelo" {
		t.Errorf("Text = %q, want provider output", resp.Text)
	}
	if resp.UsedFallback {
		t.Error("UsedFallback = true, want false on provider success")
	}
	if resp.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", resp.Provider, "openai")
	}
	if resp.ID == "" {
		t.Error("ID is empty")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestResolve_ProviderError_FallsBack(t *testing.T) {
	gen := &stubGenerator{err: &provider.Error{Provider: "stub", Reason: "status 500"}}
	e := newTestEngine(gen, models.ProviderOpenAI, 42)

	resp, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "datamate",
		Message: "Como estão as vendas?",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resp.UsedFallback {
		t.Error("UsedFallback = false, want true after provider error")
	}
	if resp.Provider != "mock" {
		t.Errorf("Provider = %q, want %q", resp.Provider, "mock")
	}

	// The engine's fallback output must equal the standalone responder's
	// output under the same random source.
	want := fallback.NewResponderWithRand(rand.New(rand.NewSource(42))).Respond("datamate", "Como estão as vendas?")
	if resp.Text != want {
		t.Errorf("Text = %q, want standalone fallback output %q", resp.Text, want)
	}
}

func TestResolve_EmptyProviderText_FallsBack(t *testing.T) {
	for _, text := range []string{"", "   ", "\n"} {
		gen := &stubGenerator{text: text}
		e := newTestEngine(gen, models.ProviderGroq, 1)

		resp, err := e.Resolve(context.Background(), models.ChatRequest{
			AgentID: "taskmate",
			Message: "Preciso organizar minhas tarefas",
		})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !resp.UsedFallback {
			t.Errorf("UsedFallback = false for empty provider text %q", text)
		}
		if resp.Text == "" {
			t.Error("Text is empty after fallback")
		}
	}
}

func TestResolve_MockSelection_NeverDispatches(t *testing.T) {
	gen := &stubGenerator{text: "should not be used"}
	e := newTestEngine(gen, models.ProviderMock, 1)

	resp, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "coachmate",
		Message: "quero aprender",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resp.UsedFallback {
		t.Error("UsedFallback = false, want true under mock selection")
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times under mock selection, want 0", gen.calls)
	}
}

func TestResolve_NilGenerator(t *testing.T) {
	e := newTestEngine(nil, models.ProviderMock, 1)

	resp, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "textmate",
		Message: "escreva um email",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resp.Text == "" || !resp.UsedFallback {
		t.Errorf("Resolve() = %+v, want non-empty fallback response", resp)
	}
}

func TestResolve_BadRequest(t *testing.T) {
	e := newTestEngine(&stubGenerator{text: "x"}, models.ProviderOpenAI, 1)

	cases := []struct {
		name string
		req  models.ChatRequest
	}{
		{"missing agent", models.ChatRequest{Message: "oi"}},
		{"blank agent", models.ChatRequest{AgentID: "  ", Message: "oi"}},
		{"missing message", models.ChatRequest{AgentID: "datamate"}},
		{"blank message", models.ChatRequest{AgentID: "datamate", Message: " \t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Resolve(context.Background(), tc.req)
			var badReq *chat.BadRequestError
			if !errors.As(err, &badReq) {
				t.Errorf("Resolve() error = %v, want *BadRequestError", err)
			}
		})
	}
}

func TestResolve_UnknownAgent(t *testing.T) {
	gen := &stubGenerator{text: "x"}
	e := newTestEngine(gen, models.ProviderOpenAI, 1)

	_, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "ghost",
		Message: "hi",
	})

	var notFound *agents.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Resolve() error = %v, want *agents.NotFoundError", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for unknown agent, want 0", gen.calls)
	}
}

func TestResolve_NormalizesHistoryBeforeDispatch(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	e := newTestEngine(gen, models.ProviderAnthropic, 1)

	_, err := e.Resolve(context.Background(), models.ChatRequest{
		AgentID: "datamate",
		Message: "e agora?",
		History: []models.IncomingMessage{
			{Sender: "user", Text: "oi"},
			{Sender: "agent", Text: "olá"},
			{Sender: "user", Text: "  "},
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(gen.history) != 2 {
		t.Fatalf("adapter received %d turns, want 2 (empty dropped)", len(gen.history))
	}
	if gen.history[0].Role != models.RoleUser || gen.history[1].Role != models.RoleAssistant {
		t.Errorf("adapter received roles %q/%q, want user/assistant", gen.history[0].Role, gen.history[1].Role)
	}
}

func TestResolve_ValidInputNeverErrors(t *testing.T) {
	// Whatever the backend does, valid input gets a non-empty answer.
	gens := []*stubGenerator{
		{text: "resposta"},
		{err: errors.New("connection refused")},
		{text: ""},
	}
	for _, gen := range gens {
		e := newTestEngine(gen, models.ProviderGoogle, 9)
		for _, id := range []string{"datamate", "textmate", "creativemate", "taskmate", "coachmate"} {
			resp, err := e.Resolve(context.Background(), models.ChatRequest{AgentID: id, Message: "olá"})
			if err != nil {
				t.Fatalf("Resolve(%s) error = %v", id, err)
			}
			if resp.Text == "" {
				t.Errorf("Resolve(%s) returned empty text", id)
			}
		}
	}
}
