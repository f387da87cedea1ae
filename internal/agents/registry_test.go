package agents_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/workmate-ai/gateway/internal/agents"
)

func TestLookup_BuiltinPersonas(t *testing.T) {
	r := agents.NewRegistry()

	for _, id := range []string{"datamate", "textmate", "creativemate", "taskmate", "coachmate"} {
		p, err := r.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", id, err)
		}
		if p.ID != id {
			t.Errorf("Lookup(%q).ID = %q, want %q", id, p.ID, id)
		}
		if p.SystemPrompt == "" {
			t.Errorf("Lookup(%q).SystemPrompt is empty", id)
		}
		if p.Name == "" || p.Role == "" {
			t.Errorf("Lookup(%q) missing display metadata: name=%q role=%q", id, p.Name, p.Role)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	r := agents.NewRegistry()

	_, err := r.Lookup("ghost")
	if err == nil {
		t.Fatal("Lookup(ghost) expected error, got nil")
	}

	var notFound *agents.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Lookup(ghost) error type = %T, want *NotFoundError", err)
	}
	if notFound.ID != "ghost" {
		t.Errorf("NotFoundError.ID = %q, want %q", notFound.ID, "ghost")
	}
}

func TestList_StableOrder(t *testing.T) {
	r := agents.NewRegistry()

	first := r.List()
	second := r.List()

	if len(first) != 5 {
		t.Fatalf("List() returned %d personas, want 5", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("List() order not stable at index %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	doc := `agents:
  - id: helpmate
    name: HelpMate
    role: Suporte
    expertise: [Suporte, FAQ]
    color: teal
    system_prompt: |
      Você é o HelpMate, um agente de suporte.
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := agents.LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	p, err := r.Lookup("helpmate")
	if err != nil {
		t.Fatalf("Lookup(helpmate) error = %v", err)
	}
	if p.Name != "HelpMate" {
		t.Errorf("Name = %q, want %q", p.Name, "HelpMate")
	}

	// Built-in personas are replaced, not merged
	if _, err := r.Lookup("datamate"); err == nil {
		t.Error("Lookup(datamate) should fail after file load")
	}
}

func TestLoadRegistry_Invalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		doc  string
	}{
		{"empty", "agents: []\n"},
		{"missing_id", "agents:\n  - name: X\n    system_prompt: p\n"},
		{"missing_prompt", "agents:\n  - id: x\n    name: X\n"},
		{"not_yaml", "{{{"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := agents.LoadRegistry(path); err == nil {
				t.Errorf("LoadRegistry(%s) expected error, got nil", tc.name)
			}
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := agents.LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadRegistry() with missing file expected error, got nil")
	}
}
