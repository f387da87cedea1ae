// Package agents provides the persona registry: the static mapping from
// agent identifier to system prompt and display metadata.
//
// The registry is built once at startup, either from the built-in table
// or from a YAML file, and is read-only afterwards — safe for
// unsynchronized concurrent lookups.
package agents

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/workmate-ai/gateway/pkg/models"
)

// NotFoundError is returned by Lookup for an unknown persona id.
// It is a caller error, not a system fault.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agent %q not found", e.ID)
}

// Registry is the immutable persona table.
type Registry struct {
	personas map[string]models.Persona
	order    []string
}

// NewRegistry builds a registry over the built-in personas.
func NewRegistry() *Registry {
	return newRegistry(builtinPersonas)
}

// LoadRegistry reads persona definitions from a YAML file. The file
// replaces the built-in table entirely.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading agents file: %w", err)
	}

	var doc struct {
		Agents []models.Persona `yaml:"agents"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing agents file: %w", err)
	}
	if len(doc.Agents) == 0 {
		return nil, fmt.Errorf("agents file %s defines no agents", path)
	}

	for _, p := range doc.Agents {
		if p.ID == "" {
			return nil, fmt.Errorf("agents file %s: agent with empty id", path)
		}
		if p.SystemPrompt == "" {
			return nil, fmt.Errorf("agents file %s: agent %q has no system_prompt", path, p.ID)
		}
	}

	return newRegistry(doc.Agents), nil
}

func newRegistry(personas []models.Persona) *Registry {
	r := &Registry{personas: make(map[string]models.Persona, len(personas))}
	for _, p := range personas {
		if _, dup := r.personas[p.ID]; dup {
			continue
		}
		r.personas[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Lookup returns the persona for id, or *NotFoundError if absent.
func (r *Registry) Lookup(id string) (*models.Persona, error) {
	p, ok := r.personas[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return &p, nil
}

// List returns all personas in registration order.
func (r *Registry) List() []models.Persona {
	out := make([]models.Persona, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.personas[id])
	}
	return out
}

// Len returns the number of registered personas.
func (r *Registry) Len() int { return len(r.personas) }
