// Package fallback implements the deterministic, network-free response
// generator used whenever the configured provider is unavailable or
// erroring. It guarantees the product never surfaces "no AI available":
// for any persona id and any message it returns non-empty text.
package fallback

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// messagePlaceholder marks where the caller's original message is
// interpolated into a template.
const messagePlaceholder = "{{message}}"

// Responder produces canned-but-contextual answers keyed by persona id
// and message content. Variant selection goes through an injectable
// *rand.Rand so tests can pin exact output.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a Responder with a time-seeded random source.
func NewResponder() *Responder {
	return NewResponderWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewResponderWithRand creates a Responder with an explicit random
// source. A fixed seed makes every Respond call deterministic.
func NewResponderWithRand(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Respond returns a canned answer for the persona and message. The
// message is matched case-insensitively against per-persona keyword
// groups; the first matching category wins. Categories with several
// variants pick one uniformly. Unknown persona ids get the default
// behavior rather than an error.
func (r *Responder) Respond(agentID, message string) string {
	lower := strings.ToLower(message)

	if categories, ok := cannedResponses[agentID]; ok {
		for _, cat := range categories {
			for _, kw := range cat.keywords {
				if strings.Contains(lower, kw) {
					return r.render(cat.variants, message)
				}
			}
		}
		if generic, ok := genericResponses[agentID]; ok {
			return interpolate(generic, message)
		}
	}

	return interpolate(defaultResponse, message)
}

// Variants returns every template a persona can emit, including the
// generic and default templates. Exposed so callers (and tests) can
// treat the output set as closed.
func (r *Responder) Variants(agentID string) []string {
	var out []string
	for _, cat := range cannedResponses[agentID] {
		out = append(out, cat.variants...)
	}
	if generic, ok := genericResponses[agentID]; ok {
		out = append(out, generic)
	}
	out = append(out, defaultResponse)
	return out
}

func (r *Responder) render(variants []string, message string) string {
	tmpl := variants[0]
	if len(variants) > 1 {
		r.mu.Lock()
		tmpl = variants[r.rng.Intn(len(variants))]
		r.mu.Unlock()
	}
	return interpolate(tmpl, message)
}

func interpolate(tmpl, message string) string {
	return strings.ReplaceAll(tmpl, messagePlaceholder, message)
}

// category groups keyword triggers with the canned variants they select.
type category struct {
	keywords []string
	variants []string
}
