package chat

import (
	"strings"

	"github.com/workmate-ai/gateway/pkg/models"
)

// assistantRoles are the role/sender values that attribute a turn to the
// persona rather than the human caller. Anything else maps to user.
var assistantRoles = map[string]bool{
	"assistant": true,
	"agent":     true,
	"bot":       true,
	"ai":        true,
	"model":     true,
	"system":    true,
}

// NormalizeHistory converts caller-supplied history entries into the
// canonical turn sequence consumed by every adapter.
//
// It is a pure, total function: malformed entries are skipped, never
// rejected. Entries whose resolved content is empty or whitespace-only
// are dropped. Input order is preserved; nothing is deduplicated,
// truncated, or reordered.
func NormalizeHistory(raw []models.IncomingMessage) []models.ConversationTurn {
	turns := make([]models.ConversationTurn, 0, len(raw))
	for _, m := range raw {
		content := m.Content
		if content == "" {
			content = m.Text
		}
		if strings.TrimSpace(content) == "" {
			continue
		}

		role := m.Role
		if role == "" {
			role = m.Sender
		}

		turn := models.ConversationTurn{Role: models.RoleUser, Content: content}
		if assistantRoles[strings.ToLower(strings.TrimSpace(role))] {
			turn.Role = models.RoleAssistant
		}
		turns = append(turns, turn)
	}
	return turns
}
