package services

import (
	"strings"

	"probsolver-backend/internal/models"
)

// maxHistoryTurns is how many trailing turns are replayed to the model.
const maxHistoryTurns = 3

// BuildContextPrompt prepends the most recent history turns to the prompt.
// With no history the prompt is returned unchanged.
func BuildContextPrompt(prompt string, history []models.ChatMessage) string {
	if len(history) == 0 {
		return prompt
	}

	recent := history
	if len(recent) > maxHistoryTurns {
		recent = recent[len(recent)-maxHistoryTurns:]
	}

	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		lines = append(lines, strings.ToUpper(msg.Role)+": "+msg.Content)
	}

	var b strings.Builder
	b.WriteString("CONVERSATION HISTORY:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nCURRENT QUESTION: ")
	b.WriteString(prompt)
	return b.String()
}
