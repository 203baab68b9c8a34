package service

import (
	"context"
	"fmt"
	"strings"
)

// maxChecklistItems bounds how many generated steps become subtasks.
const maxChecklistItems = 8

// Completer produces free-form text for a prompt pair. Satisfied by
// ai.Client.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const checklistSystemPrompt = "You help students break school assignments " +
	"into small actionable steps. Answer with one short step per line, " +
	"no numbering, no extra commentary."

// GenerateChecklist asks the model for a step list for the given assignment
// and returns the cleaned items.
func GenerateChecklist(ctx context.Context, c Completer, title, description string) ([]string, error) {
	prompt := fmt.Sprintf("Assignment: %s", title)
	if description != "" {
		prompt += fmt.Sprintf("\nDetails: %s", description)
	}

	raw, err := c.Complete(ctx, checklistSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return ParseChecklist(raw), nil
}

// ParseChecklist turns model output into subtask texts: one item per line,
// bullets and numbering stripped, empties dropped.
func ParseChecklist(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = stripListMarker(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == maxChecklistItems {
			break
		}
	}
	return items
}

// stripListMarker removes a leading bullet or "1." / "1)" style numbering.
func stripListMarker(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
