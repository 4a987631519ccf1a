// Package coach exposes the two mutators the conversational coach is allowed
// to drive as an MCP tool server over stdio. Each tool is a thin adapter over
// a domain module and answers with a human-readable confirmation string.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
)

var quadrantNames = map[constants.Quadrant]string{
	constants.QuadrantUrgentImportant:       "Urgent & Important",
	constants.QuadrantNotUrgentImportant:    "Not Urgent & Important",
	constants.QuadrantUrgentNotImportant:    "Urgent & Not Important",
	constants.QuadrantNotUrgentNotImportant: "Not Urgent & Not Important",
}

// ToolHandler dispatches coach tool calls to the domain modules.
type ToolHandler struct {
	app *store.App
}

// NewToolHandler creates a tool handler over the app's domain modules.
func NewToolHandler(app *store.App) *ToolHandler {
	return &ToolHandler{app: app}
}

// Handle dispatches a tool call to the appropriate handler.
func (h *ToolHandler) Handle(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	switch name {
	case "addTaskToMatrix":
		return h.handleAddTask(args)
	case "recordGratitude":
		return h.handleRecordGratitude(args)
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

func (h *ToolHandler) handleAddTask(args map[string]interface{}) (string, error) {
	title, _ := args["title"].(string)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	description, _ := args["description"].(string)

	quadrant := constants.QuadrantNotUrgentImportant
	if q, ok := args["quadrant"].(float64); ok {
		quadrant = constants.Quadrant(int(q))
	}

	task, err := h.app.Tasks.AddTask(title, description, quadrant, "")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Added %q to the %s quadrant (position %d).",
		task.Title, quadrantNames[task.Quadrant], task.Order+1), nil
}

func (h *ToolHandler) handleRecordGratitude(args map[string]interface{}) (string, error) {
	var entries []string
	if list, ok := args["entries"].([]interface{}); ok {
		for _, v := range list {
			if s, ok := v.(string); ok && s != "" {
				entries = append(entries, s)
			}
		}
	}
	person, _ := args["person"].(string)
	reason, _ := args["reason"].(string)

	if len(entries) == 0 && person == "" {
		return "", fmt.Errorf("at least one gratitude entry or a person is required")
	}

	today := utils.Today()
	draft := models.EntryDraft{Date: today}

	existing, hasExisting := todayEntry(h.app.Gratitude.Entries(), today)
	if entries != nil {
		draft.Entries = entries
		if hasExisting {
			draft.Entries = append(append([]string{}, existing.Entries...), entries...)
		}
	}
	if person != "" {
		draft.GratefulFor = []models.GratitudePerson{{Person: person, Reason: reason}}
		if hasExisting {
			draft.GratefulFor = append(append([]models.GratitudePerson{}, existing.GratefulFor...), draft.GratefulFor...)
		}
	}

	entry, err := h.app.Gratitude.AddOrUpdateEntry(draft)
	if err != nil {
		return "", err
	}

	var parts []string
	if len(entries) > 0 {
		parts = append(parts, fmt.Sprintf("recorded %d gratitude note(s)", len(entries)))
	}
	if person != "" {
		parts = append(parts, fmt.Sprintf("noted gratitude for %s", person))
	}
	return fmt.Sprintf("Today's reflection updated: %s (%d notes total for %s).",
		strings.Join(parts, " and "), len(entry.Entries), entry.Date), nil
}

func todayEntry(entries []models.GratitudeEntry, date string) (models.GratitudeEntry, bool) {
	for _, e := range entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.GratitudeEntry{}, false
}
