package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LLuCCKKyyyy/lifecompass/internal/backup"
	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/logger"
	"github.com/LLuCCKKyyyy/lifecompass/internal/notifier"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
)

// Context is passed to every command's Run method.
type Context struct {
	App      *store.App
	Notifier *notifier.Notifier
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. Only file-backed substrates are backed up.
func (c *Context) PerformAutomaticBackup() {
	path := c.App.Storage().Path()
	if storage.IsPostgres(path) {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// QuadrantLabel returns the canonical name of a quadrant.
func QuadrantLabel(q constants.Quadrant) string {
	switch q {
	case constants.QuadrantUrgentImportant:
		return "Urgent & Important"
	case constants.QuadrantNotUrgentImportant:
		return "Not Urgent & Important"
	case constants.QuadrantUrgentNotImportant:
		return "Urgent & Not Important"
	case constants.QuadrantNotUrgentNotImportant:
		return "Not Urgent & Not Important"
	default:
		return "Unknown"
	}
}

// ParseQuadrant parses a quadrant from its number or a few common aliases.
func ParseQuadrant(s string) (constants.Quadrant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "do", "do-first":
		return constants.QuadrantUrgentImportant, nil
	case "schedule", "plan":
		return constants.QuadrantNotUrgentImportant, nil
	case "delegate":
		return constants.QuadrantUrgentNotImportant, nil
	case "eliminate", "drop":
		return constants.QuadrantNotUrgentNotImportant, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("invalid quadrant %q (expected 1-4, do, schedule, delegate, or eliminate)", s)
	}
	return constants.Quadrant(n), nil
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
