// Package tui is the interactive Eisenhower-matrix browser: one tab per
// quadrant, tasks sorted by order, with toggle and delete bound to keys.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/models"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
	"github.com/LLuCCKKyyyy/lifecompass/internal/views"
)

type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	marker := "○ "
	if i.Task.Completed {
		marker = "✓ "
	}
	return marker + i.Task.Title
}

func (i Item) Description() string {
	if i.Task.DueDate != "" {
		return "due " + i.Task.DueDate
	}
	if i.Task.Description != "" {
		return i.Task.Description
	}
	return "no due date"
}

func (i Item) FilterValue() string { return i.Task.Title }

type Model struct {
	app      *store.App
	quadrant constants.Quadrant
	list     list.Model
	keys     KeyMap
	help     help.Model
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(app *store.App) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	m := Model{
		app:      app,
		quadrant: constants.QuadrantUrgentImportant,
		list:     l,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.reload()
	return m
}

// reload rebuilds the list items for the active quadrant.
func (m *Model) reload() {
	tasks := views.TasksInQuadrant(m.app.Tasks.Tasks(), m.quadrant)
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

func (m *Model) selectedTask() (models.Task, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Task{}, false
	}
	return item.Task, true
}
