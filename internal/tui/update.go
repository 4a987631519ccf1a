package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.app.Flush()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextQuadrant):
			m.setQuadrant(m.quadrant%4 + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevQuadrant):
			m.setQuadrant((m.quadrant+2)%4 + 1)
			return m, nil

		case key.Matches(msg, m.keys.Quadrant1):
			m.setQuadrant(constants.QuadrantUrgentImportant)
			return m, nil
		case key.Matches(msg, m.keys.Quadrant2):
			m.setQuadrant(constants.QuadrantNotUrgentImportant)
			return m, nil
		case key.Matches(msg, m.keys.Quadrant3):
			m.setQuadrant(constants.QuadrantUrgentNotImportant)
			return m, nil
		case key.Matches(msg, m.keys.Quadrant4):
			m.setQuadrant(constants.QuadrantNotUrgentNotImportant)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if t, ok := m.selectedTask(); ok {
				if err := m.app.Tasks.ToggleTask(t.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = ""
				}
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if t, ok := m.selectedTask(); ok {
				if err := m.app.Tasks.DeleteTask(t.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("Deleted %q", t.Title)
				}
				m.reload()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) setQuadrant(q constants.Quadrant) {
	m.quadrant = q
	m.status = ""
	m.reload()
	m.list.Select(0)
}
