package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

var quadrantTabs = []struct {
	quadrant constants.Quadrant
	label    string
}{
	{constants.QuadrantUrgentImportant, "1 Do"},
	{constants.QuadrantNotUrgentImportant, "2 Schedule"},
	{constants.QuadrantUrgentNotImportant, "3 Delegate"},
	{constants.QuadrantNotUrgentNotImportant, "4 Eliminate"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(quadrantTabs))
	for i, tab := range quadrantTabs {
		style := inactiveTabStyle
		if tab.quadrant == m.quadrant {
			style = activeTabStyle
		}
		tabs[i] = style.Render(tab.label)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
