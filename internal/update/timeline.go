package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleTimelineKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.timelineTable, cmd = m.timelineTable.Update(msg)
	return m, cmd
}
