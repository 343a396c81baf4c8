package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	// Update footer context for conditional bindings
	m.footer.SetContext(m.sess.Joined(), m.sess.CanJoin())

	var content string
	if m.sess.Joined() && m.room != nil {
		content = m.room.View()
	} else {
		content = m.lobby.View()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)

	v.SetContent(view)
	return v
}
