package notif

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/somfix/dashboard/internal/keys"
	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/theme"
)

// CloseMsg is sent when the user leaves the notification panel.
type CloseMsg struct{}

// ClearRequestedMsg is sent when the user asks to clear every
// notification addressed to them.
type ClearRequestedMsg struct{}

// Model is the notification panel for the active session's recipient id.
type Model struct {
	viewport      viewport.Model
	keys          *keys.KeyMap
	notifications []model.Notification
	width         int
	height        int
}

// New creates a new notification panel model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width-4, height-6)
	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// SetNotifications replaces the displayed notifications, newest first.
func (m *Model) SetNotifications(notifications []model.Notification) {
	m.notifications = notifications
	m.viewport.SetContent(m.renderNotifications())
}

// Update handles messages for the notification panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CloseMsg{} }

		case key.Matches(msg, m.keys.Clear):
			return m, func() tea.Msg { return ClearRequestedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the notification panel.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	unread := 0
	for _, n := range m.notifications {
		if !n.Read {
			unread++
		}
	}

	title := titleStyle.Render(fmt.Sprintf("Notifications (%d unread)", unread))

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 2).
		Render(content)
}

// renderNotifications formats the notification list for the viewport.
func (m Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return theme.DimmedStyle.Render("No notifications.")
	}

	var b strings.Builder
	for _, n := range m.notifications {
		stamp := n.CreatedAt.Format("15:04:05")
		line := fmt.Sprintf("%s  %s", stamp, n.Message)
		if n.Read {
			b.WriteString(theme.DimmedStyle.Render(line))
		} else {
			b.WriteString(theme.UnreadStyle.Render("● " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 6
}
