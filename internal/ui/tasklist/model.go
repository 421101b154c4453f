package tasklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/somfix/dashboard/internal/keys"
	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/theme"
)

// AcceptRequestedMsg is sent when the user asks to accept the selected task.
type AcceptRequestedMsg struct {
	TaskID string
}

// RejectRequestedMsg is sent when the user asks to reject the selected task.
type RejectRequestedMsg struct {
	TaskID string
}

// CompleteRequestedMsg is sent when the user asks to complete the selected task.
type CompleteRequestedMsg struct {
	TaskID string
}

// Model is the main task list view component.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	role   model.Role
	width  int
	height int
}

// New creates a new task list model.
func New(k *keys.KeyMap, width, height int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = theme.SelectedItemStyle
	delegate.Styles.SelectedDesc = theme.SelectedItemStyle.Bold(false)

	l := list.New([]list.Item{}, delegate, width, height)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		role:   model.RoleManager,
		width:  width,
		height: height,
	}
}

// SetTasks replaces the listed tasks.
func (m *Model) SetTasks(tasks []model.Task) {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
	}
	m.list.SetItems(items)
}

// SetRole tells the list which dashboard it is rendering. The manager
// list is titled differently and offers a different action set.
func (m *Model) SetRole(role model.Role, name string) {
	m.role = role
	switch role {
	case model.RoleManager:
		m.list.Title = "All Active Tasks"
	case model.RoleTechnician:
		m.list.Title = "Your Assigned Tasks - " + name
	}
}

// SelectedTaskID returns the id of the highlighted task, if any.
func (m Model) SelectedTaskID() (string, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return "", false
	}
	return item.Task.ID, true
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Accept):
			if id, ok := m.SelectedTaskID(); ok && m.role == model.RoleTechnician {
				return m, func() tea.Msg { return AcceptRequestedMsg{TaskID: id} }
			}

		case key.Matches(msg, m.keys.Reject):
			if id, ok := m.SelectedTaskID(); ok && m.role == model.RoleTechnician {
				return m, func() tea.Msg { return RejectRequestedMsg{TaskID: id} }
			}

		case key.Matches(msg, m.keys.Complete):
			if id, ok := m.SelectedTaskID(); ok {
				return m, func() tea.Msg { return CompleteRequestedMsg{TaskID: id} }
			}
		}
	}

	// Delegate navigation keys and everything else to the list.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the task list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no tasks are listed.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	switch m.role {
	case model.RoleTechnician:
		return style.Render("You have no active tasks assigned.")
	default:
		return style.Render("No active tasks.\n\nPress n to add a new task.")
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
