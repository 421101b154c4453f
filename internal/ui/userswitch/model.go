package userswitch

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/somfix/dashboard/internal/keys"
	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/theme"
)

// UserChosenMsg is sent when the user picks an identity to switch to.
type UserChosenMsg struct {
	Role model.Role
	ID   string
	Name string
}

// CloseMsg is sent when the user leaves the switcher without choosing.
type CloseMsg struct{}

// identityItem wraps a selectable identity for a bubbles/list.
type identityItem struct {
	role model.Role
	id   string
	name string
}

func (i identityItem) FilterValue() string { return i.name }

func (i identityItem) Title() string { return i.name }

func (i identityItem) Description() string {
	switch i.role {
	case model.RoleManager:
		return "Manager"
	case model.RoleTechnician:
		return "Technician"
	default:
		return ""
	}
}

// Model is the user switcher: the manager identity plus the fixed
// technician roster.
type Model struct {
	list list.Model
	keys *keys.KeyMap
}

// New creates a new user switcher over the given roster.
func New(roster []model.Technician, k *keys.KeyMap, width, height int) Model {
	manager := model.ManagerSession()
	items := []list.Item{
		identityItem{role: model.RoleManager, id: manager.ID, name: manager.Name},
	}
	for _, t := range roster {
		items = append(items, identityItem{role: model.RoleTechnician, id: t.ID, name: t.Name})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, width, height-2)
	l.Title = "Switch User"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{list: l, keys: k}
}

// Update handles messages for the user switcher.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.String() == "enter":
			item, ok := m.list.SelectedItem().(identityItem)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return UserChosenMsg{Role: item.role, ID: item.id, Name: item.name}
			}

		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the user switcher.
func (m Model) View() string {
	return m.list.View()
}

// SetSize updates the switcher dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
