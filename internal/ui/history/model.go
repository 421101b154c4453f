package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/somfix/dashboard/internal/keys"
	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/theme"
)

// CloseMsg is sent when the user leaves the history view.
type CloseMsg struct{}

// FilterChangedMsg is sent when the customer filter changes; the
// controller responds with a fresh SetRecords call.
type FilterChangedMsg struct {
	Query string
}

// recordItem wraps a ServiceRecord for a bubbles/list.
type recordItem struct {
	record model.ServiceRecord
}

func (i recordItem) FilterValue() string { return i.record.CustomerName }

func (i recordItem) Title() string {
	return fmt.Sprintf("%s - %s", i.record.CustomerName, i.record.Appliance)
}

func (i recordItem) Description() string {
	completed := ""
	if i.record.CompletedAt != nil {
		completed = i.record.CompletedAt.Format("2006-01-02 15:04")
	}
	tech := "Unassigned"
	if i.record.AssignedTechnicianName != nil {
		tech = *i.record.AssignedTechnicianName
	}
	parts := []string{
		completed,
		tech,
		fmt.Sprintf("$%.0f", i.record.AmountUSD),
		i.record.FailureDetails,
	}
	return strings.Join(parts, " | ")
}

// Model is the service-history view: the append-only ledger of
// completed tasks, filterable by customer name.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	searchMode  bool
	searchInput textinput.Model
	query       string
	width       int
	height      int
}

// New creates a new history view model.
func New(k *keys.KeyMap, width, height int) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Service History"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "customer name..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetRecords replaces the listed service records.
func (m *Model) SetRecords(records []model.ServiceRecord) {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = recordItem{record: r}
	}
	m.list.SetItems(items)
}

// Query returns the active customer filter.
func (m Model) Query() string {
	return m.query
}

// Update handles messages for the history view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Search):
			m.searchMode = true
			m.searchInput.SetValue(m.query)
			return m, m.searchInput.Focus()

		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while the filter prompt is open.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		query := m.query
		return m, func() tea.Msg { return FilterChangedMsg{Query: query} }

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		return m, func() tea.Msg { return FilterChangedMsg{Query: ""} }
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when the ledger has no matches.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.query != "" {
		return style.Render("No completed tasks for that customer.")
	}
	return style.Render("No completed tasks yet.")
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
