package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding

	// Task actions
	NewTask    key.Binding
	SampleTask key.Binding
	Accept     key.Binding
	Reject     key.Binding
	Complete   key.Binding

	// Panels
	Notifications key.Binding
	History       key.Binding
	SwitchUser    key.Binding

	// Dashboard toggles
	ShowAll key.Binding
	Dismiss key.Binding

	// Notification panel
	Clear key.Binding

	// History search
	Search key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		SampleTask: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "new task (sample data)"),
		),
		Accept: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accept task"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reject task"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete task"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "notifications"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "service history"),
		),
		SwitchUser: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "switch user"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle finished tasks"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss banner"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear notifications"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter by customer"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Back, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Back, k.Quit, k.Help},
		{k.NewTask, k.SampleTask, k.Accept, k.Reject, k.Complete},
		{k.Notifications, k.History, k.SwitchUser, k.ShowAll},
		{k.Dismiss, k.Clear, k.Search},
	}
}
