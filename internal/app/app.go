package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/somfix/dashboard/internal/keys"
	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/seed"
	"github.com/somfix/dashboard/internal/sound"
	"github.com/somfix/dashboard/internal/store"
	"github.com/somfix/dashboard/internal/theme"
	"github.com/somfix/dashboard/internal/ui"
	helpview "github.com/somfix/dashboard/internal/ui/help"
	historyview "github.com/somfix/dashboard/internal/ui/history"
	"github.com/somfix/dashboard/internal/ui/notif"
	"github.com/somfix/dashboard/internal/ui/taskform"
	"github.com/somfix/dashboard/internal/ui/tasklist"
	"github.com/somfix/dashboard/internal/ui/userswitch"
)

// AppTitle is shown in the header bar.
const AppTitle = "Somfix Dashboard"

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewTaskForm
	ViewHistory
	ViewNotifications
	ViewUserSwitch
	ViewHelp
)

// Model is the root Bubble Tea model. It owns the whole application
// state and routes messages to the active view; every mutation goes
// through the store's pure transition functions.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap
	state        store.State
	roster       []model.Technician
	logger       *zap.Logger
	player       *sound.Player
	showFinished bool

	taskList    tasklist.Model
	taskForm    taskform.Model
	historyView historyview.Model
	notifView   notif.Model
	userView    userswitch.Model
	helpView    helpview.Model

	banners      []Banner
	nextBannerID int
	sweepGen     int
	ready        bool
}

// New creates the root application model. The session starts as the
// manager.
func New(cfg *model.AppConfig, logger *zap.Logger, player *sound.Player) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	k := keys.DefaultKeyMap()

	m := Model{
		currentView: ViewDashboard,
		keys:        k,
		state:       store.NewState(model.ManagerSession()),
		roster:      cfg.Technicians,
		logger:      logger,
		player:      player,
		taskList:    tasklist.New(k, 80, 24),
		taskForm:    taskform.New(cfg.Technicians, 80, 24),
		historyView: historyview.New(k, 80, 24),
		notifView:   notif.New(k, 80, 24),
		userView:    userswitch.New(cfg.Technicians, k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
	}
	m.syncViews()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.taskList.SetSize(contentWidth, contentHeight)
		m.taskForm.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.notifView.SetSize(contentWidth, contentHeight)
		m.userView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case tasklist.AcceptRequestedMsg:
		state, out := store.Accept(m.state, msg.TaskID, m.state.Session.ID, time.Now())
		m.state = state
		return m, m.applyOutcome("accept", out)

	case tasklist.RejectRequestedMsg:
		state, out := store.Reject(m.state, msg.TaskID, m.state.Session.ID, time.Now())
		m.state = state
		return m, m.applyOutcome("reject", out)

	case tasklist.CompleteRequestedMsg:
		state, out := store.Complete(m.state, msg.TaskID, m.state.Session, time.Now())
		m.state = state
		return m, m.applyOutcome("complete", out)

	case taskform.TaskSubmittedMsg:
		m.currentView = ViewDashboard
		state, out := store.Add(m.state, msg.Input, time.Now())
		m.state = state
		return m, m.applyOutcome("add", out)

	case taskform.TaskFormCancelMsg:
		m.currentView = ViewDashboard
		return m, nil

	case historyview.CloseMsg:
		m.currentView = ViewDashboard
		return m, nil

	case historyview.FilterChangedMsg:
		m.historyView.SetRecords(store.HistoryForCustomer(m.state, msg.Query))
		return m, nil

	case notif.CloseMsg:
		m.currentView = ViewDashboard
		return m, nil

	case notif.ClearRequestedMsg:
		m.state = store.ClearNotifications(m.state, m.state.Session.ID)
		m.syncViews()
		return m, nil

	case userswitch.UserChosenMsg:
		m.state = store.SwitchUser(m.state, msg.Role, msg.ID, msg.Name)
		m.clearBanners()
		m.sweepGen++ // orphan any pending read sweep
		m.currentView = ViewDashboard
		m.syncViews()
		return m, nil

	case userswitch.CloseMsg:
		m.currentView = ViewDashboard
		return m, nil

	case bannerExpiredMsg:
		m.dismissBanner(msg.id)
		return m, nil

	case readSweepMsg:
		if msg.gen != m.sweepGen {
			return m, nil
		}
		m.state = store.MarkRead(m.state, m.state.Session.ID)
		m.syncViews()
		return m, nil

	case tea.KeyMsg:
		if handled, next, cmd := m.handleGlobalKey(msg); handled {
			return next, cmd
		}
	}

	// Delegate to active sub-view.
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work regardless of the focused
// sub-view. The task form owns its own input, so only interrupt keys
// apply there.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}

	if m.currentView == ViewTaskForm {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewDashboard {
			return true, m, tea.Quit
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case "n":
		if m.currentView == ViewDashboard && m.state.Session.Role == model.RoleManager {
			m.previousView = m.currentView
			m.currentView = ViewTaskForm
			return true, m, m.taskForm.StartCreate()
		}

	case "g":
		if m.currentView == ViewDashboard && m.state.Session.Role == model.RoleManager {
			m.previousView = m.currentView
			m.currentView = ViewTaskForm
			return true, m, m.taskForm.StartPrefilled(seed.TaskInput(m.roster))
		}

	case "b":
		if m.currentView == ViewDashboard {
			m.previousView = m.currentView
			m.currentView = ViewNotifications
			m.syncViews()
			return true, m, nil
		}

	case "h":
		if m.currentView == ViewDashboard {
			m.previousView = m.currentView
			m.currentView = ViewHistory
			m.historyView.SetRecords(store.HistoryForCustomer(m.state, m.historyView.Query()))
			return true, m, nil
		}

	case "u":
		if m.currentView == ViewDashboard {
			m.previousView = m.currentView
			m.currentView = ViewUserSwitch
			return true, m, nil
		}

	case "H":
		if m.currentView == ViewDashboard {
			m.showFinished = !m.showFinished
			m.syncViews()
			return true, m, nil
		}

	case "x":
		if len(m.banners) > 0 {
			m.dismissOldestBanner()
			return true, m, nil
		}

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
	}

	return false, m, nil
}

// applyOutcome turns a store transition outcome into controller effects:
// diagnostics for silent no-ops, banners, the sound cue, view refresh,
// and the debounced read sweep.
func (m *Model) applyOutcome(op string, out store.Outcome) tea.Cmd {
	var cmds []tea.Cmd

	if out.NoopReason != "" {
		m.logger.Warn("transition ignored",
			zap.String("op", op),
			zap.String("reason", out.NoopReason),
			zap.String("actor", m.state.Session.ID),
		)
	}
	if out.Banner != nil {
		cmds = append(cmds, m.pushBanner(*out.Banner))
	}
	if out.Sound && m.player != nil {
		m.player.Play()
	}
	if out.Changed {
		m.syncViews()
	}
	if cmd := m.scheduleReadSweep(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// syncViews pushes fresh read models into every stateless view.
func (m *Model) syncViews() {
	m.taskList.SetRole(m.state.Session.Role, m.state.Session.Name)
	if m.showFinished {
		m.taskList.SetTasks(store.VisibleTasks(m.state))
	} else {
		m.taskList.SetTasks(store.ActiveTasks(m.state))
	}
	m.notifView.SetNotifications(store.NotificationsFor(m.state, m.state.Session.ID))
	m.historyView.SetRecords(store.HistoryForCustomer(m.state, m.historyView.Query()))
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewDashboard:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case ViewUserSwitch:
		m.userView, cmd = m.userView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(AppTitle, m.sessionSegment())
	banners := m.renderBanners()
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, banners, content, statusBar)
}

// sessionSegment returns the right-hand header segment: active user,
// role, and unread badge.
func (m Model) sessionSegment() string {
	segment := fmt.Sprintf("%s (%s)", m.state.Session.Name, m.state.Session.Role)
	if unread := store.UnreadCount(m.state, m.state.Session.ID); unread > 0 {
		segment = fmt.Sprintf("[%d new] %s", unread, segment)
	}
	return segment
}

// renderBanners stacks the pending alert banners, oldest first.
func (m Model) renderBanners() string {
	if len(m.banners) == 0 {
		return ""
	}
	lines := make([]string, len(m.banners))
	for i, b := range m.banners {
		lines[i] = theme.BannerStyle(b.Severity).
			Width(m.layout.ContentWidth()).
			Render(b.Text + "  (x to dismiss)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.taskList.View()
	case ViewTaskForm:
		return m.taskForm.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewNotifications:
		return m.notifView.View()
	case ViewUserSwitch:
		return m.userView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewTaskForm:
		return "enter submit | esc cancel"
	case ViewHistory:
		return "/ filter by customer | j/k scroll | esc back"
	case ViewNotifications:
		return "C clear | j/k scroll | esc back"
	case ViewUserSwitch:
		return "enter switch | esc back"
	case ViewHelp:
		return "? close help | esc back"
	default:
		switch m.state.Session.Role {
		case model.RoleManager:
			return "q quit | ? help | n new | g sample | c complete | b bell | h history | u user"
		default:
			return "q quit | ? help | a accept | r reject | c complete | b bell | h history | u user"
		}
	}
}
