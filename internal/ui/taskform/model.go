package taskform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/store"
	"github.com/somfix/dashboard/internal/theme"
)

// TaskSubmittedMsg is dispatched when the form is submitted with valid
// field values.
type TaskSubmittedMsg struct {
	Input store.TaskInput
}

// TaskFormCancelMsg is dispatched when the user cancels the form.
type TaskFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	description    string
	technicianID   string
	amount         string
	customerName   string
	customerPhone  string
	appliance      model.Appliance
	failureDetails string
}

// Model is the Bubble Tea model for the add-task form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	roster []model.Technician
	width  int
	height int
}

// New creates a new task form model with the given technician roster.
func New(roster []model.Technician, width, height int) Model {
	return Model{
		fb:     &formBindings{appliance: model.ApplianceOther},
		roster: roster,
		width:  width,
		height: height,
	}
}

// StartCreate initializes an empty form for a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.fb.description = ""
	m.fb.technicianID = ""
	m.fb.amount = ""
	m.fb.customerName = ""
	m.fb.customerPhone = ""
	m.fb.appliance = model.ApplianceOther
	m.fb.failureDetails = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartPrefilled initializes the form with the given input, used by the
// sample-data shortcut.
func (m *Model) StartPrefilled(in store.TaskInput) tea.Cmd {
	m.fb.description = in.Description
	m.fb.technicianID = ""
	if in.TechnicianID != nil {
		m.fb.technicianID = *in.TechnicianID
	}
	m.fb.amount = strconv.FormatFloat(in.AmountUSD, 'f', -1, 64)
	m.fb.customerName = in.CustomerName
	m.fb.customerPhone = in.CustomerPhone
	m.fb.appliance = in.Appliance
	m.fb.failureDetails = in.FailureDetails
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return TaskFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("New Task") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	applianceOpts := make([]huh.Option[model.Appliance], 0, len(model.Appliances()))
	for _, a := range model.Appliances() {
		applianceOpts = append(applianceOpts, huh.NewOption(string(a), a))
	}

	technicianOpts := []huh.Option[string]{
		huh.NewOption("Unassigned", ""),
	}
	for _, t := range m.roster {
		technicianOpts = append(technicianOpts, huh.NewOption(t.Name, t.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Customer Name").
			Placeholder("Full name").
			Value(&m.fb.customerName).
			Validate(validateRequired("Customer name")),
		huh.NewInput().
			Title("Customer Phone").
			Placeholder("+252 61 xxx xxx").
			Value(&m.fb.customerPhone).
			Validate(validateRequired("Customer phone")),
		huh.NewSelect[model.Appliance]().
			Title("Appliance").
			Options(applianceOpts...).
			Value(&m.fb.appliance),
		huh.NewText().
			Title("Failure Details").
			Placeholder("What is the reported problem?").
			Value(&m.fb.failureDetails).
			Validate(validateRequired("Failure details")),
		huh.NewText().
			Title("Description").
			Placeholder("General description of the work").
			Value(&m.fb.description).
			Validate(validateRequired("Description")),
		huh.NewInput().
			Title("Amount (USD)").
			Placeholder("150").
			Value(&m.fb.amount).
			Validate(validateAmount),
		huh.NewSelect[string]().
			Title("Assign Technician").
			Options(technicianOpts...).
			Value(&m.fb.technicianID),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.fb.amount), 64)

	in := store.TaskInput{
		Description:    m.fb.description,
		AmountUSD:      amount,
		CustomerName:   m.fb.customerName,
		CustomerPhone:  m.fb.customerPhone,
		Appliance:      m.fb.appliance,
		FailureDetails: m.fb.failureDetails,
	}

	if m.fb.technicianID != "" {
		for _, t := range m.roster {
			if t.ID == m.fb.technicianID {
				id, name := t.ID, t.Name
				in.TechnicianID = &id
				in.TechnicianName = &name
				break
			}
		}
	}

	return func() tea.Msg { return TaskSubmittedMsg{Input: in} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("amount must be a number")
	}
	if v < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}
