package tasklist

import (
	"fmt"
	"strings"

	"github.com/somfix/dashboard/internal/model"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string {
	return i.Task.Description + " " + i.Task.CustomerName
}

// Title returns the task summary line for the list.
func (i TaskItem) Title() string {
	return i.Task.Description
}

// Description returns a short detail line for the list.
func (i TaskItem) Description() string {
	assignee := "Unassigned"
	if i.Task.AssignedTechnicianName != nil {
		assignee = *i.Task.AssignedTechnicianName
	}

	parts := []string{
		string(i.Task.Status),
		string(i.Task.Appliance),
		i.Task.CustomerName,
		fmt.Sprintf("$%.0f", i.Task.AmountUSD),
		assignee,
	}
	return strings.Join(parts, " | ")
}
