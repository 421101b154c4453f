// Package store holds the authoritative dashboard state and every
// lifecycle transition over it. All mutations are pure functions from a
// State value to a new State value: callers replace their copy wholesale,
// so a reader mid-render never observes a partial update.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somfix/dashboard/internal/model"
)

// State is the whole in-memory application state: tasks, notifications,
// completed-task history, and the active session.
type State struct {
	Session       model.Session
	Tasks         []model.Task
	Notifications []model.Notification
	History       []model.ServiceRecord
}

// NewState returns an empty State with the given active session.
func NewState(session model.Session) State {
	return State{Session: session}
}

// Severity classifies a banner for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Banner is a short-lived message the view layer shows and auto-dismisses.
type Banner struct {
	Text     string
	Severity Severity
}

// Outcome describes the side effects of a transition for the controller:
// which banner to raise, whether to play the bell, and why nothing
// happened when the transition was a silent no-op.
type Outcome struct {
	// Changed is true when the returned State differs from the input.
	Changed bool

	// Banner, when non-nil, should be surfaced to the user.
	Banner *Banner

	// Sound requests the bell cue.
	Sound bool

	// NoopReason is set on silent precondition failures. Diagnostics
	// only; never shown to the user.
	NoopReason string
}

// NewTaskID returns a fresh task id: creation time plus a random suffix.
func NewTaskID(now time.Time) string {
	return fmt.Sprintf("task_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

// NewNotificationID returns a fresh notification id.
func NewNotificationID(now time.Time) string {
	return fmt.Sprintf("notif_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

// replaceTask returns a copy of tasks with the task matching updated.ID
// swapped in place, preserving relative order.
func replaceTask(tasks []model.Task, updated model.Task) []model.Task {
	next := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = t
		}
	}
	return next
}

// findTask returns the task with the given id, or false.
func findTask(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
