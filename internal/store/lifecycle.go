package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/somfix/dashboard/internal/model"
)

// TaskInput carries the validated field values for a new task. The form
// layer is responsible for required-field enforcement; no further
// validation happens here.
type TaskInput struct {
	Description    string
	TechnicianID   *string
	TechnicianName *string
	AmountUSD      float64
	CustomerName   string
	CustomerPhone  string
	Appliance      model.Appliance
	FailureDetails string
}

// AcceptThanksMessage is the fixed success banner shown to a technician
// who accepts a task.
const AcceptThanksMessage = "Wad ku mahadsantahay sidaad u aqbashay shaqadaan, " +
	"fadlan macmiilka aad usocoto ugu adeeg si hufan, daacadnimo, iyo howlkarnimo, mahadsanid!"

// Complete failure banner texts.
const (
	notAuthorizedMessage  = "You are not authorized to complete this task."
	mustBeAcceptedMessage = "This task must be in 'ACCEPTED' state before you can complete it."
)

// Add creates a new PENDING task from the given input, prepends it to the
// task list, and notifies the assigned technician (if any) and the manager.
func Add(s State, in TaskInput, now time.Time) (State, Outcome) {
	task := model.Task{
		ID:                     NewTaskID(now),
		Description:            in.Description,
		AssignedTechnicianID:   in.TechnicianID,
		AssignedTechnicianName: in.TechnicianName,
		Status:                 model.StatusPending,
		AmountUSD:              in.AmountUSD,
		CreatedAt:              now,
		CustomerName:           in.CustomerName,
		CustomerPhone:          in.CustomerPhone,
		Appliance:              in.Appliance,
		FailureDetails:         in.FailureDetails,
	}

	s.Tasks = append([]model.Task{task}, s.Tasks...)

	if task.AssignedTechnicianID != nil && task.AssignedTechnicianName != nil {
		s = Notify(s, fmt.Sprintf(
			"New task: %q for %s (Customer: %s) assigned to you.",
			snippet(task.Description), task.Appliance, firstName(task.CustomerName),
		), *task.AssignedTechnicianID, task.ID, now)
	}

	assignee := "Unassigned"
	if task.AssignedTechnicianName != nil {
		assignee = *task.AssignedTechnicianName
	}
	s = Notify(s, fmt.Sprintf(
		"Task for %s (Customer: %s) assigned to %s.",
		task.Appliance, task.CustomerName, assignee,
	), model.RecipientManager, task.ID, now)

	return s, Outcome{Changed: true, Sound: true}
}

// Accept transitions a PENDING task assigned to actorID into ACCEPTED.
// Precondition failures are silent no-ops: the view only offers the
// action when the preconditions already hold, so a miss means a stale
// view, not a user error.
func Accept(s State, taskID, actorID string, now time.Time) (State, Outcome) {
	task, ok := findTask(s.Tasks, taskID)
	if !ok || task.Status != model.StatusPending || !task.IsAssignedTo(actorID) {
		return s, Outcome{NoopReason: fmt.Sprintf(
			"accept conditions not met for task %s by actor %s", taskID, actorID,
		)}
	}

	task.Status = model.StatusAccepted
	s.Tasks = replaceTask(s.Tasks, task)

	s = Notify(s, fmt.Sprintf(
		"Technician %s ACCEPTED task: %q for %s.",
		*task.AssignedTechnicianName, snippet(task.Description), task.Appliance,
	), model.RecipientManager, task.ID, now)
	s = Notify(s, fmt.Sprintf(
		"You ACCEPTED task: %q for %s.",
		snippet(task.Description), task.Appliance,
	), *task.AssignedTechnicianID, task.ID, now)

	out := Outcome{Changed: true, Sound: true}
	if s.Session.Role == model.RoleTechnician && s.Session.ID == actorID {
		out.Banner = &Banner{Text: AcceptThanksMessage, Severity: SeveritySuccess}
	}
	return s, out
}

// Reject transitions a PENDING task assigned to actorID into REJECTED.
// Same precondition and silent-no-op behavior as Accept; no banner.
func Reject(s State, taskID, actorID string, now time.Time) (State, Outcome) {
	task, ok := findTask(s.Tasks, taskID)
	if !ok || task.Status != model.StatusPending || !task.IsAssignedTo(actorID) {
		return s, Outcome{NoopReason: fmt.Sprintf(
			"reject conditions not met for task %s by actor %s", taskID, actorID,
		)}
	}

	task.Status = model.StatusRejected
	s.Tasks = replaceTask(s.Tasks, task)

	s = Notify(s, fmt.Sprintf(
		"Technician %s REJECTED task: %q for %s.",
		*task.AssignedTechnicianName, snippet(task.Description), task.Appliance,
	), model.RecipientManager, task.ID, now)
	s = Notify(s, fmt.Sprintf(
		"You REJECTED task: %q for %s.",
		snippet(task.Description), task.Appliance,
	), *task.AssignedTechnicianID, task.ID, now)

	return s, Outcome{Changed: true}
}

// Complete transitions a task into COMPLETED and appends it to the
// history ledger. The manager may complete any non-completed task; a
// technician may complete only their own task and only from ACCEPTED.
// Authorization and wrong-state failures surface an error banner;
// a missing or already-completed task is a silent no-op.
func Complete(s State, taskID string, actor model.Session, now time.Time) (State, Outcome) {
	task, ok := findTask(s.Tasks, taskID)
	if !ok {
		return s, Outcome{NoopReason: fmt.Sprintf("task %s not found", taskID)}
	}
	if task.Status == model.StatusCompleted {
		return s, Outcome{NoopReason: fmt.Sprintf("task %s already completed", taskID)}
	}

	isManager := actor.Role == model.RoleManager
	isAssignedTech := actor.Role == model.RoleTechnician && task.IsAssignedTo(actor.ID)
	if !isManager && !isAssignedTech {
		return s, Outcome{
			NoopReason: fmt.Sprintf("actor %s not authorized to complete task %s", actor.ID, taskID),
			Banner:     &Banner{Text: notAuthorizedMessage, Severity: SeverityError},
		}
	}
	if !isManager && task.Status != model.StatusAccepted {
		return s, Outcome{
			NoopReason: fmt.Sprintf("task %s not ACCEPTED; technician cannot complete", taskID),
			Banner:     &Banner{Text: mustBeAcceptedMessage, Severity: SeverityError},
		}
	}

	task.Status = model.StatusCompleted
	completedAt := now
	task.CompletedAt = &completedAt

	s.Tasks = replaceTask(s.Tasks, task)
	s.History = append([]model.ServiceRecord{model.ServiceRecord(task)}, s.History...)

	completer := "Manager"
	if !isManager {
		completer = actor.Name
		if task.AssignedTechnicianName != nil {
			completer = *task.AssignedTechnicianName
		}
	}
	s = Notify(s, fmt.Sprintf(
		"Task for %s (%s) marked COMPLETED by %s.",
		task.CustomerName, task.Appliance, completer,
	), model.RecipientManager, task.ID, now)

	if task.AssignedTechnicianID != nil {
		switch {
		case *task.AssignedTechnicianID == actor.ID:
			s = Notify(s, fmt.Sprintf(
				"You marked task for %s (%s) as COMPLETED.",
				task.CustomerName, task.Appliance,
			), *task.AssignedTechnicianID, task.ID, now)
		case isManager:
			s = Notify(s, fmt.Sprintf(
				"Task for %s (%s) was marked COMPLETED by Manager.",
				task.CustomerName, task.Appliance,
			), *task.AssignedTechnicianID, task.ID, now)
		}
	}

	return s, Outcome{Changed: true, Sound: true}
}

// snippet returns the first 20 runes of s for notification text.
func snippet(s string) string {
	r := []rune(s)
	if len(r) > 20 {
		r = r[:20]
	}
	return string(r) + "..."
}

// firstName returns the first whitespace-separated word of a full name.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
