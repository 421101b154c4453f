package store

import "github.com/somfix/dashboard/internal/model"

// SwitchUser replaces the active session and immediately marks the new
// identity's previously-unread notifications as read. Task and history
// state are never touched. The controller is responsible for discarding
// any transient banners owned by the previous session.
func SwitchUser(s State, role model.Role, id, name string) State {
	s.Session = model.Session{Role: role, ID: id, Name: name}
	return MarkRead(s, id)
}

// VisibleTasks returns the tasks the active session may see: everything
// for the manager, own assignments for a technician. Advisory filtering
// for the view layer only; mutating operations enforce their own
// preconditions.
func VisibleTasks(s State) []model.Task {
	switch s.Session.Role {
	case model.RoleManager:
		return s.Tasks
	case model.RoleTechnician:
		var out []model.Task
		for _, t := range s.Tasks {
			if t.IsAssignedTo(s.Session.ID) {
				out = append(out, t)
			}
		}
		return out
	default:
		return nil
	}
}

// ActiveTasks returns VisibleTasks minus terminal (completed or
// rejected) tasks: the working set both dashboards show by default.
func ActiveTasks(s State) []model.Task {
	var out []model.Task
	for _, t := range VisibleTasks(s) {
		if !t.Status.IsTerminal() {
			out = append(out, t)
		}
	}
	return out
}
