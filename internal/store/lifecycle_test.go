package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/store"
	"github.com/somfix/dashboard/tests/testutil"
)

func TestAddCreatesPendingTask(t *testing.T) {
	s := testutil.ManagerState(t)

	s, out := store.Add(s, testutil.Input(&testutil.TechA), testutil.Now)

	require.Len(t, s.Tasks, 1)
	task := s.Tasks[0]
	assert.True(t, strings.HasPrefix(task.ID, "task_"))
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, testutil.Now, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, "Ahmed Omar", task.CustomerName)
	assert.Equal(t, model.ApplianceFridge, task.Appliance)
	require.NotNil(t, task.AssignedTechnicianID)
	assert.Equal(t, testutil.TechA.ID, *task.AssignedTechnicianID)

	assert.True(t, out.Changed)
	assert.True(t, out.Sound)
	assert.Nil(t, out.Banner)
}

func TestAddNotifiesTechnicianAndManager(t *testing.T) {
	s := testutil.ManagerState(t)

	s, _ = store.Add(s, testutil.Input(&testutil.TechA), testutil.Now)

	require.Len(t, s.Notifications, 2)
	assert.Len(t, store.NotificationsFor(s, testutil.TechA.ID), 1)
	assert.Len(t, store.NotificationsFor(s, model.RecipientManager), 1)

	techNote := store.NotificationsFor(s, testutil.TechA.ID)[0]
	assert.Contains(t, techNote.Message, "assigned to you")
	assert.Equal(t, s.Tasks[0].ID, techNote.RelatedTaskID)
	assert.False(t, techNote.Read)

	managerNote := store.NotificationsFor(s, model.RecipientManager)[0]
	assert.Contains(t, managerNote.Message, testutil.TechA.Name)
}

func TestAddUnassignedNotifiesOnlyManager(t *testing.T) {
	s := testutil.ManagerState(t)

	s, _ = store.Add(s, testutil.Input(nil), testutil.Now)

	require.Len(t, s.Notifications, 1)
	note := s.Notifications[0]
	assert.Equal(t, model.RecipientManager, note.RecipientID)
	assert.Contains(t, note.Message, "Unassigned")
}

func TestAcceptTransitionsPendingAssignedTask(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechA.ID, testutil.TechA.Name)

	next, out := store.Accept(s, taskID, testutil.TechA.ID, testutil.Now)

	require.True(t, out.Changed)
	assert.Equal(t, model.StatusAccepted, next.Tasks[0].Status)
	assert.True(t, out.Sound)
	require.NotNil(t, out.Banner)
	assert.Equal(t, store.SeveritySuccess, out.Banner.Severity)
	assert.Equal(t, store.AcceptThanksMessage, out.Banner.Text)

	managerNotes := store.NotificationsFor(next, model.RecipientManager)
	assert.Contains(t, managerNotes[0].Message, "ACCEPTED")
	techNotes := store.NotificationsFor(next, testutil.TechA.ID)
	assert.Contains(t, techNotes[0].Message, "You ACCEPTED")
}

func TestAcceptNoBannerWhenSessionIsNotActor(t *testing.T) {
	// A manager session invoking Accept on the technician's behalf gets
	// no success banner; the thank-you text targets the technician only.
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	next, out := store.Accept(s, taskID, testutil.TechA.ID, testutil.Now)

	assert.True(t, out.Changed)
	assert.Equal(t, model.StatusAccepted, next.Tasks[0].Status)
	assert.Nil(t, out.Banner)
}

func TestAcceptPreconditionFailuresAreSilentNoops(t *testing.T) {
	base := testutil.ManagerState(t)
	base, assignedID := testutil.AddTask(t, base, testutil.Input(&testutil.TechA))
	base, unassignedID := testutil.AddTask(t, base, testutil.Input(nil))

	accepted, _ := store.Accept(base, assignedID, testutil.TechA.ID, testutil.Now)

	tests := []struct {
		name    string
		state   store.State
		taskID  string
		actorID string
	}{
		{"missing task", base, "task_nope", testutil.TechA.ID},
		{"wrong actor", base, assignedID, testutil.TechB.ID},
		{"unassigned task", base, unassignedID, testutil.TechA.ID},
		{"already accepted", accepted, assignedID, testutil.TechA.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := store.Accept(tt.state, tt.taskID, tt.actorID, testutil.Now)

			assert.Equal(t, tt.state, next, "state must be unchanged")
			assert.False(t, out.Changed)
			assert.Nil(t, out.Banner)
			assert.False(t, out.Sound)
			assert.NotEmpty(t, out.NoopReason)
		})
	}
}

func TestRejectTransitionsPendingAssignedTask(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechA.ID, testutil.TechA.Name)

	next, out := store.Reject(s, taskID, testutil.TechA.ID, testutil.Now)

	require.True(t, out.Changed)
	assert.Equal(t, model.StatusRejected, next.Tasks[0].Status)
	assert.Nil(t, out.Banner, "reject shows no banner")
	assert.False(t, out.Sound)

	managerNotes := store.NotificationsFor(next, model.RecipientManager)
	assert.Contains(t, managerNotes[0].Message, "REJECTED")
	techNotes := store.NotificationsFor(next, testutil.TechA.ID)
	assert.Contains(t, techNotes[0].Message, "You REJECTED")
}

func TestRejectPreconditionFailuresAreSilentNoops(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	accepted, _ := store.Accept(s, taskID, testutil.TechA.ID, testutil.Now)

	tests := []struct {
		name    string
		state   store.State
		taskID  string
		actorID string
	}{
		{"missing task", s, "task_nope", testutil.TechA.ID},
		{"wrong actor", s, taskID, testutil.TechB.ID},
		{"not pending", accepted, taskID, testutil.TechA.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := store.Reject(tt.state, tt.taskID, tt.actorID, testutil.Now)

			assert.Equal(t, tt.state, next)
			assert.False(t, out.Changed)
			assert.NotEmpty(t, out.NoopReason)
		})
	}
}

func TestTechnicianCompleteRequiresAccepted(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechA.ID, testutil.TechA.Name)

	next, out := store.Complete(s, taskID, s.Session, testutil.Now)

	assert.Equal(t, s, next, "pending task must not complete for a technician")
	assert.False(t, out.Changed)
	require.NotNil(t, out.Banner)
	assert.Equal(t, store.SeverityError, out.Banner.Severity)
	assert.Contains(t, out.Banner.Text, "ACCEPTED")
}

func TestTechnicianCompletesAcceptedTask(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechA.ID, testutil.TechA.Name)
	s, _ = store.Accept(s, taskID, testutil.TechA.ID, testutil.Now)

	next, out := store.Complete(s, taskID, s.Session, testutil.Now)

	require.True(t, out.Changed)
	task := next.Tasks[0]
	assert.Equal(t, model.StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testutil.Now, *task.CompletedAt)
	assert.True(t, out.Sound)

	techNotes := store.NotificationsFor(next, testutil.TechA.ID)
	assert.Contains(t, techNotes[0].Message, "You marked task")
}

func TestManagerCompletesFromPending(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	next, out := store.Complete(s, taskID, s.Session, testutil.Now)

	require.True(t, out.Changed)
	assert.Equal(t, model.StatusCompleted, next.Tasks[0].Status)

	// The assigned technician hears about a completion done on their behalf.
	techNotes := store.NotificationsFor(next, testutil.TechA.ID)
	require.NotEmpty(t, techNotes)
	assert.Contains(t, techNotes[0].Message, "by Manager")

	managerNotes := store.NotificationsFor(next, model.RecipientManager)
	assert.Contains(t, managerNotes[0].Message, "COMPLETED by Manager")
}

func TestCompleteUnauthorizedTechnician(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechB.ID, testutil.TechB.Name)

	next, out := store.Complete(s, taskID, s.Session, testutil.Now)

	assert.Equal(t, s, next)
	require.NotNil(t, out.Banner)
	assert.Equal(t, store.SeverityError, out.Banner.Severity)
	assert.Contains(t, out.Banner.Text, "not authorized")
}

func TestCompleteIsSilentOnMissingOrFinishedTask(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	completed, _ := store.Complete(s, taskID, s.Session, testutil.Now)

	tests := []struct {
		name   string
		state  store.State
		taskID string
	}{
		{"missing task", s, "task_nope"},
		{"already completed", completed, taskID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := store.Complete(tt.state, tt.taskID, tt.state.Session, testutil.Now)

			assert.Equal(t, tt.state, next)
			assert.False(t, out.Changed)
			assert.Nil(t, out.Banner)
			assert.NotEmpty(t, out.NoopReason)
		})
	}
}

func TestCompletedAtSetIffCompleted(t *testing.T) {
	s := testutil.ManagerState(t)
	s, pendingID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, acceptedID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, rejectedID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, completedID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	s, _ = store.Accept(s, acceptedID, testutil.TechA.ID, testutil.Now)
	s, _ = store.Reject(s, rejectedID, testutil.TechA.ID, testutil.Now)
	s, _ = store.Complete(s, completedID, s.Session, testutil.Now)

	_ = pendingID
	for _, task := range s.Tasks {
		if task.Status == model.StatusCompleted {
			assert.NotNil(t, task.CompletedAt, "task %s", task.ID)
		} else {
			assert.Nil(t, task.CompletedAt, "task %s", task.ID)
		}
	}
}

func TestCompleteAppendsEqualServiceRecord(t *testing.T) {
	s := testutil.ManagerState(t)
	s, firstID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, secondID := testutil.AddTask(t, s, testutil.Input(&testutil.TechB))

	s, _ = store.Complete(s, firstID, s.Session, testutil.Now)
	require.Len(t, s.History, 1)

	s, _ = store.Complete(s, secondID, s.Session, testutil.Now)
	require.Len(t, s.History, 2, "ledger grows by exactly one per completion")

	// Newest first; each record equals the post-completion task.
	assert.Equal(t, secondID, s.History[0].ID)
	for _, record := range s.History {
		task, ok := findTaskByID(s.Tasks, record.ID)
		require.True(t, ok)
		assert.Equal(t, task, model.Task(record))
	}
}

func TestTransitionsPreserveTaskOrder(t *testing.T) {
	s := testutil.ManagerState(t)
	s, _ = testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, middleID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))
	s, _ = testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	before := taskIDs(s.Tasks)
	s, _ = store.Accept(s, middleID, testutil.TechA.ID, testutil.Now)

	assert.Equal(t, before, taskIDs(s.Tasks))
}

// Scenario: assigned task flows accept -> complete with full fan-out.
func TestScenarioAssignedAcceptComplete(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(&testutil.TechA))

	require.Len(t, store.NotificationsFor(s, testutil.TechA.ID), 1)
	require.Len(t, store.NotificationsFor(s, model.RecipientManager), 1)

	s = store.SwitchUser(s, model.RoleTechnician, testutil.TechA.ID, testutil.TechA.Name)

	var out store.Outcome
	s, out = store.Accept(s, taskID, testutil.TechA.ID, testutil.Now)
	require.True(t, out.Changed)
	assert.Equal(t, model.StatusAccepted, s.Tasks[0].Status)
	require.NotNil(t, out.Banner)

	s, out = store.Complete(s, taskID, s.Session, testutil.Now)
	require.True(t, out.Changed)
	assert.Equal(t, model.StatusCompleted, s.Tasks[0].Status)
	require.Len(t, s.History, 1)
	assert.Equal(t, s.Tasks[0], model.Task(s.History[0]))
}

// Scenario: accepting an unassigned task is a no-op for everyone.
func TestScenarioUnassignedAcceptNoop(t *testing.T) {
	s := testutil.ManagerState(t)
	s, taskID := testutil.AddTask(t, s, testutil.Input(nil))

	for _, actor := range []string{testutil.TechA.ID, testutil.TechB.ID, model.RecipientManager} {
		next, out := store.Accept(s, taskID, actor, testutil.Now)
		assert.Equal(t, s, next)
		assert.False(t, out.Changed)
	}
	assert.Equal(t, model.StatusPending, s.Tasks[0].Status)
}

func findTaskByID(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
