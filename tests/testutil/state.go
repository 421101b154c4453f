// Package testutil provides shared fixtures for dashboard state tests.
package testutil

import (
	"testing"
	"time"

	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/store"
)

// Now is a fixed reference time for deterministic transitions.
var Now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

// TechA and TechB are roster entries used across tests.
var (
	TechA = model.Technician{ID: "tech_a", Name: "Asha Omar"}
	TechB = model.Technician{ID: "tech_b", Name: "Bashir Ali"}
)

// ManagerState returns an empty state with the manager session active.
func ManagerState(t *testing.T) store.State {
	t.Helper()
	return store.NewState(model.ManagerSession())
}

// Input returns a complete task input assigned to the given technician.
// Pass nil for an unassigned task.
func Input(tech *model.Technician) store.TaskInput {
	in := store.TaskInput{
		Description:    "Customer requested urgent repair service.",
		AmountUSD:      150,
		CustomerName:   "Ahmed Omar",
		CustomerPhone:  "+252 61 555 123",
		Appliance:      model.ApplianceFridge,
		FailureDetails: "Not cooling properly",
	}
	if tech != nil {
		id, name := tech.ID, tech.Name
		in.TechnicianID = &id
		in.TechnicianName = &name
	}
	return in
}

// AddTask creates a task from the input and returns the new state and
// the created task's id.
func AddTask(t *testing.T, s store.State, in store.TaskInput) (store.State, string) {
	t.Helper()
	next, _ := store.Add(s, in, Now)
	if len(next.Tasks) == 0 {
		t.Fatal("Add produced no task")
	}
	return next, next.Tasks[0].ID
}
