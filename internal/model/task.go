package model

import "time"

// Status is the lifecycle state of a repair task.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Appliance is the closed set of appliance categories a task can target.
type Appliance string

const (
	ApplianceFridge         Appliance = "Fridge"
	ApplianceCooker         Appliance = "Cooker"
	ApplianceWashingMachine Appliance = "Washing Machine"
	ApplianceAirConditioner Appliance = "Air Conditioner"
	ApplianceOther          Appliance = "Other"
)

// Appliances returns every appliance category in display order.
func Appliances() []Appliance {
	return []Appliance{
		ApplianceFridge,
		ApplianceCooker,
		ApplianceWashingMachine,
		ApplianceAirConditioner,
		ApplianceOther,
	}
}

// Task is a unit of repair work tracked through the fixed lifecycle
// PENDING -> ACCEPTED -> COMPLETED, with PENDING -> REJECTED as the
// other terminal branch.
type Task struct {
	// ID is the unique identifier for this task. Never reused.
	ID string `json:"id"`

	// Description is the general description of the work.
	Description string `json:"description"`

	// AssignedTechnicianID and AssignedTechnicianName identify the
	// technician the task is assigned to. Both are nil or both are set.
	AssignedTechnicianID   *string `json:"assigned_technician_id"`
	AssignedTechnicianName *string `json:"assigned_technician_name"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// AmountUSD is the quoted total for the job. Non-negative.
	AmountUSD float64 `json:"amount_usd"`

	// CreatedAt is set once at creation and never changes.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set exactly once, when the task reaches COMPLETED.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// CustomerName and CustomerPhone identify the customer.
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	// Appliance is the category of appliance being serviced.
	Appliance Appliance `json:"appliance"`

	// FailureDetails describes the specific reported problem.
	FailureDetails string `json:"failure_details"`
}

// IsAssignedTo reports whether the task is assigned to the given
// technician id. Unassigned tasks match no one.
func (t Task) IsAssignedTo(technicianID string) bool {
	return t.AssignedTechnicianID != nil && *t.AssignedTechnicianID == technicianID
}

// ServiceRecord is an immutable snapshot of a Task taken at the moment
// it became COMPLETED. Structurally identical to Task.
type ServiceRecord Task
