package model

import "time"

// RecipientManager is the reserved recipient id for the manager role.
const RecipientManager = "MANAGER"

// Notification is an addressed, timestamped message generated by a
// task-state change. Only the Read flag is ever mutated after creation.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"created_at"`

	// Read indicates whether the recipient has seen this notification.
	Read bool `json:"read"`

	// RecipientID is the manager's reserved id or a technician id.
	RecipientID string `json:"recipient_id"`

	// RelatedTaskID links back to the originating task, when there is one.
	RelatedTaskID string `json:"related_task_id,omitempty"`
}
