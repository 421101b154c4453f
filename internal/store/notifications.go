package store

import (
	"time"

	"github.com/somfix/dashboard/internal/model"
)

// Notify prepends a new unread notification addressed to recipientID.
// Newest notifications come first.
func Notify(s State, message, recipientID, relatedTaskID string, now time.Time) State {
	n := model.Notification{
		ID:            NewNotificationID(now),
		Message:       message,
		CreatedAt:     now,
		Read:          false,
		RecipientID:   recipientID,
		RelatedTaskID: relatedTaskID,
	}
	s.Notifications = append([]model.Notification{n}, s.Notifications...)
	return s
}

// MarkRead marks every unread notification addressed to recipientID as
// read in one batch. Other recipients' notifications are untouched.
func MarkRead(s State, recipientID string) State {
	next := make([]model.Notification, len(s.Notifications))
	for i, n := range s.Notifications {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
		}
		next[i] = n
	}
	s.Notifications = next
	return s
}

// ClearNotifications deletes every notification addressed to recipientID.
// An explicit user action, never automatic.
func ClearNotifications(s State, recipientID string) State {
	next := make([]model.Notification, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		if n.RecipientID != recipientID {
			next = append(next, n)
		}
	}
	s.Notifications = next
	return s
}

// NotificationsFor returns the notifications addressed to recipientID,
// newest first.
func NotificationsFor(s State, recipientID string) []model.Notification {
	var out []model.Notification
	for _, n := range s.Notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount returns how many unread notifications recipientID has.
func UnreadCount(s State, recipientID string) int {
	count := 0
	for _, n := range s.Notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count
}

// HasUnread reports whether recipientID has any unread notification.
func HasUnread(s State, recipientID string) bool {
	return UnreadCount(s, recipientID) > 0
}
