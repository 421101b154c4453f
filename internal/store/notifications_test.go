package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/store"
	"github.com/somfix/dashboard/tests/testutil"
)

func TestNotifyPrependsNewestFirst(t *testing.T) {
	s := testutil.ManagerState(t)

	s = store.Notify(s, "first", testutil.TechA.ID, "", testutil.Now)
	s = store.Notify(s, "second", testutil.TechA.ID, "", testutil.Now.Add(time.Second))

	require.Len(t, s.Notifications, 2)
	assert.Equal(t, "second", s.Notifications[0].Message)
	assert.Equal(t, "first", s.Notifications[1].Message)
	assert.False(t, s.Notifications[0].Read)
	assert.NotEqual(t, s.Notifications[0].ID, s.Notifications[1].ID)
}

func TestMarkReadBatchesOnlyRecipient(t *testing.T) {
	s := testutil.ManagerState(t)
	s = store.Notify(s, "for a", testutil.TechA.ID, "", testutil.Now)
	s = store.Notify(s, "for a too", testutil.TechA.ID, "", testutil.Now)
	s = store.Notify(s, "for b", testutil.TechB.ID, "", testutil.Now)

	s = store.MarkRead(s, testutil.TechA.ID)

	assert.Equal(t, 0, store.UnreadCount(s, testutil.TechA.ID))
	assert.Equal(t, 1, store.UnreadCount(s, testutil.TechB.ID))
}

func TestClearNotificationsRemovesOnlyRecipient(t *testing.T) {
	s := testutil.ManagerState(t)
	s = store.Notify(s, "for a", testutil.TechA.ID, "", testutil.Now)
	s = store.Notify(s, "for manager", model.RecipientManager, "", testutil.Now)
	s = store.Notify(s, "for b", testutil.TechB.ID, "", testutil.Now)

	s = store.ClearNotifications(s, testutil.TechA.ID)

	assert.Empty(t, store.NotificationsFor(s, testutil.TechA.ID))
	assert.Len(t, store.NotificationsFor(s, model.RecipientManager), 1)
	assert.Len(t, store.NotificationsFor(s, testutil.TechB.ID), 1)
}

func TestHasUnread(t *testing.T) {
	s := testutil.ManagerState(t)
	assert.False(t, store.HasUnread(s, testutil.TechA.ID))

	s = store.Notify(s, "hello", testutil.TechA.ID, "", testutil.Now)
	assert.True(t, store.HasUnread(s, testutil.TechA.ID))
	assert.False(t, store.HasUnread(s, testutil.TechB.ID))

	s = store.MarkRead(s, testutil.TechA.ID)
	assert.False(t, store.HasUnread(s, testutil.TechA.ID))
}
