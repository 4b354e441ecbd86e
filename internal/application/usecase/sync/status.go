// Package sync owns the canonical in-memory state tree per user and keeps it
// consistent with the local snapshot cache and the remote store. Mutations
// are applied optimistically: the tree changes first, the remote write
// follows asynchronously, and a failure only updates the status side-channel
// — it never rolls the local change back.
package sync

import (
	"sync"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// StatusTracker records the outcome of the most recent remote operation per
// user, decoupled from the state tree itself.
type StatusTracker struct {
	mu       sync.RWMutex
	statuses map[uuid.UUID]valueobject.SyncStatus
	clock    adapter.Clock
}

// NewStatusTracker creates a tracker using the given clock for timestamps.
func NewStatusTracker(clock adapter.Clock) *StatusTracker {
	return &StatusTracker{
		statuses: make(map[uuid.UUID]valueobject.SyncStatus),
		clock:    clock,
	}
}

func (t *StatusTracker) set(userID uuid.UUID, state valueobject.SyncState, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[userID] = valueobject.SyncStatus{
		State:     state,
		Message:   message,
		UpdatedAt: t.clock.Now(),
	}
}

// SetSynced marks the last remote operation as confirmed.
func (t *StatusTracker) SetSynced(userID uuid.UUID) {
	t.set(userID, valueobject.SyncStateSynced, "")
}

// SetFailed surfaces a remote failure as user-visible error text.
func (t *StatusTracker) SetFailed(userID uuid.UUID, message string) {
	t.set(userID, valueobject.SyncStateFailed, message)
}

// SetLoading marks a reconciliation fetch as in flight.
func (t *StatusTracker) SetLoading(userID uuid.UUID) {
	t.set(userID, valueobject.SyncStateLoading, "")
}

// Get returns the current status for a user. A user with no recorded
// operations reads as loading, matching a freshly established session.
func (t *StatusTracker) Get(userID uuid.UUID) valueobject.SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s, ok := t.statuses[userID]; ok {
		return s
	}
	return valueobject.SyncStatus{State: valueobject.SyncStateLoading, UpdatedAt: t.clock.Now()}
}
