package valueobject

import "time"

// SyncState tags the outcome of the most recent remote operation for a user.
type SyncState string

const (
	// SyncStateSynced means the last remote write or reload succeeded.
	SyncStateSynced SyncState = "synced"
	// SyncStateFailed means the last remote operation failed; the optimistic
	// local change is kept and the message carries the surfaced error text.
	SyncStateFailed SyncState = "failed"
	// SyncStateLoading means a reconciliation fetch is in flight.
	SyncStateLoading SyncState = "loading"
)

// SyncStatus is the side-channel status decoupled from the state tree. It is
// a tagged result: Failed carries a message, the other states do not.
type SyncStatus struct {
	State     SyncState `json:"state"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Failed reports whether the status carries an error.
func (s SyncStatus) Failed() bool {
	return s.State == SyncStateFailed
}
