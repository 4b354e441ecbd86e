package error

import "errors"

// Synchronization domain errors.
var (
	// ErrCacheMiss is returned by the state cache when no snapshot exists for
	// the user. The caller falls back to the default seeded state.
	ErrCacheMiss = errors.New("no cached state snapshot")

	// ErrReloadFailed is returned when the remote fetch for a (user, year)
	// scope fails. Stale in-memory state is kept.
	ErrReloadFailed = errors.New("failed to reload remote state")
)

// SyncErrorCode defines error codes for synchronization errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	// Remote read errors (02XXXX)
	ErrCodeReloadFailed SyncErrorCode = "SYN-020001"
	// Remote write errors (03XXXX)
	ErrCodeWriteFailed SyncErrorCode = "SYN-030001"
)

// SyncError represents a synchronization error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
