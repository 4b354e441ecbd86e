package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when no entry exists for a (date, habit) pair.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidDate is returned when a date is not canonical YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrInvalidEntryValue is returned when a logged literal cannot be parsed
	// as a number for a number habit.
	ErrInvalidEntryValue = errors.New("invalid entry value")

	// ErrInvalidHistoryMonth is returned when the history month filter is not
	// "all" or a zero-padded month number.
	ErrInvalidHistoryMonth = errors.New("invalid history month filter")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound       EntryErrorCode = "ENT-010001"
	ErrCodeInvalidDate         EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryValue   EntryErrorCode = "ENT-010003"
	ErrCodeInvalidHistoryMonth EntryErrorCode = "ENT-010004"
	ErrCodeMissingEntryFields  EntryErrorCode = "ENT-010005"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
