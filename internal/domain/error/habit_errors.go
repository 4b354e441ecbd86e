// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the state tree or store.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrHabitNameRequired is returned when a habit is created or renamed with an empty name.
	ErrHabitNameRequired = errors.New("habit name is required")

	// ErrInvalidHabitKind is returned when the habit kind is not number or checkbox.
	ErrInvalidHabitKind = errors.New("invalid habit kind")

	// ErrInvalidDecimals is returned when the decimals value is outside 0-6.
	ErrInvalidDecimals = errors.New("decimals must be between 0 and 6")

	// ErrUnauthorizedHabitAccess is returned when a habit does not belong to the user.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")

	// ErrEmptyReorder is returned when a reorder commit carries no habits.
	ErrEmptyReorder = errors.New("reorder requires at least one habit")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound      HabitErrorCode = "HAB-010001"
	ErrCodeHabitNameRequired  HabitErrorCode = "HAB-010002"
	ErrCodeInvalidHabitKind   HabitErrorCode = "HAB-010003"
	ErrCodeInvalidDecimals    HabitErrorCode = "HAB-010004"
	ErrCodeUnauthorizedHabit  HabitErrorCode = "HAB-010005"
	ErrCodeEmptyReorder       HabitErrorCode = "HAB-010006"
	ErrCodeMissingHabitFields HabitErrorCode = "HAB-010007"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
