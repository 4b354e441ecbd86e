package error

import "errors"

// Sharing domain errors.
var (
	// ErrShareNotFound is returned when no enabled share profile matches a token.
	ErrShareNotFound = errors.New("share link not found")

	// ErrShareDisabled is returned when the share profile exists but sharing
	// has been turned off.
	ErrShareDisabled = errors.New("sharing is disabled for this profile")

	// ErrShareTokenGeneration is returned when a share token cannot be generated.
	ErrShareTokenGeneration = errors.New("failed to generate share token")
)

// ShareErrorCode defines error codes for sharing errors.
// Format: SHR-XXYYYY where XX is category and YYYY is specific error.
type ShareErrorCode string

const (
	ErrCodeShareNotFound        ShareErrorCode = "SHR-010001"
	ErrCodeShareDisabled        ShareErrorCode = "SHR-010002"
	ErrCodeShareTokenGeneration ShareErrorCode = "SHR-020001"
)

// ShareError represents a sharing error with code and message.
type ShareError struct {
	Code    ShareErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShareError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError creates a new ShareError with the given code and message.
func NewShareError(code ShareErrorCode, message string, err error) *ShareError {
	return &ShareError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
