package contact

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFields is matched by every *ValidationError.
	ErrInvalidFields = errors.New("form has invalid fields")

	// ErrFieldsFlagged is returned when a submission is attempted while
	// error flags from the previous attempt are still showing.
	ErrFieldsFlagged = errors.New("correct the highlighted fields before resubmitting")

	// ErrSubmitInFlight is returned when a dispatch is already running.
	ErrSubmitInFlight = errors.New("a message is already being sent")

	// ErrAlreadySent is returned while the sent confirmation is showing.
	ErrAlreadySent = errors.New("message was just sent")

	// ErrNotConfigured is returned when the dispatch service was never
	// initialised.
	ErrNotConfigured = errors.New("dispatch service is not configured")

	// ErrClosed is returned after the controller's lifetime has ended.
	ErrClosed = errors.New("contact form is closed")
)

// ValidationError reports which fields failed validation on submit.
type ValidationError struct {
	Errors FieldErrors
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(AllFields))
	for _, f := range e.Errors.Fields() {
		keys = append(keys, f.Key())
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

// Is makes errors.Is(err, ErrInvalidFields) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFields
}

// IsValidationError checks if an error is a validation rejection
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRefused reports whether err means the submission was refused before any
// validation ran (in flight, just sent, flags still showing, or closed).
func IsRefused(err error) bool {
	return errors.Is(err, ErrSubmitInFlight) ||
		errors.Is(err, ErrAlreadySent) ||
		errors.Is(err, ErrFieldsFlagged) ||
		errors.Is(err, ErrClosed)
}
