package domain

import (
	"errors"
	"strings"
)

// Shared error taxonomy. Handlers map these onto HTTP statuses; anything
// else coming out of a repo is an infrastructure failure and passes through
// unchanged.
var (
	// ErrDatesUnavailable: the requested range conflicts with a blocking
	// reservation, either at check time or at insert time. Callers may offer
	// new dates but must not retry the same range.
	ErrDatesUnavailable = errors.New("dates unavailable")

	// ErrInvalidTransition: the requested lifecycle transition is not in the
	// transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransitionConflict: the status changed underneath a transition;
	// callers should re-fetch before retrying.
	ErrTransitionConflict = errors.New("reservation status changed concurrently")

	// ErrConfirmationTaken: the generated confirmation number collided with
	// an existing row. Safe to retry with a fresh number.
	ErrConfirmationTaken = errors.New("confirmation number already exists")

	ErrListingNotFound     = errors.New("listing not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// ValidationErrors collects every violation found in an input so the caller
// can show all of them at once instead of fixing one at a time.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

func (v *ValidationErrors) Add(msg string) {
	*v = append(*v, msg)
}

func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
