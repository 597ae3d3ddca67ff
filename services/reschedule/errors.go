package reschedule

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reschedule workflow. Handlers translate these into
// the HTTP error taxonomy; anything else is an internal failure.
var (
	// ErrDuplicateRequest signals that an identical pending request
	// (same booking, date and slot) already exists.
	ErrDuplicateRequest = errors.New("rescheduling request already exists")

	// ErrBookingNotFound signals that the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrExpertNotFound signals that the referenced expert does not exist.
	ErrExpertNotFound = errors.New("expert not found")

	// ErrInvalidAction signals a resolution action outside accepted/rejected.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNoRequests signals that a listing matched no pending requests.
	ErrNoRequests = errors.New("no reschedule requests found")

	// ErrNoActiveOptions signals that no unexpired options set exists for
	// the booking.
	ErrNoActiveOptions = errors.New("no active rescheduling options")
)

// InvalidReferenceError indicates a malformed entity reference in the input.
type InvalidReferenceError struct {
	Field string
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s is not a valid entity reference", e.Field)
}

// TooFewOptionsError indicates fewer candidate pairs than the required minimum.
type TooFewOptionsError struct {
	Got int
}

func (e TooFewOptionsError) Error() string {
	return fmt.Sprintf("at least %d available slots are required, got %d", MinOptionCount, e.Got)
}
