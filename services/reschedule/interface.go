package reschedule

import (
	bookingRepo "expertbook/database/repository/booking"
	expertRepo "expertbook/database/repository/expert"
	rescheduleRepo "expertbook/database/repository/reschedule"
	"expertbook/models"
	"time"
)

// MinOptionCount is the smallest allowed number of candidate (date, slot)
// pairs in a rescheduling options set.
const MinOptionCount = 3

// OptionsValidity is how long a rescheduling options set stays valid after
// creation. The expiry is computed server-side and is immutable once set.
const OptionsValidity = 24 * time.Hour

// CreateRequestInput carries a guest's or expert's ask to move a booking.
type CreateRequestInput struct {
	CurrentBookingID string
	RequestedBy      models.RescheduleRequester
	RequestedDateID  string
	RequestedSlotID  string
	OptionsID        string
	SelectedOption   int
}

// CreateOptionsInput carries the candidate pairs offered for a reschedule.
type CreateOptionsInput struct {
	CurrentBookingID string
	AvailableSlots   []SlotOptionInput
}

// SlotOptionInput is one candidate (date, slot) pair in raw reference form.
type SlotOptionInput struct {
	DateID string
	SlotID string
}

// ResolveInput carries the accept/reject decision for a pending request.
type ResolveInput struct {
	CurrentBookingID string
	RequestedDateID  string
	RequestedSlotID  string
	Action           string
}

// RequestSummary is the listing view of a pending request: references only,
// no guest payload.
type RequestSummary struct {
	CurrentBookingID string `json:"currentBookingId"`
	RequestedBy      string `json:"requestedBy"`
	RequestedDateID  string `json:"requestedDateId,omitempty"`
	RequestedSlotID  string `json:"requestedSlotId,omitempty"`
	ExpertName       string `json:"expertName,omitempty"`
}

// RescheduleService is the reschedule workflow: request intake, options
// generation with expiry, and the accept/reject resolution state machine.
type RescheduleService interface {
	CreateRequest(input CreateRequestInput) error
	CreateOptions(input CreateOptionsInput) (*models.ReschedulingOptions, error)
	ActiveOptions(bookingID string) (*models.ReschedulingOptions, error)
	ListRequests() ([]RequestSummary, error)
	ListRequestsByExpert(expertID string) ([]RequestSummary, error)
	Resolve(input ResolveInput) (*models.Booking, error)
}

// DefaultRescheduleService is the production implementation.
type DefaultRescheduleService struct {
	Repo        rescheduleRepo.RescheduleRepository
	BookingRepo bookingRepo.BookingRepository
	ExpertRepo  expertRepo.ExpertRepository
}
