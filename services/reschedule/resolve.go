package reschedule

import (
	"expertbook/models"
	"expertbook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Resolution actions. The state machine is Requested -> {Accepted, Rejected};
// both branches are terminal.
const (
	ActionAccepted = "accepted"
	ActionRejected = "rejected"
)

// Resolve applies an accept/reject decision to a pending reschedule request.
//
// Accept replaces the booking: the existing booking's fields are cloned into
// a fresh record carrying the requested date/slot, status Rescheduled and a
// back-reference to the superseded booking; the original booking and the
// request/options records are then removed. The replacement is created before
// the original is deleted, so a failure between the two steps can leave both
// records but never neither; the pair is not wrapped in a multi-document
// transaction.
//
// Reject removes the request and leaves the booking untouched.
func (s *DefaultRescheduleService) Resolve(input ResolveInput) (*models.Booking, error) {
	bookingID, err := parseRef("currentBookingId", input.CurrentBookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	switch input.Action {
	case ActionAccepted:
		return s.accept(booking, input)
	case ActionRejected:
		return nil, s.reject(booking)
	default:
		return nil, ErrInvalidAction
	}
}

func (s *DefaultRescheduleService) accept(booking *models.Booking, input ResolveInput) (*models.Booking, error) {
	dateID, err := parseRef("requestedDateId", input.RequestedDateID)
	if err != nil {
		return nil, err
	}
	slotID, err := parseRef("requestedSlotId", input.RequestedSlotID)
	if err != nil {
		return nil, err
	}

	replacement := *booking
	replacement.ID = primitive.NilObjectID
	replacement.DateID = dateID
	replacement.SlotID = slotID
	replacement.Status = models.StatusRescheduled
	replacement.RescheduledFrom = booking.ID

	created, err := s.BookingRepo.Create(&replacement)
	if err != nil {
		return nil, err
	}
	if err := s.BookingRepo.DeleteByID(booking.ID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.DeleteRequestsByBooking(booking.ID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.DeleteOptionsByBooking(booking.ID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("reschedule request accepted",
		zap.String("oldBookingId", booking.ID.Hex()),
		zap.String("newBookingId", created.ID.Hex()),
		zap.String("dateId", dateID.Hex()),
		zap.String("slotId", slotID.Hex()))
	return created, nil
}

func (s *DefaultRescheduleService) reject(booking *models.Booking) error {
	if _, err := s.Repo.DeleteRequestsByBooking(booking.ID); err != nil {
		return err
	}
	if _, err := s.Repo.DeleteOptionsByBooking(booking.ID); err != nil {
		return err
	}

	utils.GetLogger().Info("reschedule request rejected",
		zap.String("bookingId", booking.ID.Hex()))
	return nil
}
