package reschedule

import (
	"expertbook/models"
	"expertbook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// parseRef converts a raw reference into an ObjectID, reporting the offending
// field on failure.
func parseRef(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, InvalidReferenceError{Field: field}
	}
	return id, nil
}

// parseOptionalRef is parseRef for fields that may be absent; an empty value
// yields the zero ObjectID.
func parseOptionalRef(field, value string) (primitive.ObjectID, error) {
	if value == "" {
		return primitive.NilObjectID, nil
	}
	return parseRef(field, value)
}

// CreateRequest records a pending ask to move a booking. A second request for
// the same (booking, date, slot) triple is rejected with ErrDuplicateRequest;
// nothing beyond the request record is created.
func (s *DefaultRescheduleService) CreateRequest(input CreateRequestInput) error {
	bookingID, err := parseRef("currentBookingId", input.CurrentBookingID)
	if err != nil {
		return err
	}
	dateID, err := parseOptionalRef("requestedDateId", input.RequestedDateID)
	if err != nil {
		return err
	}
	slotID, err := parseOptionalRef("requestedSlotId", input.RequestedSlotID)
	if err != nil {
		return err
	}
	optionsID, err := parseOptionalRef("optionsId", input.OptionsID)
	if err != nil {
		return err
	}

	existing, err := s.Repo.FindDuplicateRequest(bookingID, dateID, slotID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateRequest
	}

	req := &models.ReschedulingRequest{
		CurrentBookingID: bookingID,
		RequestedBy:      input.RequestedBy,
		RequestedDateID:  dateID,
		RequestedSlotID:  slotID,
		OptionsID:        optionsID,
		SelectedOption:   input.SelectedOption,
	}
	if _, err := s.Repo.CreateRequest(req); err != nil {
		// A concurrent submission can slip past the lookup above and trip
		// the unique (booking, date, slot) index instead.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRequest
		}
		return err
	}

	utils.GetLogger().Info("rescheduling request created",
		zap.String("bookingId", bookingID.Hex()),
		zap.String("requestedBy", string(input.RequestedBy)))
	return nil
}
