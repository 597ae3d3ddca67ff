package reschedule

import (
	"time"

	"expertbook/models"
	"expertbook/utils"

	"go.uber.org/zap"
)

// CreateOptions persists a set of candidate (date, slot) pairs for the
// booking. The expiry is always computed server-side as now plus
// OptionsValidity; any client-supplied expiry never reaches this layer.
func (s *DefaultRescheduleService) CreateOptions(input CreateOptionsInput) (*models.ReschedulingOptions, error) {
	bookingID, err := parseRef("currentBookingId", input.CurrentBookingID)
	if err != nil {
		return nil, err
	}
	if len(input.AvailableSlots) < MinOptionCount {
		return nil, TooFewOptionsError{Got: len(input.AvailableSlots)}
	}

	slots := make([]models.SlotOption, 0, len(input.AvailableSlots))
	for _, pair := range input.AvailableSlots {
		dateID, err := parseRef("availableSlots.dateId", pair.DateID)
		if err != nil {
			return nil, err
		}
		slotID, err := parseRef("availableSlots.slotId", pair.SlotID)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.SlotOption{DateID: dateID, SlotID: slotID})
	}

	opts := &models.ReschedulingOptions{
		CurrentBookingID: bookingID,
		AvailableSlots:   slots,
		ExpiryDate:       time.Now().Add(OptionsValidity),
	}
	created, err := s.Repo.CreateOptions(opts)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("rescheduling options created",
		zap.String("bookingId", bookingID.Hex()),
		zap.Int("candidates", len(slots)),
		zap.Time("expiry", created.ExpiryDate))
	return created, nil
}

// ActiveOptions returns the booking's latest options set, applying the
// read-time expiry check: an expired set behaves as if it never existed.
// No background job purges expired records.
func (s *DefaultRescheduleService) ActiveOptions(bookingID string) (*models.ReschedulingOptions, error) {
	id, err := parseRef("bookingId", bookingID)
	if err != nil {
		return nil, err
	}

	opts, err := s.Repo.OptionsByBooking(id)
	if err != nil {
		return nil, err
	}
	if opts == nil || opts.Expired(time.Now()) {
		return nil, ErrNoActiveOptions
	}
	return opts, nil
}
