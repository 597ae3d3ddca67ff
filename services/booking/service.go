package booking

import (
	bookingRepo "expertbook/database/repository/booking"
	"expertbook/models"
	"expertbook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func parseRef(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, InvalidReferenceError{Field: field}
	}
	return id, nil
}

// Book creates a new booking from a guest submission. The status always
// starts at Pending; only the resolution workflow moves it.
func (s *DefaultBookingService) Book(input BookInput) (*models.Booking, error) {
	dateID, err := parseRef("dateId", input.DateID)
	if err != nil {
		return nil, err
	}
	slotID, err := parseRef("slotId", input.SlotID)
	if err != nil {
		return nil, err
	}
	expertID, err := parseRef("expertId", input.ExpertID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		GuestName:       input.GuestName,
		GuestOccupation: input.GuestOccupation,
		GuestAge:        input.GuestAge,
		GuestCity:       input.GuestCity,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
		GuestWhatsapp:   input.GuestWhatsapp,
		GuestWebsite:    input.GuestWebsite,
		GuestProblem:    input.GuestProblem,
		GuestVoiceNote:  input.GuestVoiceNote,
		Tags:            input.Tags,
		GuestKYC:        input.GuestKYC,
		DateID:          dateID,
		SlotID:          slotID,
		ExpertID:        expertID,
		Status:          models.StatusPending,
	}

	created, err := s.Repo.Create(booking)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", created.ID.Hex()),
		zap.String("expertId", expertID.Hex()))
	return created, nil
}

// ModifyGuest updates the guest contact fields of an existing booking.
func (s *DefaultBookingService) ModifyGuest(input ModifyGuestInput) (*models.Booking, error) {
	id, err := parseRef("booking_id", input.BookingID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateGuest(id, input.GuestName, input.GuestEmail, input.GuestPhone)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// GetByID fetches a single booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	oid, err := parseRef("id", id)
	if err != nil {
		return nil, err
	}

	booking, err := s.Repo.GetByID(oid)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

// Search returns one page of the admin booking listing.
func (s *DefaultBookingService) Search(params bookingRepo.SearchParams) (*SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = 5
	}
	if params.Page < 0 {
		params.Page = 0
	}

	bookings, total, err := s.Repo.Search(params)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return &SearchResult{
		Total:    total,
		Page:     params.Page + 1,
		Limit:    params.Limit,
		Bookings: bookings,
	}, nil
}
