package booking

import (
	bookingRepo "expertbook/database/repository/booking"
	"expertbook/models"
)

// BookInput carries a guest's appointment submission. The booking status is
// always set server-side to Pending; clients cannot choose it.
type BookInput struct {
	GuestName       string
	GuestOccupation models.GuestOccupation
	GuestAge        int
	GuestCity       string
	GuestEmail      string
	GuestPhone      string
	GuestWhatsapp   string
	GuestWebsite    string
	GuestProblem    string
	GuestVoiceNote  string
	Tags            []string
	GuestKYC        bool
	DateID          string
	SlotID          string
	ExpertID        string
}

// ModifyGuestInput carries the guest contact fields that can be changed after
// submission.
type ModifyGuestInput struct {
	BookingID  string
	GuestName  string
	GuestEmail string
	GuestPhone string
}

// SearchResult is one page of the admin booking listing.
type SearchResult struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Bookings []models.Booking `json:"bookings"`
}

// BookingService covers guest submission and the admin booking surface.
type BookingService interface {
	Book(input BookInput) (*models.Booking, error)
	ModifyGuest(input ModifyGuestInput) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	Search(params bookingRepo.SearchParams) (*SearchResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
