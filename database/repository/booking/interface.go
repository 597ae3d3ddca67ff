package bookingRepo

import (
	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchParams drives the admin booking listing: regex search across guest
// fields with pagination and sorting.
type SearchParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Asc    bool
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) (*models.Booking, error)
	GetByID(id primitive.ObjectID) (*models.Booking, error)
	UpdateGuest(id primitive.ObjectID, name, email, phone string) (*models.Booking, error)
	DeleteByID(id primitive.ObjectID) error
	IDsByExpert(expertID primitive.ObjectID) ([]primitive.ObjectID, error)
	Search(params SearchParams) ([]models.Booking, int64, error)
}
