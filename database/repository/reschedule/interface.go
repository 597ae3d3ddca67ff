package rescheduleRepo

import (
	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RescheduleRepository defines persistence operations for the reschedule
// workflow's satellite records: requests and option sets. Both are bounded by
// the resolution of the workflow, not by the booking's own lifetime.
type RescheduleRepository interface {
	CreateRequest(req *models.ReschedulingRequest) (*models.ReschedulingRequest, error)
	FindDuplicateRequest(bookingID, dateID, slotID primitive.ObjectID) (*models.ReschedulingRequest, error)
	ListRequests() ([]models.ReschedulingRequest, error)
	ListRequestsForBookings(bookingIDs []primitive.ObjectID) ([]models.ReschedulingRequest, error)
	DeleteRequestsByBooking(bookingID primitive.ObjectID) (int64, error)

	CreateOptions(opts *models.ReschedulingOptions) (*models.ReschedulingOptions, error)
	OptionsByBooking(bookingID primitive.ObjectID) (*models.ReschedulingOptions, error)
	DeleteOptionsByBooking(bookingID primitive.ObjectID) (int64, error)
}
