package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateAvailability enumerates the availability states of a calendar day.
type DateAvailability string

const (
	DateHoliday      DateAvailability = "holiday"
	DateAvailable    DateAvailability = "available"
	DateNotAvailable DateAvailability = "not available"
	DateBooked       DateAvailability = "booked"
)

// DateEntry is a calendar day of an expert with its availability status and
// associated slots. The date is stored in "DD/MM/YYYY" format.
type DateEntry struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Date         string               `bson:"date" json:"date"`
	Availability DateAvailability     `bson:"availability" json:"availability"`
	ExpertID     primitive.ObjectID   `bson:"expertId" json:"expertId"`
	SlotIDs      []primitive.ObjectID `bson:"slotsId" json:"slotsId"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
