package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RescheduleRequester identifies which side of the booking asked to move it.
type RescheduleRequester string

const (
	RequestedByUser   RescheduleRequester = "User"
	RequestedByExpert RescheduleRequester = "Expert"
)

// ReschedulingRequest records a pending ask to move a booking to a different
// date/slot. At most one request may exist per (booking, date, slot) triple;
// the record is deleted once the request is accepted or rejected.
type ReschedulingRequest struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CurrentBookingID primitive.ObjectID  `bson:"currentBookingId" json:"currentBookingId"`
	RequestedBy      RescheduleRequester `bson:"requestedBy" json:"requestedBy"`
	RequestedDateID  primitive.ObjectID  `bson:"requestedDateId,omitempty" json:"requestedDateId,omitempty"`
	RequestedSlotID  primitive.ObjectID  `bson:"requestedSlotId,omitempty" json:"requestedSlotId,omitempty"`
	OptionsID        primitive.ObjectID  `bson:"optionsId,omitempty" json:"optionsId,omitempty"`
	SelectedOption   int                 `bson:"selectedOption,omitempty" json:"selectedOption,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
}

// SlotOption is one candidate (date, slot) pair offered for a reschedule.
type SlotOption struct {
	DateID primitive.ObjectID `bson:"dateId" json:"dateId"`
	SlotID primitive.ObjectID `bson:"slotId" json:"slotId"`
}

// ReschedulingOptions is a time-bound set of at least three candidate
// date/slot alternatives linked to a booking. ExpiryDate is computed
// server-side at creation and never changes; expired records are treated
// as absent at read time.
type ReschedulingOptions struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CurrentBookingID primitive.ObjectID `bson:"currentBookingId" json:"currentBookingId"`
	AvailableSlots   []SlotOption       `bson:"availableSlots" json:"availableSlots"`
	ExpiryDate       time.Time          `bson:"expiryDate" json:"expiryDate"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether the options set is no longer valid at the given time.
func (o *ReschedulingOptions) Expired(at time.Time) bool {
	return at.After(o.ExpiryDate)
}
