package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestOccupation enumerates the occupations a guest can declare when booking.
type GuestOccupation string

const (
	OccupationStudent             GuestOccupation = "Student"
	OccupationBusinessperson      GuestOccupation = "Businessperson"
	OccupationWorkingProfessional GuestOccupation = "Working Professional"
)

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	StatusPending     BookingStatus = "Pending"
	StatusCompleted   BookingStatus = "Completed"
	StatusCancelled   BookingStatus = "Cancelled"
	StatusRescheduled BookingStatus = "Rescheduled"
	StatusRejected    BookingStatus = "Rejected"
)

// Booking represents a confirmed appointment between a guest and an expert
// for a specific date and slot. Status transitions are one-directional
// except Rescheduled, which spawns a replacement booking and removes the
// original.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GuestName       string             `bson:"guestName" json:"guestName"`
	GuestOccupation GuestOccupation    `bson:"guestOccupation" json:"guestOccupation"`
	GuestAge        int                `bson:"guestAge" json:"guestAge"`
	GuestCity       string             `bson:"guestCity" json:"guestCity"`
	GuestEmail      string             `bson:"guestEmail" json:"guestEmail"`
	GuestPhone      string             `bson:"guestPhone" json:"guestPhone"`
	GuestWhatsapp   string             `bson:"guestWhatsapp" json:"guestWhatsapp"`
	GuestWebsite    string             `bson:"guestWebsite,omitempty" json:"guestWebsite,omitempty"`
	GuestProblem    string             `bson:"guestProblem" json:"guestProblem"`
	GuestVoiceNote  string             `bson:"guestVoiceNote,omitempty" json:"guestVoiceNote,omitempty"`
	Tags            []string           `bson:"tags" json:"tags"`
	GuestKYC        bool               `bson:"guestKYC" json:"guestKYC"`
	DateID          primitive.ObjectID `bson:"dateId" json:"dateId"`
	SlotID          primitive.ObjectID `bson:"slotId" json:"slotId"`
	ExpertID        primitive.ObjectID `bson:"expertId" json:"expertId"`
	Status          BookingStatus      `bson:"status" json:"status"`
	// RescheduledFrom references the booking this record superseded, set only
	// on bookings created by an accepted reschedule.
	RescheduledFrom primitive.ObjectID `bson:"rescheduledFrom,omitempty" json:"rescheduledFrom,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
