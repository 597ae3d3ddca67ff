package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan describes a bookable offering of an expert, e.g. an appointment or
// seminar with a fixed duration and price.
type Plan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Channel     string             `bson:"channel" json:"channel"`
	Duration    int                `bson:"duration" json:"duration"`
	Price       string             `bson:"price" json:"price"`
	BookingType string             `bson:"bookingType" json:"bookingType"`
	ExpertID    primitive.ObjectID `bson:"expertId" json:"expertId"`
	IsDedicated bool               `bson:"isDedicated" json:"isDedicated"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
