package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot is a discrete bookable time unit belonging to a plan and expert.
type Slot struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Availability string             `bson:"availability" json:"availability"`
	Timing       string             `bson:"timing" json:"timing"`
	Period       string             `bson:"period" json:"period"`
	PlanID       primitive.ObjectID `bson:"planId" json:"planId"`
	ExpertID     primitive.ObjectID `bson:"expertId" json:"expertId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
