package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expert is a service provider guests book appointments with.
type Expert struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username        string             `bson:"username" json:"username"`
	Email           string             `bson:"email" json:"email"`
	Fullname        string             `bson:"fullname" json:"fullname"`
	Expertise       []string           `bson:"expertise" json:"expertise"`
	Designation     string             `bson:"designation" json:"designation"`
	Description     string             `bson:"description" json:"description"`
	Avatar          string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverPhoto      string             `bson:"coverPhoto,omitempty" json:"coverPhoto,omitempty"`
	AvailableCities []string           `bson:"availableCities" json:"availableCities"`
	IsAdmin         bool               `bson:"isAdmin" json:"isAdmin"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
