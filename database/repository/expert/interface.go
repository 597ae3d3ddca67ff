package expertRepo

import (
	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpertRepository defines persistence operations for experts.
type ExpertRepository interface {
	Create(e *models.Expert) (*models.Expert, error)
	List() ([]models.Expert, error)
	GetByID(id primitive.ObjectID) (*models.Expert, error)
	Update(id primitive.ObjectID, fields bson.M) (*models.Expert, error)
	DeleteByID(id primitive.ObjectID) (bool, error)
}
