package catalogRepo

import (
	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogRepository defines persistence operations for the bookable catalog:
// plans, slots and calendar dates. These are read-only from the reschedule
// workflow's point of view and mutated only through the admin CRUD surface.
type CatalogRepository interface {
	CreatePlan(p *models.Plan) (*models.Plan, error)
	GetPlan(id primitive.ObjectID) (*models.Plan, error)
	ListPlans() ([]models.Plan, error)
	PlansByExpert(expertID primitive.ObjectID) ([]models.Plan, error)
	UpdatePlan(id primitive.ObjectID, fields bson.M) (*models.Plan, error)
	DeletePlan(id primitive.ObjectID) (bool, error)

	CreateSlot(s *models.Slot) (*models.Slot, error)
	ListSlots() ([]models.Slot, error)
	SlotsByExpert(expertID primitive.ObjectID) ([]models.Slot, error)
	SlotsByIDs(ids []primitive.ObjectID) ([]models.Slot, error)
	UpdateSlot(id primitive.ObjectID, fields bson.M) (*models.Slot, error)
	DeleteSlot(id primitive.ObjectID) (bool, error)

	CreateDate(d *models.DateEntry) (*models.DateEntry, error)
	ListDates() ([]models.DateEntry, error)
	DatesByExpert(expertID primitive.ObjectID) ([]models.DateEntry, error)
	UpdateDate(id primitive.ObjectID, fields bson.M) (*models.DateEntry, error)
	DeleteDate(id primitive.ObjectID) (bool, error)
}
