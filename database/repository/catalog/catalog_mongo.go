package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	planColl *mongo.Collection
	slotColl *mongo.Collection
	dateColl *mongo.Collection
}

// NewMongoCatalogRepo creates a CatalogRepository backed by the given database.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	repo := &MongoCatalogRepo{
		planColl: db.Collection("plans"),
		slotColl: db.Collection("slots"),
		dateColl: db.Collection("dates"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	expertIdx := []mongo.IndexModel{{Keys: bson.D{{Key: "expertId", Value: 1}}}}
	for _, coll := range []*mongo.Collection{r.planColl, r.slotColl, r.dateColl} {
		if _, err := coll.Indexes().CreateMany(ctx, expertIdx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// --- Plans ---

func (r *MongoCatalogRepo) CreatePlan(p *models.Plan) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.planColl.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("error creating plan: %w", err)
	}
	return p, nil
}

func (r *MongoCatalogRepo) GetPlan(id primitive.ObjectID) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var plan models.Plan
	if err := r.planColl.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching plan %s: %w", id.Hex(), err)
	}
	return &plan, nil
}

func (r *MongoCatalogRepo) ListPlans() ([]models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.planColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("error decoding plans: %w", err)
	}
	return plans, nil
}

func (r *MongoCatalogRepo) PlansByExpert(expertID primitive.ObjectID) ([]models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.planColl.Find(ctx, bson.M{"expertId": expertID})
	if err != nil {
		return nil, fmt.Errorf("error fetching plans for expert %s: %w", expertID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("error decoding plans: %w", err)
	}
	return plans, nil
}

func (r *MongoCatalogRepo) UpdatePlan(id primitive.ObjectID, fields bson.M) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var plan models.Plan
	if err := r.planColl.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating plan %s: %w", id.Hex(), err)
	}
	return &plan, nil
}

func (r *MongoCatalogRepo) DeletePlan(id primitive.ObjectID) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.planColl.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting plan %s: %w", id.Hex(), err)
	}
	return res.DeletedCount > 0, nil
}

// --- Slots ---

func (r *MongoCatalogRepo) CreateSlot(s *models.Slot) (*models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.slotColl.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("error creating slot: %w", err)
	}
	return s, nil
}

func (r *MongoCatalogRepo) ListSlots() ([]models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.slotColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *MongoCatalogRepo) SlotsByExpert(expertID primitive.ObjectID) ([]models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.slotColl.Find(ctx, bson.M{"expertId": expertID})
	if err != nil {
		return nil, fmt.Errorf("error fetching slots for expert %s: %w", expertID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *MongoCatalogRepo) SlotsByIDs(ids []primitive.ObjectID) ([]models.Slot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.slotColl.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error fetching slots by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *MongoCatalogRepo) UpdateSlot(id primitive.ObjectID, fields bson.M) (*models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Slot
	if err := r.slotColl.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating slot %s: %w", id.Hex(), err)
	}
	return &slot, nil
}

func (r *MongoCatalogRepo) DeleteSlot(id primitive.ObjectID) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.slotColl.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting slot %s: %w", id.Hex(), err)
	}
	return res.DeletedCount > 0, nil
}

// --- Dates ---

func (r *MongoCatalogRepo) CreateDate(d *models.DateEntry) (*models.DateEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := r.dateColl.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("error creating date entry: %w", err)
	}
	return d, nil
}

func (r *MongoCatalogRepo) ListDates() ([]models.DateEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.dateColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching date entries: %w", err)
	}
	defer cursor.Close(ctx)

	var dates []models.DateEntry
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, fmt.Errorf("error decoding date entries: %w", err)
	}
	return dates, nil
}

func (r *MongoCatalogRepo) DatesByExpert(expertID primitive.ObjectID) ([]models.DateEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.dateColl.Find(ctx, bson.M{"expertId": expertID})
	if err != nil {
		return nil, fmt.Errorf("error fetching date entries for expert %s: %w", expertID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var dates []models.DateEntry
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, fmt.Errorf("error decoding date entries: %w", err)
	}
	return dates, nil
}

func (r *MongoCatalogRepo) UpdateDate(id primitive.ObjectID, fields bson.M) (*models.DateEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var date models.DateEntry
	if err := r.dateColl.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&date); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating date entry %s: %w", id.Hex(), err)
	}
	return &date, nil
}

func (r *MongoCatalogRepo) DeleteDate(id primitive.ObjectID) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.dateColl.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting date entry %s: %w", id.Hex(), err)
	}
	return res.DeletedCount > 0, nil
}
