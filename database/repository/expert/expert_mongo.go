package expertRepo

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

// MongoExpertRepo implements ExpertRepository using MongoDB.
type MongoExpertRepo struct {
	coll *mongo.Collection
}

// NewMongoExpertRepo creates an ExpertRepository backed by the given database.
func NewMongoExpertRepo(db *mongo.Database) ExpertRepository {
	repo := &MongoExpertRepo{coll: db.Collection("experts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create expert indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoExpertRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new expert document.
func (r *MongoExpertRepo) Create(e *models.Expert) (*models.Expert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return nil, fmt.Errorf("error creating expert: %w", err)
	}
	return e, nil
}

// List returns all experts.
func (r *MongoExpertRepo) List() ([]models.Expert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching experts: %w", err)
	}
	defer cursor.Close(ctx)

	var experts []models.Expert
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, fmt.Errorf("error decoding experts: %w", err)
	}
	return experts, nil
}

// GetByID retrieves an expert by ID. Returns (nil, nil) when absent.
func (r *MongoExpertRepo) GetByID(id primitive.ObjectID) (*models.Expert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var expert models.Expert
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&expert); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching expert %s: %w", id.Hex(), err)
	}
	return &expert, nil
}

// Update applies a partial update and returns the updated expert, or
// (nil, nil) when absent.
func (r *MongoExpertRepo) Update(id primitive.ObjectID, fields bson.M) (*models.Expert, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var expert models.Expert
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&expert); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating expert %s: %w", id.Hex(), err)
	}
	return &expert, nil
}

// DeleteByID removes an expert and reports whether a document was deleted.
func (r *MongoExpertRepo) DeleteByID(id primitive.ObjectID) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting expert %s: %w", id.Hex(), err)
	}
	return res.DeletedCount > 0, nil
}
