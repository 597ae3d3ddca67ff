package adminRepo

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

// AdminRepository defines persistence operations for back-office admins.
type AdminRepository interface {
	Create(a *models.Admin) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	GetByID(id primitive.ObjectID) (*models.Admin, error)
}

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates an AdminRepository backed by the given database.
func NewMongoAdminRepo(db *mongo.Database) AdminRepository {
	repo := &MongoAdminRepo{coll: db.Collection("admins")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create admin indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new admin document.
func (r *MongoAdminRepo) Create(a *models.Admin) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	return a, nil
}

// GetByEmail retrieves an admin by email. Returns (nil, nil) when absent.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching admin by email: %w", err)
	}
	return &admin, nil
}

// GetByID retrieves an admin by ID. Returns (nil, nil) when absent.
func (r *MongoAdminRepo) GetByID(id primitive.ObjectID) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching admin %s: %w", id.Hex(), err)
	}
	return &admin, nil
}
