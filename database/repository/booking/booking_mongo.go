package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the given database.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document and returns it with its assigned ID.
func (r *MongoBookingRepo) Create(b *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return b, nil
}

// GetByID retrieves a booking by ID. Returns (nil, nil) when no booking exists.
func (r *MongoBookingRepo) GetByID(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

// UpdateGuest modifies the guest contact fields of a booking and returns the
// updated document. Returns (nil, nil) when no booking exists.
func (r *MongoBookingRepo) UpdateGuest(id primitive.ObjectID, name, email, phone string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"guestName":  name,
		"guestEmail": email,
		"guestPhone": phone,
		"updatedAt":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

// DeleteByID removes a booking document.
func (r *MongoBookingRepo) DeleteByID(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting booking %s: %w", id.Hex(), err)
	}
	return nil
}

// IDsByExpert returns the IDs of all bookings belonging to the given expert.
func (r *MongoBookingRepo) IDsByExpert(expertID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"expertId": expertID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for expert %s: %w", expertID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding booking id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ids, nil
}

// guestSearchFields are the fields the admin listing searches across.
var guestSearchFields = []string{
	"guestName", "guestOccupation", "guestCity", "guestEmail",
	"guestPhone", "guestWhatsapp", "guestProblem",
}

// Search returns a page of bookings matching the search term along with the
// total match count.
func (r *MongoBookingRepo) Search(params SearchParams) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		clauses := make([]bson.M, 0, len(guestSearchFields))
		for _, field := range guestSearchFields {
			clauses = append(clauses, bson.M{field: bson.M{"$regex": params.Search, "$options": "i"}})
		}
		filter["$or"] = clauses
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "guestName"
	}
	order := 1
	if !params.Asc {
		order = -1
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 5
	}
	page := params.Page
	if page < 0 {
		page = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64(page * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return bookings, total, nil
}
