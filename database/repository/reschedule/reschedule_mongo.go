package rescheduleRepo

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

// MongoRescheduleRepo implements RescheduleRepository using MongoDB.
type MongoRescheduleRepo struct {
	requestColl *mongo.Collection
	optionsColl *mongo.Collection
}

// NewMongoRescheduleRepo creates a RescheduleRepository backed by the given
// database.
func NewMongoRescheduleRepo(db *mongo.Database) RescheduleRepository {
	repo := &MongoRescheduleRepo{
		requestColl: db.Collection("reschedulingrequests"),
		optionsColl: db.Collection("reschedulingoptions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reschedule indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes backs the at-most-one-pending-request-per-triple invariant
// with a unique compound index, and keeps booking-scoped lookups cheap.
func (r *MongoRescheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	requestIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "currentBookingId", Value: 1},
				{Key: "requestedDateId", Value: 1},
				{Key: "requestedSlotId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.requestColl.Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("failed to create request indexes: %w", err)
	}

	optionsIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "currentBookingId", Value: 1}}},
	}
	if _, err := r.optionsColl.Indexes().CreateMany(ctx, optionsIndexes); err != nil {
		return fmt.Errorf("failed to create options indexes: %w", err)
	}
	return nil
}

// CreateRequest inserts a new rescheduling request.
func (r *MongoRescheduleRepo) CreateRequest(req *models.ReschedulingRequest) (*models.ReschedulingRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	if _, err := r.requestColl.InsertOne(ctx, req); err != nil {
		return nil, fmt.Errorf("error creating rescheduling request: %w", err)
	}
	return req, nil
}

// FindDuplicateRequest looks up an existing request with the same booking,
// date and slot references. Returns (nil, nil) when none exists.
func (r *MongoRescheduleRepo) FindDuplicateRequest(bookingID, dateID, slotID primitive.ObjectID) (*models.ReschedulingRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"currentBookingId": bookingID}
	if dateID.IsZero() {
		filter["requestedDateId"] = bson.M{"$exists": false}
	} else {
		filter["requestedDateId"] = dateID
	}
	if slotID.IsZero() {
		filter["requestedSlotId"] = bson.M{"$exists": false}
	} else {
		filter["requestedSlotId"] = slotID
	}

	var req models.ReschedulingRequest
	if err := r.requestColl.FindOne(ctx, filter).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking duplicate rescheduling request: %w", err)
	}
	return &req, nil
}

// ListRequests returns all pending rescheduling requests.
func (r *MongoRescheduleRepo) ListRequests() ([]models.ReschedulingRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.requestColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching rescheduling requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ReschedulingRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding rescheduling requests: %w", err)
	}
	return requests, nil
}

// ListRequestsForBookings returns pending requests referencing any of the
// given booking IDs.
func (r *MongoRescheduleRepo) ListRequestsForBookings(bookingIDs []primitive.ObjectID) ([]models.ReschedulingRequest, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.requestColl.Find(ctx, bson.M{"currentBookingId": bson.M{"$in": bookingIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching rescheduling requests for bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ReschedulingRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding rescheduling requests: %w", err)
	}
	return requests, nil
}

// DeleteRequestsByBooking removes every request referencing the booking and
// reports how many were deleted.
func (r *MongoRescheduleRepo) DeleteRequestsByBooking(bookingID primitive.ObjectID) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.requestColl.DeleteMany(ctx, bson.M{"currentBookingId": bookingID})
	if err != nil {
		return 0, fmt.Errorf("error deleting rescheduling requests for booking %s: %w", bookingID.Hex(), err)
	}
	return res.DeletedCount, nil
}

// CreateOptions inserts a new rescheduling options set.
func (r *MongoRescheduleRepo) CreateOptions(opts *models.ReschedulingOptions) (*models.ReschedulingOptions, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if opts.ID.IsZero() {
		opts.ID = primitive.NewObjectID()
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = time.Now()
	}

	if _, err := r.optionsColl.InsertOne(ctx, opts); err != nil {
		return nil, fmt.Errorf("error creating rescheduling options: %w", err)
	}
	return opts, nil
}

// OptionsByBooking returns the most recent options set for the booking, or
// (nil, nil) when none exists. Expiry is the caller's concern.
func (r *MongoRescheduleRepo) OptionsByBooking(bookingID primitive.ObjectID) (*models.ReschedulingOptions, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	findOpts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var opts models.ReschedulingOptions
	if err := r.optionsColl.FindOne(ctx, bson.M{"currentBookingId": bookingID}, findOpts).Decode(&opts); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching rescheduling options for booking %s: %w", bookingID.Hex(), err)
	}
	return &opts, nil
}

// DeleteOptionsByBooking removes every options set referencing the booking.
func (r *MongoRescheduleRepo) DeleteOptionsByBooking(bookingID primitive.ObjectID) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.optionsColl.DeleteMany(ctx, bson.M{"currentBookingId": bookingID})
	if err != nil {
		return 0, fmt.Errorf("error deleting rescheduling options for booking %s: %w", bookingID.Hex(), err)
	}
	return res.DeletedCount, nil
}
