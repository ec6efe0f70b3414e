package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// ReservationsRepository provides MongoDB persistence for reservations.
type ReservationsRepository struct {
	collection *mongo.Collection
}

// NewReservationsRepository creates a new reservations repository.
func NewReservationsRepository(db *MongoDB) *ReservationsRepository {
	return &ReservationsRepository{collection: db.Reservations}
}

// Create inserts the given reservations in one batch and returns them with
// their assigned IDs.
func (r *ReservationsRepository) Create(ctx context.Context, reservations []model.Reservation) ([]model.Reservation, error) {
	if len(reservations) == 0 {
		return nil, nil
	}

	now := time.Now()
	docs := make([]interface{}, len(reservations))
	for i := range reservations {
		if reservations[i].ID.IsZero() {
			reservations[i].ID = primitive.NewObjectID()
		}
		if reservations[i].Status == "" {
			reservations[i].Status = model.ReservationActive
		}
		reservations[i].CreatedAt = now
		reservations[i].UpdatedAt = now
		docs[i] = reservations[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return reservations, nil
}

// List returns reservations, newest first, optionally filtered by status.
func (r *ReservationsRepository) List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var reservations []model.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListActiveByProducts returns the active reservations of the given products.
func (r *ReservationsRepository) ListActiveByProducts(ctx context.Context, productIDs []primitive.ObjectID) ([]model.Reservation, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"product_id": bson.M{"$in": productIDs},
		"status":     model.ReservationActive,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var reservations []model.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListActive returns every active reservation.
func (r *ReservationsRepository) ListActive(ctx context.Context) ([]model.Reservation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": model.ReservationActive})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var reservations []model.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindByID returns the reservation with the given ID, or nil if not found.
func (r *ReservationsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Reservation, error) {
	var reservation model.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus transitions a reservation and returns the updated document.
// Returns nil if the reservation does not exist.
func (r *ReservationsRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	var reservation model.Reservation
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reservation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}
