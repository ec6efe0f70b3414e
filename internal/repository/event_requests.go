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

// EventRequestsRepository provides MongoDB persistence for calculator submissions.
type EventRequestsRepository struct {
	collection *mongo.Collection
}

// NewEventRequestsRepository creates a new event requests repository.
func NewEventRequestsRepository(db *MongoDB) *EventRequestsRepository {
	return &EventRequestsRepository{collection: db.EventRequests}
}

// Create inserts a new event request.
func (r *EventRequestsRepository) Create(ctx context.Context, req *model.EventRequest) error {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	req.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, req)
	return err
}

// List returns event requests, newest first.
func (r *EventRequestsRepository) List(ctx context.Context, limit int) ([]model.EventRequest, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var requests []model.EventRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
