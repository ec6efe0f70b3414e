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

// PriceListsRepository provides MongoDB persistence for client price lists.
type PriceListsRepository struct {
	collection *mongo.Collection
}

// NewPriceListsRepository creates a new price lists repository.
func NewPriceListsRepository(db *MongoDB) *PriceListsRepository {
	return &PriceListsRepository{collection: db.PriceLists}
}

// FindByClient returns the client's price list, or nil if none exists.
func (r *PriceListsRepository) FindByClient(ctx context.Context, clientID string) (*model.PriceList, error) {
	var list model.PriceList
	err := r.collection.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&list)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Upsert replaces the client's price list, creating it if absent, and returns
// the stored document.
func (r *PriceListsRepository) Upsert(ctx context.Context, list *model.PriceList) (*model.PriceList, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"prices_250g":        list.Prices250g,
			"private_label_250g": list.PrivateLabel250g,
			"updated_at":         now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"client_id":  list.ClientID,
			"created_at": now,
		},
	}

	var stored model.PriceList
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"client_id": list.ClientID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
