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

// ProductsRepository provides MongoDB persistence for the coffee catalog.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{collection: db.Products}
}

// List returns all products, optionally only active ones, sorted by name.
func (r *ProductsRepository) List(ctx context.Context, activeOnly bool) ([]model.Product, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns the product with the given ID, or nil if not found.
func (r *ProductsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product.
func (r *ProductsRepository) Create(ctx context.Context, product *model.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// Update replaces a product's mutable fields.
func (r *ProductsRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":                    product.Name,
		"producer":                product.Producer,
		"process":                 product.Process,
		"tasting_notes":           product.TastingNotes,
		"total_packages_in_stock": product.TotalPackagesInStock,
		"available_sizes":         product.AvailableSizes,
		"active":                  product.Active,
		"updated_at":              product.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetStock sets a product's stock count in 250g base packages and returns the
// updated document.
func (r *ProductsRepository) SetStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error) {
	update := bson.M{"$set": bson.M{
		"total_packages_in_stock": totalPackages,
		"updated_at":              time.Now(),
	}}

	var product model.Product
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
