package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// TokensRepository implements TokensRepositoryInterface using MongoDB.
// Expired documents are removed by the collection's TTL index.
type TokensRepository struct {
	collection *mongo.Collection
}

// NewTokensRepository creates a new tokens repository.
func NewTokensRepository(db *MongoDB) *TokensRepository {
	return &TokensRepository{collection: db.Tokens}
}

// Create inserts a new token.
func (r *TokensRepository) Create(ctx context.Context, token *model.Token) error {
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}
	token.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// FindByToken finds a token by its string value, or nil if not found.
func (r *TokensRepository) FindByToken(ctx context.Context, tokenString string) (*model.Token, error) {
	var token model.Token
	err := r.collection.FindOne(ctx, bson.M{"token": tokenString}).Decode(&token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByToken removes a token by its string value.
func (r *TokensRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"token": tokenString})
	return err
}

// DeleteByUser removes all of a user's tokens of the given type.
func (r *TokensRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID, tokenType string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "type": tokenType})
	return err
}
