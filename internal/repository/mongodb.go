// Package repository provides the data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client        *mongo.Client
	Database      *mongo.Database
	Products      *mongo.Collection
	Reservations  *mongo.Collection
	PriceLists    *mongo.Collection
	EventRequests *mongo.Collection
	Users         *mongo.Collection
	Tokens        *mongo.Collection
	Logs          *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:        client,
		Database:      db,
		Products:      db.Collection("products"),
		Reservations:  db.Collection("reservations"),
		PriceLists:    db.Collection("price_lists"),
		EventRequests: db.Collection("event_requests"),
		Users:         db.Collection("users"),
		Tokens:        db.Collection("tokens"),
		Logs:          db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes each collection depends on. Errors from
// indexes that already exist are ignored.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	productNameIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Products.Indexes().CreateOne(ctx, productNameIndex); err != nil {
		return err
	}

	// Reservations are always queried per product and status.
	reservationIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"product_id": 1, "status": 1},
	}
	_, _ = m.Reservations.Indexes().CreateOne(ctx, reservationIndex)

	priceListIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"client_id": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.PriceLists.Indexes().CreateOne(ctx, priceListIndex)

	emailIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Users.Indexes().CreateOne(ctx, emailIndex)

	tokenIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"token": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenIndex)

	// Expired tokens are removed by MongoDB; 0 means use the expires_at field.
	tokenTTLIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenTTLIndex)

	requestIDIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"request_id": 1},
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetLogsTTL updates the TTL index on the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
