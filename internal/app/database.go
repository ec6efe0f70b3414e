// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/repository"
)

// DatabaseComponents holds the MongoDB connection and its repositories.
type DatabaseComponents struct {
	DB            *repository.MongoDB
	Products      repository.ProductsRepositoryInterface
	Reservations  repository.ReservationsRepositoryInterface
	PriceLists    repository.PriceListsRepositoryInterface
	EventRequests repository.EventRequestsRepositoryInterface
	Users         repository.UsersRepositoryInterface
	Tokens        repository.TokensRepositoryInterface
	Logs          repository.LogsRepositoryInterface
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Stock and reservations live in the database; the service cannot run
// without it.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	return &DatabaseComponents{
		DB:            db,
		Products:      repository.NewProductsRepository(db),
		Reservations:  repository.NewReservationsRepository(db),
		PriceLists:    repository.NewPriceListsRepository(db),
		EventRequests: repository.NewEventRequestsRepository(db),
		Users:         repository.NewUsersRepository(db),
		Tokens:        repository.NewTokensRepository(db),
		Logs:          repository.NewLogsRepository(db),
	}, nil
}
