// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// ProductsRepositoryInterface defines product catalog persistence operations.
type ProductsRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]model.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	SetStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error)
}

// ReservationsRepositoryInterface defines reservation persistence operations.
type ReservationsRepositoryInterface interface {
	Create(ctx context.Context, reservations []model.Reservation) ([]model.Reservation, error)
	List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error)
	ListActiveByProducts(ctx context.Context, productIDs []primitive.ObjectID) ([]model.Reservation, error)
	ListActive(ctx context.Context) ([]model.Reservation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Reservation, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error)
}

// PriceListsRepositoryInterface defines client price list persistence operations.
type PriceListsRepositoryInterface interface {
	FindByClient(ctx context.Context, clientID string) (*model.PriceList, error)
	Upsert(ctx context.Context, list *model.PriceList) (*model.PriceList, error)
}

// EventRequestsRepositoryInterface defines calculator submission persistence operations.
type EventRequestsRepositoryInterface interface {
	Create(ctx context.Context, req *model.EventRequest) error
	List(ctx context.Context, limit int) ([]model.EventRequest, error)
}

// UsersRepositoryInterface defines user persistence operations.
type UsersRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// TokensRepositoryInterface defines token persistence operations.
type TokensRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID, tokenType string) error
}

// LogsRepositoryInterface defines request log persistence operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
}
