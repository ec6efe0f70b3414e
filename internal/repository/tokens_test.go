//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

func TestTokensRepository_CreateAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTokensRepository(setupTestDB(t))

	token := &model.Token{
		UserID:    primitive.NewObjectID(),
		Token:     "refresh-token-value",
		Type:      "refresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, token))

	found, err := repo.FindByToken(ctx, "refresh-token-value")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, token.UserID, found.UserID)
	assert.Equal(t, "refresh", found.Type)

	missing, err := repo.FindByToken(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTokensRepository_DeleteByToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTokensRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.Token{
		UserID:    primitive.NewObjectID(),
		Token:     "to-delete",
		Type:      "refresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.DeleteByToken(ctx, "to-delete"))

	found, err := repo.FindByToken(ctx, "to-delete")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTokensRepository_DeleteByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTokensRepository(setupTestDB(t))

	userID := primitive.NewObjectID()
	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &model.Token{UserID: userID, Token: "refresh-1", Type: "refresh", ExpiresAt: expires}))
	require.NoError(t, repo.Create(ctx, &model.Token{UserID: userID, Token: "refresh-2", Type: "refresh", ExpiresAt: expires}))
	require.NoError(t, repo.Create(ctx, &model.Token{UserID: userID, Token: "blacklisted", Type: "blacklist", ExpiresAt: expires}))

	require.NoError(t, repo.DeleteByUser(ctx, userID, "refresh"))

	// Only refresh tokens were removed.
	gone, err := repo.FindByToken(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.FindByToken(ctx, "blacklisted")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
