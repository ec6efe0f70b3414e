package service

import (
	"context"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// GenerateTokenPair exposes generateTokenPair to the external test package.
func (s *AuthServiceImpl) GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	return s.generateTokenPair(ctx, user)
}
