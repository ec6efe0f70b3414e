package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when trying to register an existing user.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenBlacklisted is returned when a token has been invalidated.
	ErrTokenBlacklisted = errors.New("token is blacklisted")
)

// tokenClaims extends dto.Claims with JWT RegisteredClaims for signing.
type tokenClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication for back-office endpoints.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, email, password, name string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// AuthServiceImpl implements AuthService with HMAC-signed JWTs. Refresh
// tokens are persisted; invalidated access tokens are blacklisted until
// their natural expiry, after which the TTL index removes them.
type AuthServiceImpl struct {
	users            repository.UsersRepositoryInterface
	tokens           repository.TokensRepositoryInterface
	secretKey        []byte
	refreshSecretKey []byte
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UsersRepositoryInterface,
	tokens repository.TokensRepositoryInterface,
	authConfig config.AuthConfig,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:            users,
		tokens:           tokens,
		secretKey:        []byte(authConfig.JWTSecretKey),
		refreshSecretKey: []byte(authConfig.JWTRefreshSecret),
		accessTokenTTL:   authConfig.AccessTokenTTL,
		refreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// Login authenticates a user and returns a fresh token pair.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Drop existing refresh tokens before issuing new ones.
	if err := s.tokens.DeleteByUser(ctx, user.ID, "refresh"); err != nil {
		return nil, nil, fmt.Errorf("failed to invalidate existing tokens: %w", err)
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Register creates a user and returns an initial token pair.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name string) (*dto.TokenPair, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		Active:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken rotates a refresh token into a new pair.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.parseToken(refreshToken, s.refreshSecretKey)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Type != "refresh" || time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	// Single-use rotation: the old token is gone before the new one exists.
	if err := s.tokens.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to delete old refresh token: %w", err)
	}

	return s.generateTokenPair(ctx, user)
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	stored, err := s.tokens.FindByToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if stored != nil && stored.Type == "blacklist" {
		return nil, ErrTokenBlacklisted
	}

	return s.parseToken(tokenString, s.secretKey)
}

// Logout blacklists the access token and deletes the refresh token.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.blacklistAccessToken(ctx, accessToken); err != nil {
			log.Warn().Err(err).Msg("failed to blacklist access token during logout")
			errs = append(errs, fmt.Errorf("blacklist access token: %w", err))
		}
	}

	if refreshToken != "" {
		if err := s.tokens.DeleteByToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Msg("failed to delete refresh token during logout")
			errs = append(errs, fmt.Errorf("delete refresh token: %w", err))
		}
	}

	return errors.Join(errs...)
}

// generateTokenPair signs an access and a refresh token and stores the latter.
func (s *AuthServiceImpl) generateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("user ID is zero, cannot create token")
	}

	accessToken, _, err := s.signToken(user, s.secretKey, s.accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.signToken(user, s.refreshSecretKey, s.refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Create(ctx, &model.Token{
		UserID:    user.ID,
		Token:     refreshToken,
		Type:      "refresh",
		ExpiresAt: refreshExpiresAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// signToken signs an HS256 JWT for the user with the given key and TTL.
func (s *AuthServiceImpl) signToken(user *model.User, key []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &tokenClaims{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// parseToken parses and verifies a token with the given key.
func (s *AuthServiceImpl) parseToken(tokenString string, key []byte) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*tokenClaims); ok && token.Valid {
		return &claims.Claims, nil
	}
	return nil, ErrInvalidToken
}

// blacklistAccessToken stores the access token until its natural expiry.
func (s *AuthServiceImpl) blacklistAccessToken(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return ErrInvalidToken
	}

	expiresAt := time.Now().Add(s.accessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.tokens.Create(ctx, &model.Token{
		UserID:    claims.UserID,
		Token:     tokenString,
		Type:      "blacklist",
		ExpiresAt: expiresAt,
	})
}
