package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/mocks"
	"github.com/cafelagoa/stock-service/internal/service"
)

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectUserInfo bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				claims := &dto.Claims{
					UserID: primitive.NewObjectID(),
					Email:  "test@example.com",
					Name:   "Test User",
				}
				mockAuth.On("ValidateToken", mock.Anything, "valid-token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectUserInfo: true,
		},
		{
			name:           "missing authorization header",
			authHeader:     "",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid bearer prefix",
			authHeader:     "Token valid-token",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			setupMocks:     func(mockAuth *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(mockAuth *mocks.MockAuthService) {
				mockAuth.On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(mocks.MockAuthService)
			tt.setupMocks(mockAuth)

			router := gin.New()
			router.Use(JWTAuth(mockAuth))
			router.GET("/protected", func(c *gin.Context) {
				if tt.expectUserInfo {
					_, hasID := c.Get("user_id")
					assert.True(t, hasID)
					email, _ := c.Get("user_email")
					assert.Equal(t, "test@example.com", email)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockAuth.AssertExpectations(t)
		})
	}
}
