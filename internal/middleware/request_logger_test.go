//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/mocks"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   string
	}{
		{name: "2xx returns info", statusCode: 200, expected: "info"},
		{name: "3xx returns info", statusCode: 301, expected: "info"},
		{name: "4xx returns warn", statusCode: 400, expected: "warn"},
		{name: "404 returns warn", statusCode: 404, expected: "warn"},
		{name: "5xx returns error", statusCode: 500, expected: "error"},
		{name: "503 returns error", statusCode: 503, expected: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("enqueues entry with request details", func(t *testing.T) {
		mockLogging := new(mocks.MockLoggingService)
		mockLogging.On("Enqueue", mock.MatchedBy(func(entry *model.LogEntry) bool {
			return entry.Method == http.MethodGet &&
				entry.Path == "/catalog" &&
				entry.StatusCode == http.StatusOK &&
				entry.Level == "info"
		})).Once()

		router := gin.New()
		router.Use(RequestID(), RequestLogger(mockLogging))
		router.GET("/catalog", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockLogging.AssertExpectations(t)
	})

	t.Run("captures user email from context", func(t *testing.T) {
		mockLogging := new(mocks.MockLoggingService)
		mockLogging.On("Enqueue", mock.MatchedBy(func(entry *model.LogEntry) bool {
			return entry.UserEmail == "ops@example.com"
		})).Once()

		router := gin.New()
		router.Use(RequestID(), RequestLogger(mockLogging))
		router.GET("/report", func(c *gin.Context) {
			c.Set("user_email", "ops@example.com")
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/report", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		mockLogging.AssertExpectations(t)
	})

	t.Run("nil logging service does not panic", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), RequestLogger(nil))
		router.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
