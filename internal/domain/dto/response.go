package dto

import (
	"net/http"
	"time"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeOverstock indicates a selection exceeding available stock.
	ErrCodeOverstock = "overstock"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"overstock"`
	Message string `json:"message,omitempty" example:"insufficient stock for product"`
	// Details contains additional error details (optional).
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails adds a details map to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeOverstock
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// SizeAvailability is the availability of one packaging size of a product.
type SizeAvailability struct {
	PackagingSize model.PackagingSize `json:"packaging_size" example:"250g"`
	// AvailablePackages is how many whole packages of this size can still be reserved.
	AvailablePackages int `json:"available_packages" example:"4"`
} // @name SizeAvailability

// CatalogEntry is a product with its derived availability, as served by the
// public catalog endpoint.
type CatalogEntry struct {
	Product model.Product `json:"product"`
	// AvailableKg is the unreserved stock weight.
	AvailableKg float64 `json:"available_kg" example:"1.0"`
	// Availability lists available packages per sale packaging size.
	Availability []SizeAvailability `json:"availability"`
} // @name CatalogEntry

// StockReportRow is one product's line in the stock report.
type StockReportRow struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	TotalKg     float64 `json:"total_kg"`
	ReservedKg  float64 `json:"reserved_kg"`
	AvailableKg float64 `json:"available_kg"`
	// ActiveReservations is the count of active reservations on the product.
	ActiveReservations int `json:"active_reservations"`
} // @name StockReportRow

// QuoteLine is one priced selection line.
type QuoteLine struct {
	ProductID     string              `json:"product_id"`
	PackagingSize model.PackagingSize `json:"packaging_size"`
	Quantity      int                 `json:"quantity"`
	EquivalentKg  float64             `json:"equivalent_kg"`
	PricePerKg    float64             `json:"price_per_kg" example:"132"`
	// Subtotal is rounded to 2 decimals.
	Subtotal float64 `json:"subtotal" example:"132"`
} // @name QuoteLine

// Quote is a priced selection.
type Quote struct {
	ClientID string      `json:"client_id"`
	Lines    []QuoteLine `json:"lines"`
	// TotalKg is the selection weight.
	TotalKg float64 `json:"total_kg"`
	// Total is the sum of full-precision subtotals, rounded once to 2 decimals.
	Total float64 `json:"total"`
} // @name Quote
