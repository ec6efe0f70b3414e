// Package i18n provides internationalization support for the stock service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyOverstock indicates a selection exceeding available stock.
	ErrKeyOverstock = "error.overstock"
	// ErrKeyUnknownPackagingSize indicates an unrecognized packaging size.
	ErrKeyUnknownPackagingSize = "error.unknown_packaging_size"
	// ErrKeyProductNotFound indicates an unknown product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyReservationFinal indicates a transition from a terminal reservation state.
	ErrKeyReservationFinal = "error.reservation_final"
	// ErrKeyPriceListNotFound indicates the client has no price list.
	ErrKeyPriceListNotFound = "error.price_list_not_found"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyReservationCreated indicates a successful reservation.
	SuccessKeyReservationCreated = "success.reservation_created"
	// SuccessKeyCalculationDone indicates a successful consumption calculation.
	SuccessKeyCalculationDone = "success.calculation_done"
)
