package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeOutOfStock         = "OUT_OF_STOCK"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeQuantityLimit      = "QUANTITY_LIMIT"
	ErrCodeRestaurantNotFound = "RESTAURANT_NOT_FOUND"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
	ErrCodeInvalidCatalog     = "INVALID_CATALOG"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError(ErrCodeNotFound, "Section or item not found")
	ErrOutOfStock         = NewDomainError(ErrCodeOutOfStock, "Item is out of stock")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrQuantityLimit      = NewDomainError(ErrCodeQuantityLimit, "Item quantity is at the configured maximum")
	ErrRestaurantNotFound = NewDomainError(ErrCodeRestaurantNotFound, "Restaurant not found")
	ErrSessionNotFound    = NewDomainError(ErrCodeSessionNotFound, "Session not found")
	ErrInvalidCatalog     = NewDomainError(ErrCodeInvalidCatalog, "Catalog definition is invalid")
)
