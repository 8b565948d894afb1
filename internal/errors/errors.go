package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAdminNotFound is returned when an admin is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrInvalidServiceType is returned when the service type is not one of the known categories.
	ErrInvalidServiceType = errors.New("invalid service type")
	// ErrMissingFields is returned when required contact fields are absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrFileRequired is returned when an order submission has no design file attached.
	ErrFileRequired = errors.New("design file is required")
	// ErrInvalidTransition is returned when a status change is not allowed by the lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidCredentials is returned for any failed login, regardless of which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token does not resolve to an active admin.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the admin's role does not meet the requirement.
	ErrForbidden = errors.New("access denied")
	// ErrAdminExists is returned when the username or email is already taken.
	ErrAdminExists = errors.New("admin with this username or email already exists")
	// ErrEmailTaken is returned when a customer update collides with another customer's email.
	ErrEmailTaken = errors.New("email already in use")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Persistence failures
// that match nothing here come back as an opaque 500; the detail is for
// the logs, not the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrCustomerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CUSTOMER_NOT_FOUND")
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ADMIN_NOT_FOUND")
	case errors.Is(err, ErrInvalidServiceType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SERVICE_TYPE")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrFileRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_REQUIRED")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrAdminExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "ADMIN_EXISTS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
