package dto

import "net/http"

// ErrorCodeHTTPStatus maps domain and service error codes to HTTP status
// codes. Codes not listed here fall back to 500.
var ErrorCodeHTTPStatus = map[string]int{
	// Input errors -> 400 Bad Request
	"INVALID_INPUT":          http.StatusBadRequest,
	"VALIDATION_ERROR":       http.StatusBadRequest,
	"BAD_REQUEST":            http.StatusBadRequest,
	"INVALID_JSON":           http.StatusBadRequest,
	"INVALID_PLAN":           http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_PASSWORD":       http.StatusBadRequest,
	"INVALID_COMPANY_NAME":   http.StatusBadRequest,
	"INVALID_POSITION":       http.StatusBadRequest,
	"INVALID_TIMEZONE":       http.StatusBadRequest,
	"INVALID_CAPTURE_TIME":   http.StatusBadRequest,
	"INVALID_SIZE":           http.StatusBadRequest,
	"INVALID_USER":           http.StatusBadRequest,
	"INVALID_URL":            http.StatusBadRequest,
	"INVALID_STORAGE_KEY":    http.StatusBadRequest,
	"INVALID_PLAN_CODE":      http.StatusBadRequest,
	"INVALID_PLAN_NAME":      http.StatusBadRequest,
	"INVALID_PLAN_PRICE":     http.StatusBadRequest,
	"INVALID_PLAN_LIMIT":     http.StatusBadRequest,
	"INVALID_PLAN_RETENTION": http.StatusBadRequest,

	// Auth errors -> 401 Unauthorized
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Access errors -> 403 Forbidden
	"FORBIDDEN":           http.StatusForbidden,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"USER_DEACTIVATED":    http.StatusForbidden,
	"COMPANY_SUSPENDED":   http.StatusForbidden,

	// Resource errors
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"EMAIL_EXISTS":         http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"LIMIT_EXCEEDED":      http.StatusUnprocessableEntity,
	"SAME_PLAN":           http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":      http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":    http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED": http.StatusUnprocessableEntity,
	"ALREADY_SUSPENDED":   http.StatusUnprocessableEntity,
	"NOT_LOCKED":          http.StatusUnprocessableEntity,

	// Rate limiting -> 429 Too Many Requests
	"RATE_LIMITED": http.StatusTooManyRequests,

	// Upstream errors
	"UPSTREAM_STORAGE": http.StatusBadGateway,

	"INTERNAL_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
