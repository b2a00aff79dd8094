package shared

// DomainError is the error type every layer below HTTP returns. The
// Code is a stable machine-readable identifier that the HTTP layer maps
// to a status; Message is safe to show to API clients.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinels for the outcomes repositories and services report most.
// Everything else is constructed in place with a specific code.
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrLimitExceeded   = NewDomainError("LIMIT_EXCEEDED", "Plan limit exceeded")
	ErrUpstreamStorage = NewDomainError("UPSTREAM_STORAGE", "Object storage operation failed")
)
