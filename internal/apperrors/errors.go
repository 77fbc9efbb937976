package apperrors

import "errors"

// Domain error taxonomy. Handlers map these to HTTP status codes,
// everything below the transport layer returns them as plain errors.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrUnresolvedTenant   = errors.New("tenant could not be resolved")
	ErrIntegrityViolation = errors.New("integrity violation")
)

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
