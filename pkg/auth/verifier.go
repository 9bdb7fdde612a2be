package auth

import "errors"

// ErrInvalidToken is returned when a token cannot be verified
var ErrInvalidToken = errors.New("invalid token")

// Principal identifies the caller a verified token represents
type Principal struct {
	Subject string
	Role    string
}

// Verifier validates a bearer token and resolves the principal behind it.
// Implementations can be swapped without touching route wiring or services.
type Verifier interface {
	Verify(token string) (*Principal, error)
}
