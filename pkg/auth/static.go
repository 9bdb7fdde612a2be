package auth

import "crypto/subtle"

// StaticVerifier accepts a single fixed shared secret.
// This is a placeholder scheme, not a credential system.
type StaticVerifier struct {
	token string
}

// NewStaticVerifier creates a verifier for the given shared token
func NewStaticVerifier(token string) *StaticVerifier {
	return &StaticVerifier{token: token}
}

// Verify compares the presented token against the shared secret
func (v *StaticVerifier) Verify(token string) (*Principal, error) {
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) != 1 {
		return nil, ErrInvalidToken
	}
	return &Principal{Subject: "shared-token", Role: "service"}, nil
}
