package jwt

import "time"

// Claims is the decoded content of a verified session token.
type Claims struct {
	UserID string
}

// Signer issues and verifies signed session tokens.
type Signer interface {
	Sign(subject string, ttl time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
