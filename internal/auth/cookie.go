package auth

import (
	"net/http"
	"time"
)

// NewSessionCookie returns the hardened cookie carrying the session
// token. Secure is off only during local development.
func NewSessionCookie(name, token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// NewExpiredSessionCookie returns a cookie that instructs the browser to
// drop the session.
func NewExpiredSessionCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
