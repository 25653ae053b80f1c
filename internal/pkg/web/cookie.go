package web

import (
	"errors"
	"net/http"
	"slices"
)

// FindCookie returns the cookie with the given name from a parsed
// Set-Cookie list, or an error if it is not present.
func FindCookie(cookies []*http.Cookie, name string) (*http.Cookie, error) {
	index := slices.IndexFunc(cookies, func(c *http.Cookie) bool {
		return c.Name == name
	})
	if index < 0 {
		return nil, errors.New("cookie not set")
	}
	return cookies[index], nil
}
