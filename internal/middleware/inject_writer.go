package middleware

import "net/http"

// InjectWriter wraps the response writer so downstream middleware can
// observe the status code and bytes written.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(w), r)
	})
}
