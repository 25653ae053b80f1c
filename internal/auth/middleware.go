package auth

import (
	"net/http"

	"github.com/allandeluna/brainstash/internal/pkg/message"
	"github.com/allandeluna/brainstash/internal/pkg/web"
	"github.com/allandeluna/brainstash/internal/platform/jwt"
)

// RequireSession gates a route on a valid session cookie. Any failure
// (no cookie, bad signature, expired token) yields the same 401 so the
// response reveals nothing about why.
func RequireSession(signer jwt.Signer, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			claims, err := signer.Verify(cookie.Value)
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
