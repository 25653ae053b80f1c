package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/allandeluna/brainstash/internal/pkg/message"
	"github.com/allandeluna/brainstash/internal/pkg/web"
)

// CheckContentType rejects body-carrying requests that are not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if !strings.HasPrefix(contentType, web.MimeJSON) {
				web.RespondNotAcceptable(w, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
