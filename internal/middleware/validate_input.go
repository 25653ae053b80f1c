package middleware

import (
	"errors"
	"net/http"

	"github.com/allandeluna/brainstash/internal/pkg/message"
	"github.com/allandeluna/brainstash/internal/pkg/web"
	"github.com/allandeluna/brainstash/internal/platform/validation"
)

// ValidateInput validates the decoded params of type T and fails with
// failStatus. The signup route answers 411 here while every other route
// answers 400, preserving the API's observed behavior.
func ValidateInput[T any](validator validation.Validator, failStatus int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.Fail(w, failStatus, errors.New("invalid input"), message.RequiredFields, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
