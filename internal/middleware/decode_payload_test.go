package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/allandeluna/brainstash/internal/middleware"
	"github.com/allandeluna/brainstash/internal/pkg/web"
)

type testPayload struct {
	Email string `json:"email"`
}

const testBodySize int64 = 1 << 20

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"valid json", `{"email":"jane@example.com"}`, http.StatusOK},
		{"malformed json", `{"email":`, http.StatusBadRequest},
		{"unknown field", `{"email":"a@b.co","extra":1}`, http.StatusUnprocessableEntity},
		{"trailing garbage", `{"email":"a@b.co"}{"more":true}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotParams *testPayload
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[testPayload](r.Context())
				if err != nil {
					t.Errorf("ParamsFromContext() returned error: %v", err)
				}
				gotParams = &params
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.DecodePayload[testPayload](testBodySize)(next)
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d", rec.Code, tt.wantCode)
			}

			if tt.wantCode == http.StatusOK && gotParams.Email != "jane@example.com" {
				t.Errorf("decoded email = %q, want %q", gotParams.Email, "jane@example.com")
			}
		})
	}
}

func TestDecodePayload_TooLarge(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.DecodePayload[testPayload](8)(next)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"jane@example.com"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status code = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}
