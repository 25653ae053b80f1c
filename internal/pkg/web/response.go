package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// Envelope is the base shape of every JSON response. Success payloads
// embed it and add their own fields next to it.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the shape of a JSON error response. Errors carries
// field-level validation messages and is omitted when empty.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func NewEnvelope(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// Respond writes payload as JSON with the given status code. The payload
// is expected to embed Envelope.
func Respond(w http.ResponseWriter, status int, payload any) {
	response.JSON(w, status, payload)
}

// RespondMessage writes a bare success envelope with no extra payload.
func RespondMessage(w http.ResponseWriter, status int, msg string) {
	response.JSON(w, status, &Envelope{Success: true, Message: msg})
}

// Fail writes a JSON error response. The reason is logged, never sent to
// the client; the client only sees msg and the optional field errors.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "reason", reason)
	response.JSON(w, status, &ErrorResponse{Message: msg, Errors: errs})
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, reason, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnauthorized, reason, msg, errs)
}

func RespondForbidden(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusForbidden, reason, msg, errs)
}

func RespondLengthRequired(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusLengthRequired, reason, msg, errs)
}

func RespondNotAcceptable(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotAcceptable, reason, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg, errs)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, "Something went wrong.", nil)
}
