package middleware

import "net/http"

const defaultStatus = http.StatusOK

// SafeResponseWriter records the status code and body size for the
// request logger and swallows duplicate WriteHeader calls.
type SafeResponseWriter struct {
	http.ResponseWriter

	status        int
	headerWritten bool
	bytesSent     int64
}

func NewSafeResponseWriter(w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{ResponseWriter: w, status: defaultStatus}
}

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(defaultStatus)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesSent += int64(n)
	return n, err
}

func (w *SafeResponseWriter) Status() int {
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	return int(w.bytesSent)
}
