// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
)

// RecovererJSON converts a panicking handler into a 500 response with a
// JSON error body, so the error surface stays consistent with the rest of
// the API. The panic is logged with the request-scoped logger.
func RecovererJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				hlog.FromRequest(r).Error().Interface("panic", rec).Msg("handler panicked")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":     "Internal Server Error",
					"message":   "The server encountered an unexpected condition",
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// InstanceID stamps responses with the identity of this server process.
// Cache demos are easier to follow when it is visible whether a response
// came from the same origin instance or a restarted one. 304 responses
// are left alone: they carry cache and validator headers only.
func InstanceID(id string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(&instanceWriter{ResponseWriter: w, id: id}, r)
		})
	}
}

// instanceWriter defers the header decision to WriteHeader time, when the
// status code is known.
type instanceWriter struct {
	http.ResponseWriter
	id          string
	wroteHeader bool
}

func (w *instanceWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if status != http.StatusNotModified {
			w.Header().Set("X-Instance-Id", w.id)
		}
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *instanceWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
