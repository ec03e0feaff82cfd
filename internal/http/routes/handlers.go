package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/benjamingraedig-oviva/cache-control-demo/internal/cachecontrol"
)

// Body shapes. Field names are part of the demo's public surface and are
// fixed; clients and the navigation page read them by name.

type strategyBody struct {
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
	Counter       int    `json:"counter"`
	CacheStrategy string `json:"cacheStrategy"`
}

type validatedBody struct {
	Message       string `json:"message"`
	Counter       int    `json:"counter"`
	Version       int    `json:"version"`
	CacheStrategy string `json:"cacheStrategy"`
	ETag          string `json:"etag,omitempty"`
	LastModified  string `json:"lastModified,omitempty"`
}

type updateBody struct {
	Message    string `json:"message"`
	NewCounter int    `json:"newCounter"`
	NewVersion int    `json:"newVersion"`
	UpdatedAt  string `json:"updatedAt"`
}

type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type statusBody struct {
	ServerTime string        `json:"serverTime"`
	Uptime     string        `json:"uptime"`
	DataStore  dataStoreBody `json:"dataStore"`
}

type dataStoreBody struct {
	Counter      int    `json:"counter"`
	Version      int    `json:"version"`
	LastModified string `json:"lastModified"`
}

// handleStrategy serves one entry of the strategy catalog. Strategies
// without validators always answer 200; the others consult the
// conditional validator first and may short-circuit with a 304.
func (s *Server) handleStrategy(strategy cachecontrol.Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.State.Snapshot()

		if !strategy.UsesValidators() {
			w.Header().Set("Cache-Control", strategy.CacheControl)
			s.writeJSON(w, r, http.StatusOK, strategyBody{
				Message:       strategy.Message,
				Timestamp:     time.Now().UTC().Format(time.RFC3339),
				Counter:       snap.Counter,
				CacheStrategy: strategy.Name,
			})
			return
		}

		// Build the logical content first, then derive the validators
		// from it. The fingerprint never covers itself or the request
		// time, otherwise no two responses could ever match.
		content := cachecontrol.Content{
			Message:  strategy.Message,
			Counter:  snap.Counter,
			Version:  snap.Version,
			Strategy: strategy.Name,
		}

		var etag, lastModified string
		if strategy.Policy.ETag {
			etag = cachecontrol.Fingerprint(content)
		}
		if strategy.Policy.LastModified {
			lastModified = cachecontrol.FormatValidatorTime(snap.LastUpdated)
		}

		w.Header().Set("Cache-Control", strategy.CacheControl)
		if etag != "" {
			w.Header().Set("ETag", etag)
		}
		if lastModified != "" {
			w.Header().Set("Last-Modified", lastModified)
		}

		rv := cachecontrol.RequestValidators{
			IfNoneMatch:     r.Header.Get("If-None-Match"),
			IfModifiedSince: r.Header.Get("If-Modified-Since"),
		}
		if cachecontrol.Evaluate(rv, etag, lastModified, strategy.Policy) == cachecontrol.NotModified {
			// 304: no body, no Content-Type, validator headers only
			w.WriteHeader(http.StatusNotModified)
			return
		}

		s.writeJSON(w, r, http.StatusOK, validatedBody{
			Message:       content.Message,
			Counter:       content.Counter,
			Version:       content.Version,
			CacheStrategy: content.Strategy,
			ETag:          etag,
			LastModified:  lastModified,
		})
	}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	snap := s.State.Update()
	s.writeJSON(w, r, http.StatusOK, updateBody{
		Message:    "Server data updated",
		NewCounter: snap.Counter,
		NewVersion: snap.Version,
		UpdatedAt:  snap.LastUpdated.UTC().Format(time.RFC3339),
	})
}

// handleForceError simulates an origin failure so stale-if-error caching
// can be observed. Server state is untouched.
func (s *Server) handleForceError(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusInternalServerError, errorBody{
		Error:     "Internal Server Error",
		Message:   "Simulated server error for testing stale-if-error behavior",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.State.Snapshot()
	s.writeJSON(w, r, http.StatusOK, statusBody{
		ServerTime: time.Now().UTC().Format(time.RFC3339),
		Uptime:     s.State.Uptime().Round(time.Second).String(),
		DataStore: dataStoreBody{
			Counter:      snap.Counter,
			Version:      snap.Version,
			LastModified: snap.LastUpdated.UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encode response body")
	}
}
