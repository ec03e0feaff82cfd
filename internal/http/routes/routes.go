// Package routes wires the demo endpoints onto a chi router.
package routes

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/benjamingraedig-oviva/cache-control-demo/internal/cachecontrol"
	appmw "github.com/benjamingraedig-oviva/cache-control-demo/internal/http/middleware"
	"github.com/benjamingraedig-oviva/cache-control-demo/internal/state"
)

type Server struct {
	Router     *chi.Mux
	State      *state.Store
	InstanceID string

	tmpl *template.Template
}

type ServerOptions struct {
	// State to serve. A fresh store is created if nil.
	State *state.Store
	// InstanceID identifies this process in the X-Instance-Id header.
	// Generated if empty.
	InstanceID string
}

func New(opts ServerOptions) *Server {
	st := opts.State
	if st == nil {
		st = state.New()
	}
	id := opts.InstanceID
	if id == "" {
		id = uuid.NewString()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmw.InstanceID(id))
	r.Use(appmw.RecovererJSON)

	s := &Server{
		Router:     r,
		State:      st,
		InstanceID: id,
		tmpl:       template.Must(template.New("index").Parse(indexTemplate)),
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("write health check response")
		}
	})

	r.Get("/", s.handleIndex)
	for _, strategy := range cachecontrol.Strategies {
		r.Get("/"+strategy.Name, s.handleStrategy(strategy))
	}
	r.Get("/update-data", s.handleUpdate)
	r.Get("/force-error", s.handleForceError)
	r.Get("/api/status", s.handleStatus)

	return s
}
