package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/benjamingraedig-oviva/cache-control-demo/internal/config"
	"github.com/benjamingraedig-oviva/cache-control-demo/internal/http/routes"
	"github.com/benjamingraedig-oviva/cache-control-demo/internal/state"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	s := routes.New(routes.ServerOptions{
		State: state.New(),
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: loggingHandler(logger, s.Router)}

	go func() {
		logger.Info().
			Int("port", cfg.Port).
			Str("instance", s.InstanceID).
			Msg("cache-control demo listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
}

// loggingHandler attaches the logger to each request's context and writes
// one access-log line per request. NewHandler must wrap AccessHandler,
// not the other way around: the access callback reads the logger from the
// request context, so the context has to carry it already.
func loggingHandler(logger zerolog.Logger, next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	})(next)
	return hlog.NewHandler(logger)(h)
}
