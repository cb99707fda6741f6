// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package server renders the portfolio page and its JSON API. The page is
// server-rendered: the publication controls are plain links and forms whose
// query parameters drive the view engine, so every request derives its view
// from the roster and the parameters alone.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nbubeck/scholar-page/internal/scholar"
	"github.com/nbubeck/scholar-page/pkg/types"
)

// ProfileSource supplies profile snapshots. *profile.Provider implements it.
type ProfileSource interface {
	Profile(ctx context.Context) (types.ProfileSnapshot, error)
	Stale() (types.ProfileSnapshot, bool)
}

// Server serves the portfolio page, its JSON API, and a liveness endpoint.
type Server struct {
	source   ProfileSource
	seed     []types.PublicationRecord
	pageSize int
	log      zerolog.Logger
	router   chi.Router
}

// New creates a Server. seedRecords may be nil; they back the page only when
// no snapshot has ever been fetched.
func New(source ProfileSource, seedRecords []types.PublicationRecord, cfg types.ServerConfig, log zerolog.Logger) *Server {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	s := &Server{
		source:   source,
		seed:     seedRecords,
		pageSize: pageSize,
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)
		r.Get("/publications", s.handlePublications)
	})
	s.router = r

	return s
}

// Handler returns the HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving on addr until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Msg("serving portfolio page")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// currentSnapshot resolves the snapshot for a request under the fail-silent,
// stay-stale policy: fresh or cached profile first, then any stale snapshot,
// then a seed-backed placeholder. Errors stop at the log sink.
func (s *Server) currentSnapshot(ctx context.Context) types.ProfileSnapshot {
	snap, err := s.source.Profile(ctx)
	if err == nil {
		return snap
	}

	var apiErr *scholar.APIError
	switch {
	case errors.As(err, &apiErr):
		s.log.Warn().Err(apiErr).Msg("profile fetch failed")
	default:
		s.log.Warn().Err(err).Msg("profile fetch failed")
	}

	if stale, ok := s.source.Stale(); ok {
		return stale
	}
	return s.placeholderSnapshot()
}

// placeholderSnapshot backs the page before the first successful fetch. Its
// publication list comes from the seed roster when one is configured.
func (s *Server) placeholderSnapshot() types.ProfileSnapshot {
	i10 := 0
	for _, rec := range s.seed {
		if rec.CitedBy >= 10 {
			i10++
		}
	}
	return types.ProfileSnapshot{
		Name:        scholar.FallbackName,
		Affiliation: scholar.FallbackAffiliation,
		CitationStats: types.CitationStats{
			I10Index:   i10,
			PaperCount: len(s.seed),
		},
		Publications: s.seed,
	}
}
