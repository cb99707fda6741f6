// Copyright Niklas Bubeck, 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/nbubeck/scholar-page/internal/pubview"
	"github.com/nbubeck/scholar-page/pkg/types"
)

// viewFromRequest builds the publication view for a request: roster from the
// snapshot, then the query parameters dispatched as named actions. Page is
// applied last because the other setters reset it.
func (s *Server) viewFromRequest(r *http.Request, snap types.ProfileSnapshot) *pubview.View {
	v := pubview.NewView(snap.Publications, s.pageSize)

	q := r.URL.Query()
	for _, action := range []string{pubview.ActionFilter, pubview.ActionSort} {
		if arg := q.Get(action); arg != "" {
			pubview.Dispatch(v, action, arg)
		}
	}
	if query := q.Get("q"); query != "" {
		pubview.Dispatch(v, pubview.ActionSearch, query)
	}
	if page := q.Get("page"); page != "" {
		pubview.Dispatch(v, pubview.ActionPage, page)
	}

	return v
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.currentSnapshot(r.Context())
	view := s.viewFromRequest(r, snap)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, newPageData(snap, view)); err != nil {
		// Headers are gone by now; log and give up on this response.
		s.log.Error().Err(err).Msg("rendering page")
	}
}

// publicationsResponse is the JSON shape of the derived view.
type publicationsResponse struct {
	pubview.Derived
	Sort    string `json:"sort"`
	Display string `json:"display"`
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	snap := s.currentSnapshot(r.Context())
	view := s.viewFromRequest(r, snap)

	derived := view.Current()
	s.writeJSON(w, publicationsResponse{
		Derived: derived,
		Sort:    view.State().Sort,
		Display: derived.DisplayCount(),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.currentSnapshot(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}
