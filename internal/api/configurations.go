package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nexlume/fibercat/internal/model"
)

type saveRequest struct {
	Name    string                   `json:"name"`
	Profile model.Profile            `json:"profile,omitempty"`
	Config  model.CableConfiguration `json:"config"`
}

type configurationsResponse struct {
	Configurations []model.SavedConfiguration `json:"configurations"`
	Count          int                        `json:"count"`
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "no store configured")
		return false
	}
	return true
}

func (s *Server) saveConfiguration(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req saveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Profile != "" {
		if _, ok := s.conf.Defaults(req.Profile); !ok {
			writeError(w, http.StatusBadRequest, "unknown profile "+string(req.Profile))
			return
		}
	}

	saved := &model.SavedConfiguration{Name: req.Name, Profile: req.Profile, Config: req.Config}
	if err := s.store.SaveConfiguration(r.Context(), saved); err != nil {
		writeStoreError(w, r, err, "configuration")
		return
	}
	w.Header().Set("Location", "/api/configurations/"+saved.ID)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) listConfigurations(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit, err := intParam(r.URL.Query(), "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := s.store.ListConfigurations(r.Context(), limit)
	if err != nil {
		writeStoreError(w, r, err, "configurations")
		return
	}
	writeJSON(w, http.StatusOK, configurationsResponse{Configurations: list, Count: len(list)})
}

func (s *Server) getConfiguration(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	cfg, err := s.store.GetConfiguration(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "configuration")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) deleteConfiguration(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.DeleteConfiguration(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "configuration")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
