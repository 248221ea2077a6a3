package api

import (
	"net/http"
	"net/url"

	"github.com/nexlume/fibercat/internal/configurator"
	"github.com/nexlume/fibercat/internal/model"
)

type profilesResponse struct {
	Names    []model.Profile                         `json:"names"`
	Profiles map[model.Profile]configurator.Defaults `json:"profiles"`
}

type applyRequest struct {
	Config      *model.CableConfiguration `json:"config"`
	Profile     model.Profile             `json:"profile,omitempty"`
	Application model.Application         `json:"application,omitempty"`
}

type applyResponse struct {
	Config  model.CableConfiguration `json:"config"`
	Profile model.Profile            `json:"profile,omitempty"`
}

type validateRequest struct {
	Config model.CableConfiguration `json:"config"`
}

type validateResponse struct {
	Valid    bool                      `json:"valid"`
	Problems []string                  `json:"problems"`
	Summary  []configurator.SummaryRow `json:"summary"`
}

func (s *Server) configuratorOptions(w http.ResponseWriter, r *http.Request) {
	cfg, err := configFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.conf.Options(cfg))
}

func (s *Server) configuratorProfiles(w http.ResponseWriter, _ *http.Request) {
	names, profiles := s.conf.Profiles()
	writeJSON(w, http.StatusOK, profilesResponse{Names: names, Profiles: profiles})
}

// configuratorApply merges profile defaults into a configuration. An
// application takes precedence over an explicit profile.
func (s *Server) configuratorApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	cfg := configurator.DefaultConfiguration()
	if req.Config != nil {
		cfg = *req.Config
	}

	var err error
	profile := req.Profile
	switch {
	case req.Application != "":
		cfg, profile, err = s.conf.SelectApplication(cfg, req.Application)
	case req.Profile != "":
		cfg, err = s.conf.ApplyProfile(cfg, req.Profile)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, applyResponse{Config: cfg, Profile: profile})
}

func (s *Server) configuratorValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	problems := configurator.Problems(req.Config)
	if problems == nil {
		problems = []string{}
	}
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:    len(problems) == 0,
		Problems: problems,
		Summary:  configurator.Summary(req.Config),
	})
}

// configFromQuery builds the partial configuration used to narrow options.
func configFromQuery(q url.Values) (model.CableConfiguration, error) {
	cfg := model.CableConfiguration{
		Application:  model.Application(q.Get("application")),
		FiberType:    q.Get("fiber_type"),
		Construction: q.Get("construction"),
		ConnectorA:   q.Get("connector_a"),
		ConnectorB:   q.Get("connector_b"),
		JacketType:   q.Get("jacket_type"),
	}
	n, err := intParam(q, "fiber_count")
	if err != nil {
		return cfg, err
	}
	cfg.FiberCount = n
	return cfg, nil
}
