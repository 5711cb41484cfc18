package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gomonte/adapters/scenario"
	"gomonte/domain/core"
	"gomonte/domain/run"
	"gomonte/internal/analysis"
	"gomonte/internal/errors"
)

type scenarioResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Target      float64 `json:"target"`
}

func (a *App) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := scenario.All()
	out := make([]scenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, scenarioResponse{
			Name:        s.Name(),
			Description: s.Description(),
			Target:      s.Target(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createRunRequest struct {
	Scenario string `json:"scenario"`
	Seed     *int64 `json:"seed,omitempty"`
	Samples  int    `json:"samples,omitempty"`
}

type runResponse struct {
	*run.Run
	ConfidenceLow  *float64 `json:"confidence_low,omitempty"`
	ConfidenceHigh *float64 `json:"confidence_high,omitempty"`
}

func (a *App) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.InvalidArgument("invalid request body"))
		return
	}

	sc, err := scenario.Lookup(req.Scenario)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	seed := a.sim.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	samples := req.Samples
	if samples == 0 {
		samples = a.sim.DefaultSamples
	}
	if samples < 1 || samples > a.sim.MaxSamples {
		writeError(w, http.StatusBadRequest, errors.InvalidArgument("samples out of range"))
		return
	}

	rec, _, err := a.runs.Execute(r.Context(), sc, seed, samples, 0)
	if err != nil {
		a.logger.Error("run failed: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, withInterval(rec))
}

func (a *App) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := a.runs.List(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (a *App) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseRunID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.InvalidArgument("invalid run ID"))
		return
	}

	rec, err := a.runs.Get(r.Context(), id)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, withInterval(rec))
}

// withInterval attaches the Wilson 95% interval for the success ratio of a
// completed run.
func withInterval(rec *run.Run) runResponse {
	resp := runResponse{Run: rec}
	if rec.Status == run.StatusComplete && rec.Samples > 0 {
		low, high, err := analysis.WilsonInterval(rec.Successes, rec.Samples, 0.95)
		if err == nil {
			resp.ConfidenceLow = &low
			resp.ConfidenceHigh = &high
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: errors.GetCode(err)})
}
