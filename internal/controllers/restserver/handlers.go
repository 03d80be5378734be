package restserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/madeira-wx/foehnwx/internal/constants"
	"github.com/madeira-wx/foehnwx/internal/database"
	"github.com/madeira-wx/foehnwx/internal/diagram"
	"github.com/madeira-wx/foehnwx/internal/log"
	"github.com/madeira-wx/foehnwx/internal/report"
	"github.com/madeira-wx/foehnwx/pkg/config"
	"github.com/madeira-wx/foehnwx/pkg/foehn"
	"github.com/madeira-wx/foehnwx/pkg/responseformat"
)

const defaultListLimit = 50

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// Analyze runs the engine for the posted input and returns the full
// profile, metrics and diagram payload. The run is persisted when a store
// is configured.
func (h *Handlers) Analyze(w http.ResponseWriter, req *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, fmt.Sprintf("malformed request body: %v", err))
		return
	}

	input, err := h.resolveInput(body)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	params := h.controller.Params
	if body.Params != nil {
		params = *body.Params
	}

	profile, err := foehn.Compute(input, params)
	if err != nil {
		h.writeEngineError(w, req, err)
		return
	}

	metrics, err := profile.Metrics()
	if err != nil {
		h.writeEngineError(w, req, err)
		return
	}
	risk := foehn.AssessRisk(metrics)

	resp := AnalyzeResponse{
		Input:   input,
		Profile: profile,
		Metrics: metrics,
		Risk:    risk,
		Diagram: diagram.Build(profile),
	}

	if h.controller.Store != nil {
		rec := database.NewRecord(input, profile, metrics, risk)
		if err := h.controller.Store.SaveAnalysis(req.Context(), rec); err != nil {
			// The analysis itself succeeded; log the storage failure
			// and return the result without an id.
			log.Errorf("failed to persist analysis: %v", err)
		} else {
			resp.ID = rec.ID
		}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, resp)
}

// resolveInput picks the input scalars from the request: a named preset or
// the inline values.
func (h *Handlers) resolveInput(body AnalyzeRequest) (foehn.Input, error) {
	if body.Preset == "" {
		if body.Input == nil {
			return foehn.Input{}, errors.New("either input or preset must be provided")
		}
		return *body.Input, nil
	}

	for _, p := range h.controller.Presets {
		if p.Name == body.Preset {
			return presetInput(p), nil
		}
	}
	return foehn.Input{}, fmt.Errorf("unknown preset %q", body.Preset)
}

func presetInput(p config.PresetData) foehn.Input {
	return foehn.Input{
		WindwardPressure:    p.WindwardPressure,
		WindwardTemperature: p.WindwardTemperature,
		WindwardDewpoint:    p.WindwardDewpoint,
		WindwardMixingRatio: p.WindwardMixingRatio,
		SummitPressure:      p.SummitPressure,
		LeewardPressure:     p.LeewardPressure,
	}
}

// writeEngineError maps the engine's typed errors onto HTTP statuses:
// invalid input to 400, non-convergence to 422.
func (h *Handlers) writeEngineError(w http.ResponseWriter, req *http.Request, err error) {
	var invalid *foehn.InvalidInputError
	if errors.As(err, &invalid) {
		h.formatter.WriteError(w, req, http.StatusBadRequest, invalid.Error())
		return
	}

	var conv *foehn.ConvergenceError
	if errors.As(err, &conv) {
		h.formatter.WriteError(w, req, http.StatusUnprocessableEntity, conv.Error())
		return
	}

	log.Errorf("analysis failed: %v", err)
	h.formatter.WriteError(w, req, http.StatusInternalServerError, "analysis failed")
}

// ListAnalyses returns the stored analyses, newest first.
func (h *Handlers) ListAnalyses(w http.ResponseWriter, req *http.Request) {
	if h.controller.Store == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "analysis storage is not configured")
		return
	}

	limit := defaultListLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	recs, err := h.controller.Store.ListAnalyses(req.Context(), limit)
	if err != nil {
		log.Errorf("failed to list analyses: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if recs == nil {
		recs = []database.AnalysisRecord{}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, AnalysisListResponse{Analyses: recs})
}

// GetAnalysis returns one stored analysis by id.
func (h *Handlers) GetAnalysis(w http.ResponseWriter, req *http.Request) {
	rec, ok := h.fetchRecord(w, req)
	if !ok {
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, rec)
}

// GetReport regenerates the profile for a stored analysis and streams the
// plain-text report.
func (h *Handlers) GetReport(w http.ResponseWriter, req *http.Request) {
	rec, ok := h.fetchRecord(w, req)
	if !ok {
		return
	}

	profile, metrics, ok := h.recompute(w, req, rec)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="foehn_report.txt"`)
	if err := report.WriteText(w, profile, metrics, rec.CreatedAt); err != nil {
		log.Errorf("failed to write report: %v", err)
	}
}

// GetCSV regenerates the profile for a stored analysis and streams the
// point table as CSV.
func (h *Handlers) GetCSV(w http.ResponseWriter, req *http.Request) {
	rec, ok := h.fetchRecord(w, req)
	if !ok {
		return
	}

	profile, _, ok := h.recompute(w, req, rec)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="foehn_data.csv"`)
	if err := report.WriteCSV(w, profile); err != nil {
		log.Errorf("failed to write CSV: %v", err)
	}
}

// GetPresets returns the configured scenario presets.
func (h *Handlers) GetPresets(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string][]config.PresetData{
		"presets": h.controller.Presets,
	})
}

// Health reports service liveness.
func (h *Handlers) Health(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, http.StatusOK, HealthResponse{
		Status:         "ok",
		Version:        constants.Version,
		StorageEnabled: h.controller.Store != nil,
	})
}

func (h *Handlers) fetchRecord(w http.ResponseWriter, req *http.Request) (*database.AnalysisRecord, bool) {
	if h.controller.Store == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "analysis storage is not configured")
		return nil, false
	}

	id := mux.Vars(req)["id"]
	rec, err := h.controller.Store.GetAnalysis(req.Context(), id)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, fmt.Sprintf("analysis %s not found", id))
		return nil, false
	}
	return rec, true
}

// recompute re-runs the engine from a stored record's inputs with the
// parameters the run was saved with, so regenerated downloads match the
// stored outputs even when the run used per-request overrides. Stored
// records came from successful runs, so failures here are server errors.
func (h *Handlers) recompute(w http.ResponseWriter, req *http.Request, rec *database.AnalysisRecord) (*foehn.Profile, foehn.Metrics, bool) {
	profile, err := foehn.Compute(rec.Input(), rec.Params())
	if err != nil {
		log.Errorf("failed to recompute analysis %s: %v", rec.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "failed to regenerate analysis")
		return nil, foehn.Metrics{}, false
	}

	metrics, err := profile.Metrics()
	if err != nil {
		log.Errorf("failed to recompute metrics for %s: %v", rec.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "failed to regenerate analysis")
		return nil, foehn.Metrics{}, false
	}
	return profile, metrics, true
}
