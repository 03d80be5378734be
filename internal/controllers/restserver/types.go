package restserver

import (
	"github.com/madeira-wx/foehnwx/internal/database"
	"github.com/madeira-wx/foehnwx/internal/diagram"
	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// AnalyzeRequest is the POST /api/analyze body: the six input scalars plus
// optional engine parameter overrides. A preset name may be given instead
// of the scalars.
type AnalyzeRequest struct {
	Preset string        `json:"preset,omitempty"`
	Input  *foehn.Input  `json:"input,omitempty"`
	Params *foehn.Params `json:"params,omitempty"`
}

// AnalyzeResponse is the full analysis payload: profile, metrics, risk
// assessment and the renderer-facing diagram series.
type AnalyzeResponse struct {
	ID      string           `json:"id,omitempty"`
	Input   foehn.Input      `json:"input"`
	Profile *foehn.Profile   `json:"profile"`
	Metrics foehn.Metrics    `json:"metrics"`
	Risk    foehn.Risk       `json:"risk"`
	Diagram *diagram.Diagram `json:"diagram"`
}

// AnalysisListResponse wraps the stored analyses listing.
type AnalysisListResponse struct {
	Analyses []database.AnalysisRecord `json:"analyses"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	StorageEnabled bool   `json:"storage_enabled"`
}
