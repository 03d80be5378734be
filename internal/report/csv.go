package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// conditions describes each level in the point table, matching the
// reference dashboard's "Conditions" column.
var conditions = map[string]string{
	foehn.LabelWindward:   "Initial",
	foehn.LabelAscentLCL:  "Cloud base",
	foehn.LabelSummit:     "Precipitation",
	foehn.LabelDescentLCL: "Cloud base",
	foehn.LabelLeeward:    "Föhn (Hot & Dry)",
}

// WriteCSV writes the profile's point table as CSV.
func WriteCSV(w io.Writer, profile *foehn.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"location", "pressure_hpa", "temperature_c", "dewpoint_c", "mixing_ratio_gkg", "conditions",
	}); err != nil {
		return err
	}

	for _, pt := range profile.Points() {
		dewpoint := ""
		if !math.IsNaN(pt.Dewpoint) {
			dewpoint = strconv.FormatFloat(pt.Dewpoint, 'f', 1, 64)
		}

		if err := cw.Write([]string{
			pt.Label,
			strconv.FormatFloat(pt.Pressure, 'f', 1, 64),
			strconv.FormatFloat(pt.Temperature, 'f', 1, 64),
			dewpoint,
			strconv.FormatFloat(pt.MixingRatio, 'f', 1, 64),
			conditions[pt.Label],
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
