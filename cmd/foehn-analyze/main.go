package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/akamensky/argparse"

	"github.com/madeira-wx/foehnwx/internal/diagram"
	"github.com/madeira-wx/foehnwx/internal/report"
	"github.com/madeira-wx/foehnwx/pkg/config"
	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// analysisDocument is the JSON output shape, matching the REST analyze
// payload minus the storage id.
type analysisDocument struct {
	Input   foehn.Input      `json:"input"`
	Profile *foehn.Profile   `json:"profile"`
	Metrics foehn.Metrics    `json:"metrics"`
	Risk    foehn.Risk       `json:"risk"`
	Diagram *diagram.Diagram `json:"diagram"`
}

func main() {
	parser := argparse.NewParser("foehn-analyze", "Computes a Föhn effect temperature profile across a mountain barrier")

	madeira := config.MadeiraPreset()

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Default: madeira.WindwardPressure,
		Help:    "Windward surface pressure in hPa"})

	temperature := parser.Float("t", "temperature", &argparse.Options{
		Default: madeira.WindwardTemperature,
		Help:    "Windward surface temperature in °C"})

	dewpoint := parser.Float("d", "dewpoint", &argparse.Options{
		Default: madeira.WindwardDewpoint,
		Help:    "Windward surface dewpoint in °C"})

	mixingRatio := parser.Float("m", "mixing-ratio", &argparse.Options{
		Default: madeira.WindwardMixingRatio,
		Help:    "Windward water vapor mixing ratio in g/kg"})

	summit := parser.Float("s", "summit", &argparse.Options{
		Default: madeira.SummitPressure,
		Help:    "Summit pressure in hPa"})

	leeward := parser.Float("l", "leeward", &argparse.Options{
		Default: madeira.LeewardPressure,
		Help:    "Leeward surface pressure in hPa"})

	loss := parser.Float("", "moisture-loss", &argparse.Options{
		Default: foehn.DefaultParams().MoistureLossFraction,
		Help:    "Fraction of windward moisture removed as precipitation (0..1)"})

	steps := parser.Int("", "steps", &argparse.Options{
		Default: foehn.DefaultParams().ProcessSteps,
		Help:    "Integration steps per adiabatic process"})

	format := parser.Selector("f", "format", []string{"report", "csv", "json"}, &argparse.Options{
		Default: "report",
		Help:    "Output format"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when omitted)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	input := foehn.Input{
		WindwardPressure:    *pressure,
		WindwardTemperature: *temperature,
		WindwardDewpoint:    *dewpoint,
		WindwardMixingRatio: *mixingRatio,
		SummitPressure:      *summit,
		LeewardPressure:     *leeward,
	}

	params := foehn.DefaultParams()
	params.MoistureLossFraction = *loss
	params.ProcessSteps = *steps

	profile, err := foehn.Compute(input, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	metrics, err := profile.Metrics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf := bytes.NewBuffer([]byte{})
	switch *format {
	case "report":
		err = report.WriteText(buf, profile, metrics, time.Now())
	case "csv":
		err = report.WriteCSV(buf, profile)
	case "json":
		doc := analysisDocument{
			Input:   input,
			Profile: profile,
			Metrics: metrics,
			Risk:    foehn.AssessRisk(metrics),
			Diagram: diagram.Build(profile),
		}
		var raw []byte
		raw, err = json.MarshalIndent(doc, "", "  ")
		buf.Write(raw)
		buf.WriteByte('\n')
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *filename == "" {
		fmt.Print(buf.String())
		return
	}
	if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
