package driver

import (
	"encoding/json"
	"fmt"

	"place/internal/diag"
	"place/internal/observ"
	"place/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimings adds the timer report to bag as an OBS6001 info
// diagnostic whose note carries the JSON payload.
func AppendTimings(bag *diag.Bag, timer *observ.Timer, kind, path string) {
	if bag == nil || timer == nil {
		return
	}
	report := timer.Report()
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	if payload.Kind == "" {
		payload.Kind = "expand"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, payload.Path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{File: source.NoFile}, msg).WithNote(source.Span{File: source.NoFile}, string(data))
	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
