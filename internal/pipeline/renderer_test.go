package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/truthscan/truthscan/internal/model"
)

func sampleReport() *model.Report {
	r := model.NewReport("test claim",
		model.DateRange{Start: "2026-08-24", End: "2026-08-31"},
		time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))

	r.SetResult(&model.ModuleResult{Module: model.ModuleSatellite, Findings: []model.Finding{
		{Entity: "Khushab Nuclear Complex", Sources: []model.SourceLink{
			{Name: "Sentinel Hub (free)", URL: "https://apps.sentinel-hub.com/eo-browser/"},
		}},
	}})
	r.SetResult(&model.ModuleResult{Module: model.ModuleFlight, Findings: []model.Finding{
		{Entity: "Kahuta Region", Flights: []model.FlightRecord{{Aircraft: "C-130", Synthetic: true}}},
	}})
	r.SetResult(&model.ModuleResult{Module: model.ModuleMilitary, Findings: []model.Finding{}})
	r.SetResult(&model.ModuleResult{Module: model.ModuleSocial, Findings: []model.Finding{
		{Entity: "some term", NoData: true},
	}, Partial: true})
	return r
}

func TestRenderText(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, true)

	path, err := r.RenderText(sampleReport())
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"TRUTHSCAN ANALYSIS REPORT",
		"Claim: test claim",
		"Date range analyzed: 2026-08-24 to 2026-08-31",
		"SATELLITE IMAGERY ANALYSIS",
		"Sentinel Hub (free): https://apps.sentinel-hub.com/eo-browser/",
		"FLIGHT DATA ANALYSIS",
		"1 flight records (synthetic sample)",
		"MILITARY MOVEMENTS",
		"no data",
		"SOCIAL MEDIA ANALYSIS",
		"- some term: no data available",
		"CONCLUSION:",
		"NOTE: Some synthetic data has been included",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if !strings.Contains(text, "██") {
		t.Error("banner missing")
	}
}

func TestRenderTextNoBanner(t *testing.T) {
	r := NewRenderer(t.TempDir(), false)

	path, err := r.RenderText(sampleReport())
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "██") {
		t.Error("banner rendered with banner disabled")
	}
}

func TestRenderTextNoSyntheticNote(t *testing.T) {
	report := sampleReport()
	report.Flight.Findings[0].Flights = nil // remove the only synthetic record

	r := NewRenderer(t.TempDir(), false)
	path, err := r.RenderText(report)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "synthetic data has been included") {
		t.Error("synthetic note rendered without synthetic records")
	}
}

func TestRenderJSON(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, false)

	path, err := r.RenderJSON(sampleReport())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if filepath.Base(path) != JSONFileName {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)

	// Module keys appear in fixed order
	order := []string{`"satellite_analysis"`, `"flight_data"`, `"military_movements"`, `"social_media"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx < 0 {
			t.Fatalf("JSON missing %s", key)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}
}

func TestRenderAssessment(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, false)

	path, err := r.RenderAssessment(&model.Assessment{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "Coverage looks complete.",
		Warnings:  []string{"stripped off-report citation: https://rogue.example"},
	})
	if err != nil {
		t.Fatalf("RenderAssessment: %v", err)
	}

	data, _ := os.ReadFile(path)
	text := string(data)
	if !strings.Contains(text, "Coverage looks complete.") {
		t.Error("assessment body missing")
	}
	if !strings.Contains(text, "## Warnings") || !strings.Contains(text, "rogue.example") {
		t.Error("warnings section missing")
	}
}

func TestRenderSummary(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(t.TempDir(), false)
	r.RenderSummary(&sb, sampleReport())

	out := sb.String()
	if !strings.Contains(out, "Claim: test claim") {
		t.Errorf("recap missing claim: %q", out)
	}
	if !strings.Contains(out, "Synthetic placeholder data included") {
		t.Error("recap missing synthetic note")
	}
}
