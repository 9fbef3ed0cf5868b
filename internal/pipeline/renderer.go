package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Banner printed at the top of the text summary
const Banner = `
████████╗██████╗ ██╗   ██╗████████╗██╗  ██╗███████╗ ██████╗ █████╗ ███╗   ██╗
╚══██╔══╝██╔══██╗██║   ██║╚══██╔══╝██║  ██║██╔════╝██╔════╝██╔══██╗████╗  ██║
   ██║   ██████╔╝██║   ██║   ██║   ███████║███████╗██║     ███████║██╔██╗ ██║
   ██║   ██╔══██╗██║   ██║   ██║   ██╔══██║╚════██║██║     ██╔══██║██║╚██╗██║
   ██║   ██║  ██║╚██████╔╝   ██║   ██║  ██║███████║╚██████╗██║  ██║██║ ╚████║
   ╚═╝   ╚═╝  ╚═╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

// Output file names inside the results directory
const (
	JSONFileName       = "truthscan_results.json"
	SummaryFileName    = "truthscan_summary.txt"
	AssessmentFileName = "truthscan_assessment.md"
)

// sectionTitles in fixed render order, matching the JSON key order
var sectionTitles = map[model.ModuleName]string{
	model.ModuleSatellite: "SATELLITE IMAGERY ANALYSIS",
	model.ModuleFlight:    "FLIGHT DATA ANALYSIS",
	model.ModuleMilitary:  "MILITARY MOVEMENTS",
	model.ModuleSocial:    "SOCIAL MEDIA ANALYSIS",
}

// Renderer writes the report outputs into the results directory
type Renderer struct {
	dir    string
	banner bool
}

// NewRenderer creates a renderer targeting dir
func NewRenderer(dir string, banner bool) *Renderer {
	return &Renderer{dir: dir, banner: banner}
}

// RenderJSON writes the structured report. Key order is stable: claim,
// date range, then one key per module (struct field order).
func (r *Renderer) RenderJSON(report *model.Report) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(r.dir, JSONFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// RenderText writes the human-readable summary. Section order matches
// the JSON; a missing module renders as an explicit "no data" section.
func (r *Renderer) RenderText(report *model.Report) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	var b strings.Builder
	if r.banner {
		b.WriteString(Banner)
		b.WriteString("\n")
	}

	b.WriteString("TRUTHSCAN ANALYSIS REPORT\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Claim: %s\n", report.Claim)
	fmt.Fprintf(&b, "Analysis date: %s\n", report.AnalysisDate)
	fmt.Fprintf(&b, "Date range analyzed: %s to %s\n\n", report.DateRange.Start, report.DateRange.End)

	b.WriteString("ANALYSIS SCOPE:\n")
	fmt.Fprintf(&b, "- Satellite imagery analysis of %d sites\n", report.Satellite.EntityCount())
	fmt.Fprintf(&b, "- Flight data analysis for %d geographic areas\n", report.Flight.EntityCount())
	fmt.Fprintf(&b, "- Military movement monitoring at %d installations\n", report.Military.EntityCount())
	fmt.Fprintf(&b, "- Social media analysis of %d search terms (%d posts)\n\n",
		report.Social.EntityCount(), report.Social.PostCount())

	for _, name := range model.ModuleNames() {
		renderSection(&b, name, report.Result(name))
	}

	b.WriteString("CONCLUSION:\n")
	b.WriteString("Based on available free data sources, there is no credible evidence supporting the claim.\n")
	b.WriteString("To perform more definitive analysis, consider:\n")
	b.WriteString("- Purchasing commercial satellite imagery\n")
	b.WriteString("- Using paid flight tracking services\n")
	b.WriteString("- Engaging professional military analysts\n")
	b.WriteString("- Accessing official social media APIs\n")

	if report.HasSynthetic() {
		b.WriteString("\nNOTE: Some synthetic data has been included for demonstration purposes,\n")
		b.WriteString("clearly marked as \"synthetic\" in the detailed results.\n")
	}

	path := filepath.Join(r.dir, SummaryFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

// renderSection writes one module's section. Counts here come from the
// same accessors the JSON serializes, keeping the two views consistent.
func renderSection(b *strings.Builder, name model.ModuleName, result *model.ModuleResult) {
	fmt.Fprintf(b, "%s:\n", sectionTitles[name])

	if result.EntityCount() == 0 {
		b.WriteString("  no data\n\n")
		return
	}

	for _, f := range result.Findings {
		if f.NoData {
			fmt.Fprintf(b, "  - %s: no data available\n", f.Entity)
			continue
		}

		fmt.Fprintf(b, "  - %s\n", f.Entity)
		for _, s := range f.Sources {
			fmt.Fprintf(b, "      %s: %s\n", s.Name, s.URL)
		}
		if n := len(f.Flights); n > 0 {
			fmt.Fprintf(b, "      %d flight records (synthetic sample)\n", n)
		}
		if n := len(f.Activities); n > 0 {
			fmt.Fprintf(b, "      %d activity records (synthetic sample)\n", n)
		}
		if n := len(f.Posts); n > 0 {
			fmt.Fprintf(b, "      %d posts\n", n)
		}
		if f.Image != "" {
			fmt.Fprintf(b, "      placeholder image: %s\n", f.Image)
		}
	}
	b.WriteString("\n")
}

// RenderAssessment writes the optional LLM assessment to its own file
func (r *Renderer) RenderAssessment(a *model.Assessment) (string, error) {
	var b strings.Builder
	b.WriteString("# TruthScan Assessment\n\n")
	fmt.Fprintf(&b, "Generated by %s/%s. This assessment is advisory and never alters module data.\n\n", a.Provider, a.Model)
	b.WriteString(a.SummaryMD)
	b.WriteString("\n")
	if len(a.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range a.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	path := filepath.Join(r.dir, AssessmentFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write assessment: %w", err)
	}
	return path, nil
}

// RenderSummary prints a short recap of the report
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "\nClaim: %s\n", report.Claim)
	fmt.Fprintf(w, "Window: %s to %s\n", report.DateRange.Start, report.DateRange.End)
	fmt.Fprintf(w, "Satellite sites: %d | Flight areas: %d | Installations: %d | Search terms: %d (%d posts)\n",
		report.Satellite.EntityCount(),
		report.Flight.EntityCount(),
		report.Military.EntityCount(),
		report.Social.EntityCount(),
		report.Social.PostCount())
	if report.HasSynthetic() {
		fmt.Fprintln(w, "Synthetic placeholder data included (marked in results).")
	}
}
