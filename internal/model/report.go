package model

import "time"

// Tool identity stamped into every report
const (
	ToolName    = "TruthScan"
	ToolVersion = "1.0.0"
)

// Report aggregates the four module results with the original claim.
// Field order fixes the JSON key order: claim, date range, then one key
// per module. A report is written once and never mutated after assembly.
type Report struct {
	Tool         string    `json:"tool"`
	Version      string    `json:"version"`
	Claim        string    `json:"claim"`
	DateRange    DateRange `json:"date_range"`
	AnalysisDate string    `json:"analysis_date"` // Process run time, "2006-01-02 15:04:05"

	Satellite *ModuleResult `json:"satellite_analysis"`
	Flight    *ModuleResult `json:"flight_data"`
	Military  *ModuleResult `json:"military_movements"`
	Social    *ModuleResult `json:"social_media"`

	Parsed     *Claim      `json:"parsed_claim,omitempty"`
	Assessment *Assessment `json:"assessment,omitempty"` // Optional LLM assessment, never affects module data
}

// NewReport creates an empty report stamped with the claim and run time
func NewReport(claim string, dateRange DateRange, now time.Time) *Report {
	return &Report{
		Tool:         ToolName,
		Version:      ToolVersion,
		Claim:        claim,
		DateRange:    dateRange,
		AnalysisDate: now.Format("2006-01-02 15:04:05"),
	}
}

// Result returns the result slot for the named module
func (r *Report) Result(name ModuleName) *ModuleResult {
	switch name {
	case ModuleSatellite:
		return r.Satellite
	case ModuleFlight:
		return r.Flight
	case ModuleMilitary:
		return r.Military
	case ModuleSocial:
		return r.Social
	}
	return nil
}

// SetResult stores a result into its module slot
func (r *Report) SetResult(res *ModuleResult) {
	if res == nil {
		return
	}
	switch res.Module {
	case ModuleSatellite:
		r.Satellite = res
	case ModuleFlight:
		r.Flight = res
	case ModuleMilitary:
		r.Military = res
	case ModuleSocial:
		r.Social = res
	}
}

// HasSynthetic reports whether any module emitted a synthetic record
func (r *Report) HasSynthetic() bool {
	for _, name := range ModuleNames() {
		if r.Result(name).HasSynthetic() {
			return true
		}
	}
	return false
}

// Assessment contains the optional LLM-generated assessment.
// It is clearly separated from module output and never alters it.
type Assessment struct {
	Enabled    bool     `json:"enabled"`
	Provider   string   `json:"provider,omitempty"` // openai, anthropic, ollama
	Model      string   `json:"model,omitempty"`
	StrictMode bool     `json:"strict_links"`         // Whether link allowlist enforcement was enabled
	SummaryMD  string   `json:"summary_md,omitempty"` // Markdown assessment text
	Warnings   []string `json:"warnings,omitempty"`   // e.g. stripped off-report citations
}
