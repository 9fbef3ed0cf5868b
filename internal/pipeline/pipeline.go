package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/truthscan/truthscan/internal/extract"
	"github.com/truthscan/truthscan/internal/imaging"
	"github.com/truthscan/truthscan/internal/llm"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/modules"
)

// Pipeline orchestrates the complete analysis: claim parsing, the four
// modules in fixed order, report assembly, and rendering
type Pipeline struct {
	parser   *extract.ClaimParser
	registry *modules.Registry
	renderer *Renderer
	assessor *llm.Assessor // Optional LLM assessor (nil if disabled)
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var fetcher modules.PageFetcher = NewFetcher(cfg)

	var images *imaging.Writer
	if cfg.Output.WriteImages {
		images = imaging.NewWriter(filepath.Join(cfg.Output.Dir, "satellite_images"))
	}

	var assessor *llm.Assessor
	if cfg.LLM.Provider != "" {
		a, err := llm.NewAssessor(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			assessor = a
		}
	}

	return &Pipeline{
		parser:   extract.NewClaimParser(),
		registry: modules.NewRegistry(cfg, fetcher, images),
		renderer: NewRenderer(cfg.Output.Dir, !cfg.Output.NoBanner),
		assessor: assessor,
		config:   cfg,
	}
}

// ScanClaim runs the four modules over the claim and assembles the
// report. Module failures degrade to explicit empty results; the scan
// itself never fails for lookup reasons.
func (p *Pipeline) ScanClaim(ctx context.Context, claimText string) (*model.Report, error) {
	now := time.Now()

	// 1. Parse claim (never fails: default fallback guarantees entities)
	claim := p.parser.Parse(claimText, p.config.Scan.Days, now)

	report := model.NewReport(claimText, claim.DateRange, now)
	report.Parsed = claim

	// 2. Run modules sequentially in fixed order
	for _, m := range p.registry.Modules() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := m.Produce(ctx, claim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s module: %v\n", m.Name(), err)
			if result == nil {
				result = &model.ModuleResult{Module: m.Name(), Findings: []model.Finding{}}
			}
			result.Partial = true
		}
		report.SetResult(result)

		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d entities\n", m.Name(), result.EntityCount())
		}
	}

	// 3. Optional LLM assessment, appended after assembly. It never
	// alters module data.
	if p.assessor != nil && p.assessor.IsEnabled() {
		assessment, err := p.assessor.Assess(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM assessment failed: %v\n", err)
		} else if assessment != nil {
			report.Assessment = assessment
		}
	}

	return report, nil
}

// RenderReport writes the JSON report, text summary, and optional
// assessment file, then prints a recap to stdout. Write failures are
// fatal.
func (p *Pipeline) RenderReport(report *model.Report) error {
	jsonPath, err := p.renderer.RenderJSON(report)
	if err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}

	textPath, err := p.renderer.RenderText(report)
	if err != nil {
		return fmt.Errorf("render text: %w", err)
	}

	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		fmt.Fprintf(os.Stderr, "✓ Wrote summary: %s\n", textPath)
	}

	if report.Assessment != nil && report.Assessment.Enabled {
		mdPath, err := p.renderer.RenderAssessment(report.Assessment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write assessment: %v\n", err)
		} else if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote assessment: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(os.Stdout, report)
	return nil
}
