package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Assessor wraps a provider and enforces the strict link allowlist.
// Citations outside the report's own links are stripped and surfaced as
// warnings rather than passed through.
type Assessor struct {
	provider Provider
	config   Config
}

// NewAssessor creates an assessor, or (nil, nil) when disabled
func NewAssessor(config Config) (*Assessor, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return &Assessor{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (a *Assessor) IsEnabled() bool {
	return a != nil && a.provider != nil
}

// Assess generates the report assessment. The result never feeds back
// into module data.
func (a *Assessor) Assess(ctx context.Context, report *model.Report) (*model.Assessment, error) {
	allowed := AllowedURLs(report)

	resp, err := a.provider.Assess(ctx, AssessRequest{
		Report:      report,
		AllowedURLs: allowed,
		Model:       a.config.Model,
		MaxTokens:   a.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.provider.Name(), err)
	}

	assessment := &model.Assessment{
		Enabled:    true,
		Provider:   a.provider.Name(),
		Model:      resp.Model,
		StrictMode: a.config.StrictLinks,
		SummaryMD:  resp.Assessment,
	}

	if a.config.StrictLinks {
		assessment.SummaryMD, assessment.Warnings = enforceAllowlist(resp.Assessment, resp.CitedURLs, allowed)
	}

	return assessment, nil
}

// enforceAllowlist strips cited URLs that are not in the allowlist and
// records one warning per leak
func enforceAllowlist(text string, cited, allowed []string) (string, []string) {
	var warnings []string
	for _, url := range cited {
		if !contains(allowed, url) {
			text = strings.ReplaceAll(text, url, "[link removed]")
			warnings = append(warnings, fmt.Sprintf("stripped off-report citation: %s", url))
		}
	}
	return text, warnings
}
