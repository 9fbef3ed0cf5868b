package llm

import (
	"context"
	"fmt"
	"regexp"

	"github.com/truthscan/truthscan/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Assess generates an assessment of the report with strict link mode
	Assess(ctx context.Context, req AssessRequest) (*AssessResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AssessRequest contains the input for LLM assessment
type AssessRequest struct {
	// Report is the scan report to assess
	Report *model.Report

	// AllowedURLs is the STRICT allowlist of URLs the LLM can cite.
	// The model cannot reference any URL not in this list.
	AllowedURLs []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AssessResponse contains the LLM's assessment output
type AssessResponse struct {
	// Assessment is the generated text
	Assessment string

	// CitedURLs are the URLs the LLM actually cited (for verification)
	CitedURLs []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider    string // "openai", "anthropic", "ollama", "" (disabled)
	Model       string
	APIKey      string
	BaseURL     string // For custom endpoints (e.g. Ollama)
	Timeout     int    // Seconds
	MaxTokens   int
	StrictLinks bool // Enforce the URL allowlist
}

// DefaultConfig returns sensible defaults with the provider disabled
func DefaultConfig() Config {
	return Config{
		Timeout:     30,
		MaxTokens:   1000,
		StrictLinks: true,
	}
}

// BuildPrompt constructs the default assessment prompt with strict link mode
func BuildPrompt(report *model.Report, allowedURLs []string) string {
	prompt := fmt.Sprintf(`You are assessing a TruthScan report. TruthScan aggregates open-source intelligence pointers for a claim - it NEVER determines whether the claim is true.

CRITICAL RULES:
1. You MUST ONLY cite URLs from this allowed list:
%s

2. DO NOT infer, speculate, or cite external sources beyond this list.
3. Synthetic records are fabricated placeholders; treat them as demonstration data only.
4. Focus on what an analyst should check next, not on truth. Use phrases like:
   - "The satellite links cover X sites..."
   - "No live social media data was available for..."
5. Never say "this claim is true" or "this claim is false".

Report Summary:
- Claim: %s
- Window: %s to %s
- Satellite sites: %d
- Flight areas: %d
- Military installations: %d
- Social search terms: %d (%d posts)
- Synthetic data present: %v

Provide a 3-4 sentence assessment of coverage and the most useful next verification steps.`,
		joinURLs(allowedURLs),
		report.Claim,
		report.DateRange.Start, report.DateRange.End,
		report.Satellite.EntityCount(),
		report.Flight.EntityCount(),
		report.Military.EntityCount(),
		report.Social.EntityCount(), report.Social.PostCount(),
		report.HasSynthetic())

	return prompt
}

// AllowedURLs collects every link in the report, the citation allowlist
func AllowedURLs(report *model.Report) []string {
	var urls []string
	for _, name := range model.ModuleNames() {
		urls = append(urls, report.Result(name).Links()...)
	}
	return urls
}

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return "(No URLs available)"
	}
	result := ""
	for i, url := range urls {
		if i >= 20 { // Limit to first 20 to avoid token bloat
			result += fmt.Sprintf("\n... and %d more URLs", len(urls)-20)
			break
		}
		result += fmt.Sprintf("\n- %s", url)
	}
	return result
}

var urlPattern = regexp.MustCompile(`https?://[^\s\)]+`)

// extractURLs extracts all URLs from text
func extractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
