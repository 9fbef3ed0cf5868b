package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Scanner runs a full analysis for one claim
type Scanner interface {
	ScanClaim(ctx context.Context, claim string) (*model.Report, error)
}

// ScanJob analyzes a single claim
type ScanJob struct {
	Claim   string
	Scanner Scanner
}

// Execute runs the scan
func (j *ScanJob) Execute(ctx context.Context) Result {
	report, err := j.Scanner.ScanClaim(ctx, j.Claim)
	return &ScanOutcome{
		Claim:  j.Claim,
		Report: report,
		Error:  err,
	}
}

// ScanOutcome is the result of one claim scan
type ScanOutcome struct {
	Claim  string
	Report *model.Report
	Error  error
}

// GetError returns the scan error, if any
func (r *ScanOutcome) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple claims concurrently
type BatchProcessor struct {
	scanner     Scanner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(scanner Scanner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		scanner:     scanner,
		concurrency: concurrency,
	}
}

// ProcessClaims analyzes the claims concurrently and returns one outcome
// per claim (order not guaranteed)
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []*ScanOutcome {
	if len(claims) == 0 {
		return []*ScanOutcome{}
	}

	pool := NewSizedPool(ctx, b.concurrency, len(claims))
	pool.Start()

	for _, claim := range claims {
		pool.Submit(&ScanJob{Claim: claim, Scanner: b.scanner})
	}

	results := pool.Wait()

	outcomes := make([]*ScanOutcome, 0, len(results))
	for _, r := range results {
		if outcome, ok := r.(*ScanOutcome); ok {
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes
}

// ReadClaimsFile reads claims from a file, one per line. Blank lines and
// lines starting with # are skipped.
func ReadClaimsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open claims file: %w", err)
	}
	defer f.Close()

	var claims []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		claims = append(claims, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read claims file: %w", err)
	}
	return claims, nil
}
