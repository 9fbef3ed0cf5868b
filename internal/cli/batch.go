package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/pipeline"
	"github.com/truthscan/truthscan/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	scanTimeout  time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple claims from a file in parallel",
	Long: `Batch processes multiple claims concurrently:
- Read claims from the input file (one per line, # for comments)
- Analyze claims in parallel with a configurable worker count
- Write each claim's reports into its own subdirectory

Example:
  truthscan batch claims.txt
  truthscan batch claims.txt --concurrency 8 --output-dir ./reports
  truthscan batch claims.txt --no-synthetic --days 14`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 2*time.Minute, "timeout for individual scans")

	batchCmd.Flags().IntVar(&days, "days", 7, "number of days to look back for data")
	batchCmd.Flags().BoolVar(&noSynthetic, "no-synthetic", false, "disable synthetic data generation (only real data)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./truthscan-results", "results directory")
	batchCmd.Flags().BoolVar(&noImages, "no-images", false, "skip placeholder image files")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fetch cache")
	batchCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	claims, err := worker.ReadClaimsFile(file)
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		return fmt.Errorf("no claims found in %s", file)
	}

	fmt.Fprintf(os.Stderr, "Claims:      %d\n", len(claims))
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n\n", outputDir)

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(&batchScanner{cfg: cfg}, concurrency)
	outcomes := processor.ProcessClaims(ctx, claims)

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Claim, outcome.Error)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s\n", outcome.Claim)
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d claims, %d failed\n", len(outcomes), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d claims failed", failed, len(outcomes))
	}
	return nil
}

// batchScanner runs a full scan-and-render per claim, each into its own
// subdirectory of the output dir
type batchScanner struct {
	cfg *model.Config
}

// ScanClaim implements worker.Scanner
func (s *batchScanner) ScanClaim(ctx context.Context, claim string) (*model.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	cfg := *s.cfg
	cfg.Output.Dir = filepath.Join(s.cfg.Output.Dir, slugify(claim))

	p := pipeline.NewPipeline(&cfg)

	report, err := p.ScanClaim(ctx, claim)
	if err != nil {
		return nil, err
	}
	if err := p.RenderReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

// slugify turns a claim into a filesystem-safe directory name. A hash
// of the full claim is appended so claims that slug identically (shared
// prefixes, non-ASCII text) still get distinct directories
func slugify(claim string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(claim) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	if slug == "" {
		slug = "claim"
	}

	sum := sha256.Sum256([]byte(claim))
	return slug + "-" + hex.EncodeToString(sum[:4])
}
