package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/truthscan/truthscan/internal/model"
)

// mockScanner returns an empty report for every claim, failing ones it
// was told to fail
type mockScanner struct {
	scans   atomic.Int32
	failFor string
}

func (s *mockScanner) ScanClaim(ctx context.Context, claim string) (*model.Report, error) {
	s.scans.Add(1)
	if claim == s.failFor {
		return nil, errors.New("scan failed")
	}
	return model.NewReport(claim, model.DateRange{}, time.Now()), nil
}

func TestBatchProcessor(t *testing.T) {
	scanner := &mockScanner{}
	bp := NewBatchProcessor(scanner, 2)

	claims := []string{
		"India strikes Pakistan nuclear sites",
		"explosion reported near Khushab",
		"border skirmish rumors",
	}
	outcomes := bp.ProcessClaims(context.Background(), claims)

	if len(outcomes) != len(claims) {
		t.Fatalf("expected %d outcomes, got %d", len(claims), len(outcomes))
	}
	if scanner.scans.Load() != int32(len(claims)) {
		t.Errorf("expected %d scans, got %d", len(claims), scanner.scans.Load())
	}

	seen := make(map[string]bool)
	for _, o := range outcomes {
		if o.Error != nil {
			t.Errorf("claim %q: %v", o.Claim, o.Error)
		}
		if o.Report == nil {
			t.Errorf("claim %q: nil report", o.Claim)
		}
		seen[o.Claim] = true
	}
	for _, c := range claims {
		if !seen[c] {
			t.Errorf("claim %q has no outcome", c)
		}
	}
}

func TestBatchProcessorPartialFailure(t *testing.T) {
	scanner := &mockScanner{failFor: "bad claim"}
	bp := NewBatchProcessor(scanner, 2)

	outcomes := bp.ProcessClaims(context.Background(), []string{"good claim", "bad claim"})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	var failed int
	for _, o := range outcomes {
		if o.GetError() != nil {
			failed++
			if o.Claim != "bad claim" {
				t.Errorf("wrong claim failed: %q", o.Claim)
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
}

func TestBatchProcessorEmpty(t *testing.T) {
	bp := NewBatchProcessor(&mockScanner{}, 2)
	outcomes := bp.ProcessClaims(context.Background(), nil)
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(outcomes))
	}
}

func TestBatchProcessorLargeBatch(t *testing.T) {
	scanner := &mockScanner{}
	bp := NewBatchProcessor(scanner, 2)

	claims := make([]string, 50)
	for i := range claims {
		claims[i] = "claim"
	}
	outcomes := bp.ProcessClaims(context.Background(), claims)
	if len(outcomes) != 50 {
		t.Errorf("expected 50 outcomes, got %d", len(outcomes))
	}
}

// blockingScanner holds every scan until its context is cancelled
type blockingScanner struct{}

func (s *blockingScanner) ScanClaim(ctx context.Context, claim string) (*model.Report, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestBatchProcessorCancelledContext(t *testing.T) {
	bp := NewBatchProcessor(&blockingScanner{}, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	claims := make([]string, 8)
	for i := range claims {
		claims[i] = "claim"
	}

	done := make(chan []*ScanOutcome, 1)
	go func() {
		done <- bp.ProcessClaims(ctx, claims)
	}()

	select {
	case outcomes := <-done:
		for _, o := range outcomes {
			if o.Error == nil {
				t.Errorf("claim %q finished despite cancellation", o.Claim)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not stop after context cancellation")
	}
}

func TestReadClaimsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	content := `# watchlist
India strikes Pakistan nuclear sites

explosion reported near Khushab
  # indented comment is still a comment
border skirmish rumors
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	claims, err := ReadClaimsFile(path)
	if err != nil {
		t.Fatalf("ReadClaimsFile: %v", err)
	}
	want := []string{
		"India strikes Pakistan nuclear sites",
		"explosion reported near Khushab",
		"border skirmish rumors",
	}
	if len(claims) != len(want) {
		t.Fatalf("expected %d claims, got %d: %v", len(want), len(claims), claims)
	}
	for i := range want {
		if claims[i] != want[i] {
			t.Errorf("claim %d = %q, want %q", i, claims[i], want[i])
		}
	}
}

func TestReadClaimsFileMissing(t *testing.T) {
	if _, err := ReadClaimsFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
