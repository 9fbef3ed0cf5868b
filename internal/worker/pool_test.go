package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

type mockJob struct {
	executed *atomic.Int32
	err      error
}

func (j *mockJob) Execute(ctx context.Context) Result {
	j.executed.Add(1)
	return &mockResult{err: j.err}
}

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var executed atomic.Int32
	const jobs = 10
	for i := 0; i < jobs; i++ {
		pool.Submit(&mockJob{executed: &executed})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
	if executed.Load() != jobs {
		t.Errorf("expected %d executions, got %d", jobs, executed.Load())
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed atomic.Int32
	pool.Submit(&mockJob{executed: &executed})
	pool.Submit(&mockJob{executed: &executed, err: errors.New("boom")})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failed int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed result, got %d", failed)
	}
}

func TestPoolZeroWorkers(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var executed atomic.Int32
	pool.Submit(&mockJob{executed: &executed})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestSizedPoolLargeBatch(t *testing.T) {
	const jobs = 100
	pool := NewSizedPool(context.Background(), 2, jobs)
	pool.Start()

	var executed atomic.Int32
	for i := 0; i < jobs; i++ {
		pool.Submit(&mockJob{executed: &executed})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
}

func TestPoolShutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submits after shutdown are dropped
	var executed atomic.Int32
	pool.Submit(&mockJob{executed: &executed})
	if executed.Load() != 0 {
		t.Error("job executed after shutdown")
	}
}
