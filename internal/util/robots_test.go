package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCanFetchDisallowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /private\nCrawl-delay: 2\n"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	checker := NewRobotsChecker("TruthScan/1.0.0", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/private/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if allowed {
		t.Error("disallowed path allowed")
	}

	allowed, delay, err = checker.CanFetch(ctx, server.URL+"/public")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("public path disallowed")
	}
	if delay != 2*time.Second {
		t.Errorf("crawl delay = %v, want 2s", delay)
	}
}

func TestCanFetchMissingRobots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("TruthScan/1.0.0", 5*time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("404 robots.txt should allow everything")
	}
}

func TestCanFetchUnreachableHost(t *testing.T) {
	checker := NewRobotsChecker("TruthScan/1.0.0", time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("unreachable robots.txt should allow the fetch")
	}
}

func TestRobotsCachePerHost(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("User-agent: *\nDisallow:\n"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	checker := NewRobotsChecker("TruthScan/1.0.0", 5*time.Second)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, _, err := checker.CanFetch(ctx, server.URL+"/page")
		if err != nil {
			t.Fatalf("CanFetch: %v", err)
		}
		if !allowed {
			t.Fatal("fetch disallowed")
		}
	}
	if hits.Load() != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", hits.Load())
	}

	checker.Clear()
	if _, _, err := checker.CanFetch(ctx, server.URL+"/page"); err != nil {
		t.Fatalf("CanFetch after Clear: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("expected refetch after Clear, hits = %d", hits.Load())
	}
}
