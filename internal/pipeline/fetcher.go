package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/truthscan/truthscan/internal/cache"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/util"
	"github.com/truthscan/truthscan/internal/worker"
)

// ErrRobotsDisallowed marks a fetch refused by robots.txt. Callers treat
// it like any other lookup failure (synthetic fallback applies).
var ErrRobotsDisallowed = fmt.Errorf("disallowed by robots.txt")

// Fetcher retrieves page bodies for live lookups, going through the
// per-domain rate limiter, robots.txt checks, and the layered cache.
// A single attempt is made per URL: no retries.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	store      cache.Cache         // nil disables caching
	robots     *util.RobotsChecker // nil disables robots checks
	limiter    *worker.Limiter
}

// NewFetcher builds the shared fetcher from configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
	}

	if cfg.Cache.Enabled {
		f.store = cache.NewLayeredCache(cfg.Cache)
	}
	if cfg.Social.CheckRobots {
		f.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return f
}

// Fetch retrieves the body at rawURL, honoring the cache, robots.txt,
// and the rate limiter
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.store != nil {
		if body, found := f.store.Get(cache.Key(rawURL)); found {
			return string(body), nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return "", ErrRobotsDisallowed
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		// Cache writes never fail a fetch
		_ = f.store.Set(cache.Key(rawURL), body, 0)
	}

	return string(body), nil
}
