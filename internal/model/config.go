package model

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the full runtime configuration, assembled from defaults,
// ~/.truthscan/config.yaml, TRUTHSCAN_* environment variables, and flags
type Config struct {
	Scan        ScanConfig        `yaml:"scan" json:"scan"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Synthetic   SyntheticConfig   `yaml:"synthetic" json:"synthetic"`
	Social      SocialConfig      `yaml:"social" json:"social"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// ScanConfig controls the analysis window
type ScanConfig struct {
	Days int `yaml:"days" json:"days"` // Lookback window for all modules
}

// HTTPConfig controls the shared fetcher
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig controls the layered fetch cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing and rate limiting
type ConcurrencyConfig struct {
	Workers           int     `yaml:"workers" json:"workers"`                       // Batch scan workers
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"` // Per-domain fetch rate
	Burst             int     `yaml:"burst" json:"burst"`
}

// SyntheticConfig controls placeholder data generation
type SyntheticConfig struct {
	Enabled      bool `yaml:"enabled" json:"enabled"`
	RecordsPer   int  `yaml:"records_per_entity" json:"records_per_entity"`
	PostsPerTerm int  `yaml:"posts_per_term" json:"posts_per_term"`
}

// SocialConfig controls the live social media lookup
type SocialConfig struct {
	Instances   []string `yaml:"instances" json:"instances"` // Nitter instances tried in order
	MaxPosts    int      `yaml:"max_posts" json:"max_posts"` // Cap per search term
	CheckRobots bool     `yaml:"check_robots" json:"check_robots"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Dir         string `yaml:"dir" json:"dir"`
	Verbose     bool   `yaml:"verbose" json:"verbose"`
	WriteImages bool   `yaml:"write_images" json:"write_images"`
	NoBanner    bool   `yaml:"no_banner" json:"no_banner"`
}

// LLMConfig controls the optional assessment provider
type LLMConfig struct {
	Provider    string `yaml:"provider" json:"provider"` // "" disables
	Model       string `yaml:"model" json:"model"`
	APIKey      string `yaml:"-" json:"-"` // Only from environment, never persisted
	BaseURL     string `yaml:"base_url" json:"base_url"`
	Timeout     int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxTokens   int    `yaml:"max_tokens" json:"max_tokens"`
	StrictLinks bool   `yaml:"strict_links" json:"strict_links"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Scan: ScanConfig{
			Days: 7,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    fmt.Sprintf("%s/%s (+https://github.com/truthscan/truthscan)", ToolName, ToolVersion),
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(home, ".truthscan", "cache"),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Synthetic: SyntheticConfig{
			Enabled:      true,
			RecordsPer:   5,
			PostsPerTerm: 5,
		},
		Social: SocialConfig{
			Instances: []string{
				"https://nitter.net",
				"https://nitter.lacontrevoie.fr",
				"https://nitter.poast.org",
			},
			MaxPosts:    10,
			CheckRobots: true,
		},
		Output: OutputConfig{
			Dir:         "./truthscan-results",
			WriteImages: true,
		},
		LLM: LLMConfig{
			Provider:    "",
			Timeout:     30,
			MaxTokens:   1000,
			StrictLinks: true,
		},
	}
}
