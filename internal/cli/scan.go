package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/pipeline"
)

var (
	claim       string
	days        int
	noSynthetic bool
	outputDir   string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noImages    bool
	noBanner    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Analyze a single claim and generate a verification report",
	Long: `Scan aggregates OSINT pointers for one claim:
- Match the claim against the built-in gazetteer of sites and bases
- Generate satellite imagery links for matched nuclear sites
- Generate flight tracking links for matched areas
- Generate military installation links for matched bases
- Search social media mentions (with synthetic fallback)
- Write a JSON report and a text summary to the results directory

Example:
  truthscan scan --claim "India strikes Pakistan nuclear sites"
  truthscan scan --claim "border incident" --days 14 --no-synthetic
  truthscan scan --claim "airspace closure" --llm --llm-provider openai`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&claim, "claim", "", "the claim to fact-check (required)")
	scanCmd.Flags().IntVar(&days, "days", 7, "number of days to look back for data")
	scanCmd.Flags().BoolVar(&noSynthetic, "no-synthetic", false, "disable synthetic data generation (only real data)")
	_ = scanCmd.MarkFlagRequired("claim")

	// Output flags
	scanCmd.Flags().StringVar(&outputDir, "output-dir", "./truthscan-results", "results directory")
	scanCmd.Flags().BoolVar(&noImages, "no-images", false, "skip placeholder image files")
	scanCmd.Flags().BoolVar(&noBanner, "no-banner", false, "omit the banner from the text summary")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fetch cache")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	scanCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	scanCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM assessment generation")
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Claim: %s\n", claim)
		fmt.Fprintf(os.Stderr, "Window: %d days\n", cfg.Scan.Days)
		fmt.Fprintf(os.Stderr, "Synthetic data: %v\n", cfg.Synthetic.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.ScanClaim(ctx, claim)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := p.RenderReport(report); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the runtime configuration. Precedence:
// flags > TRUTHSCAN_* env > config file > defaults
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()
	applyViper(cfg)
	applyFlags(cfg, cmd)

	if cfg.LLM.Provider != "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// applyViper overlays values found in the config file or environment
// on top of the defaults
func applyViper(cfg *model.Config) {
	if viper.IsSet("scan.days") {
		cfg.Scan.Days = viper.GetInt("scan.days")
	}
	if viper.IsSet("http.timeout") {
		cfg.HTTP.Timeout = viper.GetDuration("http.timeout")
	}
	if viper.IsSet("http.user_agent") {
		cfg.HTTP.UserAgent = viper.GetString("http.user_agent")
	}
	if viper.IsSet("http.max_body_bytes") {
		cfg.HTTP.MaxBodyBytes = viper.GetInt64("http.max_body_bytes")
	}
	if viper.IsSet("http.insecure_tls") {
		cfg.HTTP.InsecureTLS = viper.GetBool("http.insecure_tls")
	}
	if viper.IsSet("http.http_proxy") {
		cfg.HTTP.HTTPProxy = viper.GetString("http.http_proxy")
	}
	if viper.IsSet("http.https_proxy") {
		cfg.HTTP.HTTPSProxy = viper.GetString("http.https_proxy")
	}
	if viper.IsSet("http.no_proxy") {
		cfg.HTTP.NoProxy = viper.GetString("http.no_proxy")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("cache.memory_ttl") {
		cfg.Cache.MemoryTTL = viper.GetDuration("cache.memory_ttl")
	}
	if viper.IsSet("cache.disk_ttl") {
		cfg.Cache.DiskTTL = viper.GetDuration("cache.disk_ttl")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("concurrency.requests_per_second") {
		cfg.Concurrency.RequestsPerSecond = viper.GetFloat64("concurrency.requests_per_second")
	}
	if viper.IsSet("concurrency.burst") {
		cfg.Concurrency.Burst = viper.GetInt("concurrency.burst")
	}
	if viper.IsSet("synthetic.enabled") {
		cfg.Synthetic.Enabled = viper.GetBool("synthetic.enabled")
	}
	if viper.IsSet("synthetic.records_per_entity") {
		cfg.Synthetic.RecordsPer = viper.GetInt("synthetic.records_per_entity")
	}
	if viper.IsSet("synthetic.posts_per_term") {
		cfg.Synthetic.PostsPerTerm = viper.GetInt("synthetic.posts_per_term")
	}
	if viper.IsSet("social.instances") {
		cfg.Social.Instances = viper.GetStringSlice("social.instances")
	}
	if viper.IsSet("social.max_posts") {
		cfg.Social.MaxPosts = viper.GetInt("social.max_posts")
	}
	if viper.IsSet("social.check_robots") {
		cfg.Social.CheckRobots = viper.GetBool("social.check_robots")
	}
	if viper.IsSet("output.dir") {
		cfg.Output.Dir = viper.GetString("output.dir")
	}
	if viper.IsSet("output.write_images") {
		cfg.Output.WriteImages = viper.GetBool("output.write_images")
	}
	if viper.IsSet("output.no_banner") {
		cfg.Output.NoBanner = viper.GetBool("output.no_banner")
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.base_url") {
		cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	}
	if viper.IsSet("llm.timeout_seconds") {
		cfg.LLM.Timeout = viper.GetInt("llm.timeout_seconds")
	}
	if viper.IsSet("llm.max_tokens") {
		cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	}
	if viper.IsSet("llm.strict_links") {
		cfg.LLM.StrictLinks = viper.GetBool("llm.strict_links")
	}
	// --verbose is bound to viper in init, so this picks up the
	// flag, TRUTHSCAN_OUTPUT_VERBOSE, and the config file alike
	cfg.Output.Verbose = viper.GetBool("output.verbose")
}

// applyFlags overlays flags the user set explicitly. Flags win over
// both the config file and the environment
func applyFlags(cfg *model.Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("days") {
		cfg.Scan.Days = days
	}
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if flags.Changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("no-synthetic") {
		cfg.Synthetic.Enabled = !noSynthetic
	}
	if flags.Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if flags.Changed("no-images") {
		cfg.Output.WriteImages = !noImages
	}
	if flags.Changed("no-banner") {
		cfg.Output.NoBanner = noBanner
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if flags.Changed("llm") {
		if llmEnabled {
			cfg.LLM.Provider = llmProvider
		} else {
			cfg.LLM.Provider = ""
		}
	}
	if flags.Changed("llm-provider") {
		cfg.LLM.Provider = llmProvider
	}
	if flags.Changed("llm-model") {
		cfg.LLM.Model = llmModel
	}
}
