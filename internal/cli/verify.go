package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	docTimeout    time.Duration
	linkTimeout   time.Duration
	userAgent     string
	maxBytes      int64
	respectRobots bool
	rps           float64
	httpProxy     string
	httpsProxy    string
	llmProvider   string
	llmModel      string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <doc-url>",
	Short: "Verify a single shared document and print the report as JSON",
	Long: `Verify fetches a shared document's HTML export and assesses its sourcing:
- Segment the document and extract numeric and date claims
- Classify every outbound link against the source-trust policy
- Fetch linked pages and score relevance and number corroboration
- Synthesize an aggregate sourcing critique

Example:
  veridoc verify https://docs.google.com/document/d/abc123/edit
  veridoc verify https://docs.google.com/document/d/abc123/edit --link-timeout 10s
  veridoc verify https://docs.google.com/document/d/abc123/edit --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().DurationVar(&docTimeout, "doc-timeout", 20*time.Second, "timeout for fetching the document itself")
	verifyCmd.Flags().DurationVar(&linkTimeout, "link-timeout", 20*time.Second, "timeout per linked-page fetch")
	verifyCmd.Flags().StringVar(&userAgent, "ua", "Veridoc/0.1 (+https://github.com/ppiankov/veridoc)", "HTTP User-Agent")
	verifyCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	verifyCmd.Flags().BoolVar(&respectRobots, "robots", false, "consult robots.txt before linked-page fetches")
	verifyCmd.Flags().Float64Var(&rps, "rps", 4, "max linked-page fetches per second per domain")
	verifyCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	verifyCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	verifyCmd.Flags().StringVar(&llmProvider, "llm", "", "enable LLM critique summary with this provider (openai, ollama)")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.DocTimeout = docTimeout
	cfg.HTTP.LinkTimeout = linkTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = respectRobots
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.RateLimit.RequestsPerSecond = rps
	cfg.Output.Verbose = verbose

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	docURL := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n", docURL)
		fmt.Fprintf(os.Stderr, "Link timeout: %v\n\n", cfg.HTTP.LinkTimeout)
	}

	p := pipeline.New(cfg)

	report, err := p.Verify(context.Background(), docURL)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d numeric claims\n", len(report.Numbers))
		fmt.Fprintf(os.Stderr, "✓ %d date claims\n", len(report.Dates))
		fmt.Fprintf(os.Stderr, "✓ %d unique links\n", len(report.Links))
		fmt.Fprintf(os.Stderr, "✓ %d critique items\n\n", len(report.Critical))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
