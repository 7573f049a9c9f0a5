package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/veridoc/internal/model"
)

// Provider defines the interface for LLM backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a prose summary of a verification report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for report summarization
type SummarizeRequest struct {
	// Report is the verification report to summarize
	Report *model.Report

	// AllowedURLs is the strict allowlist of URLs the model may cite;
	// anything else is a citation leak
	AllowedURLs []string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the model's summary output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai", "ollama", "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. The model is told
// to describe sourcing quality, never to assert truth, and to cite only from
// the allowlist.
func BuildPrompt(report *model.Report, allowedURLs []string) string {
	prompt := fmt.Sprintf(`You are summarizing a document sourcing assessment. The tool evaluates how well numeric and date claims are backed by their linked sources - it never determines truth.

CRITICAL RULES:
1. You MUST ONLY cite URLs from this allowed list:
%s

2. DO NOT infer, speculate, or cite external sources beyond this list.
3. Focus on SOURCING QUALITY, not truth.

Assessment summary:
- Document: %s
- Numeric claims: %d
- Date claims: %d
- Unique links: %d

Critique findings:
`, joinURLs(allowedURLs), report.DocID, len(report.Numbers), len(report.Dates), len(report.Links))

	for _, item := range report.Critical {
		prompt += fmt.Sprintf("- [%s] %s\n", item.Severity, item.Note)
	}
	if len(report.Critical) == 0 {
		prompt += "- (no findings)\n"
	}

	prompt += "\nProvide a 3-4 sentence summary of the document's sourcing quality."

	return prompt
}

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return "(No URLs available)"
	}
	result := ""
	for i, url := range urls {
		if i >= 20 { // cap to avoid token bloat
			result += fmt.Sprintf("\n... and %d more URLs", len(urls)-20)
			break
		}
		result += fmt.Sprintf("\n- %s", url)
	}
	return result
}
