package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/veridoc/internal/model"
)

var summaryURLRe = regexp.MustCompile(`https?://[^\s)]+`)

// Summarizer generates an optional prose summary of the critique.
// It runs after the report is assembled and never affects verdicts.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces an LLMSummary for the report. URLs cited by the
// model that are not in the report's link list are recorded as warnings.
func (s *Summarizer) GenerateSummary(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	allowed := make([]string, 0, len(report.Links))
	for _, link := range report.Links {
		allowed = append(allowed, link.URL)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:      report,
		AllowedURLs: allowed,
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var warnings []string
	for _, cited := range citedURLs(resp.Summary) {
		if !containsURL(allowed, cited) {
			warnings = append(warnings, fmt.Sprintf("citation leak: model cited disallowed URL %s", cited))
		}
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
		Warnings:  warnings,
	}, nil
}

// citedURLs extracts the distinct URLs mentioned in the summary text
func citedURLs(text string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, url := range summaryURLRe.FindAllString(text, -1) {
		url = strings.TrimRight(url, ".,;:!?")
		if !seen[url] {
			seen[url] = true
			unique = append(unique, url)
		}
	}
	return unique
}

func containsURL(urls []string, target string) bool {
	for _, url := range urls {
		if url == target {
			return true
		}
	}
	return false
}
