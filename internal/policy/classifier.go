package policy

import (
	"net/url"
	"strings"

	"github.com/ppiankov/veridoc/internal/model"
)

// Classifier maps a URL to an allow/block decision and a quality tier.
// It is a pure function of the URL and the injected tables: no I/O,
// deterministic for identical input.
type Classifier struct {
	tables Tables
}

// NewClassifier creates a classifier over the given policy tables
func NewClassifier(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

// Classify decides whether a link's source is acceptable. First match wins:
// scheme/parse check, blocked domains, exam-prep hints, market-research
// hints, low-trust hints, otherwise allowed at standard quality.
func (c *Classifier) Classify(rawURL string) model.SourceClass {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Invalid URL"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Unsupported URL scheme"}
	}

	host := normalizeHost(parsed.Hostname())
	if host == "" {
		return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Invalid URL"}
	}

	for _, blocked := range c.tables.BlockedDomains {
		if host == blocked || strings.HasSuffix(host, "."+blocked) {
			return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Blocked domain: " + blocked}
		}
	}

	for _, hint := range c.tables.ExamPrepHints {
		if strings.Contains(host, hint) {
			return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Competitive exam prep source"}
		}
	}

	for _, hint := range c.tables.MarketResearchHints {
		if strings.Contains(host, hint) {
			return model.SourceClass{Allowed: false, Quality: model.QualityBlocked, Reason: "Dubious market-research source"}
		}
	}

	for _, hint := range c.tables.LowTrustHints {
		if strings.Contains(host, hint) {
			return model.SourceClass{Allowed: true, Quality: model.QualityLow, Reason: "Low-trust blog platform"}
		}
	}

	return model.SourceClass{Allowed: true, Quality: model.QualityStandard}
}

// normalizeHost lower-cases the host and strips a leading "www."
func normalizeHost(host string) string {
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}
