package model

// Status is the traffic-light trust assessment for a claim or link
type Status string

const (
	StatusGreen  Status = "green"  // supported
	StatusYellow Status = "yellow" // weakly supported
	StatusRed    Status = "red"    // unsupported or blocked
)

// Quality classifies a link's source domain, independent of its verdict color
type Quality string

const (
	QualityBlocked  Quality = "blocked"
	QualityLow      Quality = "low"
	QualityStandard Quality = "standard"
)

// SourceClass is the source policy decision for a URL
type SourceClass struct {
	Allowed bool    `json:"allowed"`
	Quality Quality `json:"quality"`
	Reason  string  `json:"reason,omitempty"`
}

// LinkVerdict is the trust assessment for one unique URL. The dedupe key is
// the literal URL string as first seen in the document.
type LinkVerdict struct {
	URL     string  `json:"url"`
	Status  Status  `json:"status"`
	Quality Quality `json:"quality"`
	Notes   string  `json:"notes"`
}

// ClaimVerdict is the trust assessment for one extracted claim
type ClaimVerdict struct {
	ClaimID string `json:"claim_id"`
	Status  Status `json:"status"`
	Notes   string `json:"notes"`
}

// Severity ranks aggregate sourcing-quality findings
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// CritiqueItem is an aggregate, severity-tagged sourcing-quality finding not
// tied to a single claim or link
type CritiqueItem struct {
	Severity Severity `json:"severity"`
	Note     string   `json:"note"`
}
