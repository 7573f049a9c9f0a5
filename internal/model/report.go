package model

// Report is the externally visible result of one verification run.
// It is assembled once by the pipeline and never mutated piecewise.
type Report struct {
	DocID    string         `json:"doc_id"`
	Numbers  []NumberEntry  `json:"numbers"`
	Links    []LinkEntry    `json:"links"`
	Dates    []DateEntry    `json:"dates"`
	Critical []CritiqueItem `json:"critical"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional prose summary, never affects verdicts
}

// NumberEntry merges a numeric claim with its verdict
type NumberEntry struct {
	ClaimID string   `json:"claim_id"`
	Text    string   `json:"text"`
	Numbers []string `json:"numbers"`
	Status  Status   `json:"status"`
	Notes   string   `json:"notes"`
	Links   []string `json:"links"`
}

// LinkEntry merges a unique link's verdict with the anchor text of its first
// occurrence in the document
type LinkEntry struct {
	URL     string  `json:"url"`
	Anchor  string  `json:"anchor"`
	Status  Status  `json:"status"`
	Quality Quality `json:"quality"`
	Notes   string  `json:"notes"`
}

// DateEntry merges a date claim with its fixed verdict. Date claims are never
// auto-verified; their status is always yellow.
type DateEntry struct {
	ClaimID string   `json:"claim_id"`
	Text    string   `json:"text"`
	Dates   []string `json:"dates"`
	Status  Status   `json:"status"`
	Notes   string   `json:"notes"`
	Links   []string `json:"links"`
}

// LLMSummary contains the optional LLM-generated critique summary.
// It is clearly separated from the scored output and never affects verdicts.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
