package model

// ClaimKind categorizes the nature of the claim
type ClaimKind string

const (
	ClaimKindNumber ClaimKind = "number"
	ClaimKindDate   ClaimKind = "date"
)

// Claim is a single extracted sentence flagged as carrying a numeric or date
// assertion. IDs (num-<n>, date-<n>) are assigned in extraction order and are
// stable only within one verification run.
type Claim struct {
	ID      string    `json:"claim_id"`
	Text    string    `json:"text"`
	Kind    ClaimKind `json:"kind"`
	Numbers []string  `json:"numbers,omitempty"` // matched numeric literals, original formatting preserved
	Dates   []string  `json:"dates,omitempty"`   // months, then years, then fiscal tokens
	Links   []LinkRef `json:"links"`             // the links of the segment the sentence came from
}
