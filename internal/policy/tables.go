package policy

// Tables holds the source-trust policy lists. Instances are treated as
// immutable once built; the classifier never modifies them.
type Tables struct {
	// BlockedDomains are matched against the host exactly or as a parent
	// domain (host == entry or host ends with "." + entry).
	BlockedDomains []string

	// ExamPrepHints, MarketResearchHints and LowTrustHints are matched as
	// substrings of the normalized host.
	ExamPrepHints       []string
	MarketResearchHints []string
	LowTrustHints       []string
}

// DefaultTables returns the built-in policy tables.
func DefaultTables() Tables {
	return Tables{
		BlockedDomains: []string{
			"wikipedia.org",
			"wikimedia.org",
			"reddit.com",
			"twitter.com",
			"x.com",
			"facebook.com",
			"instagram.com",
			"linkedin.com",
			"tiktok.com",
			"quora.com",
		},
		ExamPrepHints: []string{
			"byju",
			"toppr",
			"testbook",
			"gradeup",
			"unacademy",
			"embibe",
			"adda247",
			"careerpower",
			"bankersadda",
			"ssc",
			"upsc",
			"neet",
			"jee",
		},
		MarketResearchHints: []string{
			"fortunebusinessinsights",
			"grandviewresearch",
			"marketresearchfuture",
			"reportlinker",
			"alliedmarketresearch",
			"researchandmarkets",
			"mordorintelligence",
			"imarcgroup",
			"verifiedmarketresearch",
			"marketsandmarkets",
			"databridge",
			"precedenceresearch",
			"futuremarketinsights",
			"gminsights",
			"coherentmarketinsights",
		},
		LowTrustHints: []string{
			"blogspot",
			"wordpress",
			"medium.com",
			"substack.com",
		},
	}
}

// WithExtraBlockedDomains returns a copy of the tables with additional
// blocked domains appended.
func (t Tables) WithExtraBlockedDomains(domains []string) Tables {
	if len(domains) == 0 {
		return t
	}
	merged := make([]string, 0, len(t.BlockedDomains)+len(domains))
	merged = append(merged, t.BlockedDomains...)
	merged = append(merged, domains...)
	t.BlockedDomains = merged
	return t
}
