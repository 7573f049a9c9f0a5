package verify

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/veridoc/internal/extract"
	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/policy"
)

// stopwords are excluded from relevance keywords
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"was": true, "were": true, "are": true, "from": true,
	"that": true, "this": true, "their": true, "they": true,
	"has": true, "have": true, "had": true, "not": true,
	"but": true, "which": true, "who": true, "will": true,
	"would": true, "can": true, "could": true, "should": true,
	"into": true,
}

var wordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// Keywords returns the distinct stopword-filtered, lower-cased words of
// length >= 3 from a segment's text, in first-seen order.
func Keywords(text string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

// keywordHits counts how many keywords occur as a substring of the page text
func keywordHits(text string, keywords []string) int {
	lowered := strings.ToLower(text)
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			hits++
		}
	}
	return hits
}

// LinkChecker produces one verdict per unique URL across the whole document.
// A link's relevance is scored only against the text of the first segment it
// was encountered in.
type LinkChecker struct {
	classifier *policy.Classifier
	fetcher    *PageFetcher
}

// NewLinkChecker creates a link checker backed by a run-scoped fetcher
func NewLinkChecker(classifier *policy.Classifier, fetcher *PageFetcher) *LinkChecker {
	return &LinkChecker{classifier: classifier, fetcher: fetcher}
}

// Check classifies, fetches and scores every unique link in first-seen order.
// Blocked sources are never fetched. Fetch failures degrade the link to
// yellow and never abort the run.
func (c *LinkChecker) Check(ctx context.Context, segments []model.Segment) map[string]model.LinkVerdict {
	verdicts := make(map[string]model.LinkVerdict)

	for _, segment := range segments {
		if len(segment.Links) == 0 {
			continue
		}
		keywords := Keywords(segment.Text)

		for _, link := range segment.Links {
			if _, seen := verdicts[link.URL]; seen {
				continue
			}

			source := c.classifier.Classify(link.URL)
			if !source.Allowed {
				notes := source.Reason
				if notes == "" {
					notes = "Blocked source"
				}
				verdicts[link.URL] = model.LinkVerdict{
					URL:     link.URL,
					Status:  model.StatusRed,
					Quality: source.Quality,
					Notes:   notes,
				}
				continue
			}

			page, err := c.fetcher.Fetch(ctx, link.URL)
			if err != nil {
				verdicts[link.URL] = model.LinkVerdict{
					URL:     link.URL,
					Status:  model.StatusYellow,
					Quality: source.Quality,
					Notes:   fmt.Sprintf("Could not fetch link (%s)", failureCategory(err)),
				}
				continue
			}

			if page.IsPDF() {
				verdicts[link.URL] = model.LinkVerdict{
					URL:     link.URL,
					Status:  model.StatusYellow,
					Quality: source.Quality,
					Notes:   "PDF; relevance not auto-verified",
				}
				continue
			}

			hits := keywordHits(extract.PageText(string(page.Body)), keywords)
			var status model.Status
			var notes string
			switch {
			case hits >= 3:
				status = model.StatusGreen
				notes = "Link content appears relevant to nearby claim"
			case hits >= 1:
				status = model.StatusYellow
				notes = "Link is weakly related to nearby claim"
			default:
				status = model.StatusRed
				notes = "Link content appears unrelated to nearby claim"
			}
			verdicts[link.URL] = model.LinkVerdict{
				URL:     link.URL,
				Status:  status,
				Quality: source.Quality,
				Notes:   notes,
			}
		}
	}

	return verdicts
}

// failureCategory extracts the short failure name from a fetch error
func failureCategory(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return "network error"
}
