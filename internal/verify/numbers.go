package verify

import (
	"context"
	"strings"

	"github.com/ppiankov/veridoc/internal/extract"
	"github.com/ppiankov/veridoc/internal/model"
)

// NumericChecker decides whether each numeric claim is corroborated by one of
// its linked sources. It owns its own run-scoped fetcher; the link checker's
// cache is intentionally not shared (the two checks run as separate passes).
type NumericChecker struct {
	fetcher *PageFetcher
}

// NewNumericChecker creates a numeric claim checker
func NewNumericChecker(fetcher *PageFetcher) *NumericChecker {
	return &NumericChecker{fetcher: fetcher}
}

// Check verifies claims in extraction order. The first link whose page text
// contains a normalized variant of any claim number wins and the scan for
// that claim stops. Verdicts floor at yellow; a claim with no links can never
// reach green.
func (c *NumericChecker) Check(ctx context.Context, claims []model.Claim, linkVerdicts map[string]model.LinkVerdict) []model.ClaimVerdict {
	verdicts := make([]model.ClaimVerdict, 0, len(claims))

	for _, claim := range claims {
		if len(claim.Links) == 0 {
			verdicts = append(verdicts, model.ClaimVerdict{
				ClaimID: claim.ID,
				Status:  model.StatusYellow,
				Notes:   "No linked source near this numeric claim",
			})
			continue
		}

		status := model.StatusYellow
		notes := "No matching number found in linked sources"
		for _, link := range claim.Links {
			if lv, ok := linkVerdicts[link.URL]; ok && lv.Status == model.StatusRed {
				notes = "Linked source appears irrelevant or blocked"
				continue
			}

			page, err := c.fetcher.Fetch(ctx, link.URL)
			if err != nil {
				notes = "Linked source could not be fetched"
				continue
			}

			if page.IsPDF() {
				notes = "Linked source is a PDF; number not auto-verified"
				continue
			}

			text := extract.PageText(string(page.Body))
			if anyNumberInText(claim.Numbers, text) {
				status = model.StatusGreen
				notes = "Number appears in linked source"
				break
			}
		}

		verdicts = append(verdicts, model.ClaimVerdict{
			ClaimID: claim.ID,
			Status:  status,
			Notes:   notes,
		})
	}

	return verdicts
}

func anyNumberInText(numbers []string, text string) bool {
	for _, num := range numbers {
		if numberInText(num, text) {
			return true
		}
	}
	return false
}

// numberInText tests whether any normalized variant of the matched literal
// appears as a substring of the page text.
func numberInText(num, text string) bool {
	for _, variant := range normalizeNumber(num) {
		if variant != "" && strings.Contains(text, variant) {
			return true
		}
	}
	return false
}

// normalizeNumber generates fuzzy-match variants of a numeric literal: the
// literal itself, the literal without thousand separators, that form without
// internal whitespace, and a spaced-percent form for literals ending in "%".
func normalizeNumber(num string) []string {
	raw := strings.TrimSpace(num)
	cleaned := strings.ReplaceAll(raw, ",", "")

	variants := []string{raw}
	appendUnique := func(v string) {
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}

	appendUnique(cleaned)
	appendUnique(strings.ReplaceAll(cleaned, " ", ""))
	if strings.HasSuffix(raw, "%") {
		appendUnique(strings.Replace(raw, "%", " %", 1))
	}
	return variants
}
