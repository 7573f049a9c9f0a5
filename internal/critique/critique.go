package critique

import (
	"fmt"
	"strings"

	"github.com/ppiankov/veridoc/internal/model"
)

// Generate aggregates segments, numeric claims and link verdicts into
// prioritized sourcing-quality findings. Conditions are independent; each
// triggered condition yields exactly one item.
func Generate(segments []model.Segment, numericClaims []model.Claim, linkVerdicts map[string]model.LinkVerdict) []model.CritiqueItem {
	var items []model.CritiqueItem

	blockedLinks := 0
	weakLinks := 0
	for _, verdict := range linkVerdicts {
		switch verdict.Status {
		case model.StatusRed:
			blockedLinks++
		case model.StatusYellow:
			weakLinks++
		}
	}

	if blockedLinks > 0 {
		items = append(items, model.CritiqueItem{
			Severity: model.SeverityMedium,
			Note:     fmt.Sprintf("%d linked sources are blocked or irrelevant; replace with higher-quality sources.", blockedLinks),
		})
	}

	if weakLinks > 0 {
		items = append(items, model.CritiqueItem{
			Severity: model.SeverityLow,
			Note:     fmt.Sprintf("%d linked sources look only weakly related to the nearby claim; tighten the linkage.", weakLinks),
		})
	}

	unsourcedNumbers := 0
	for _, claim := range numericClaims {
		if len(claim.Links) == 0 {
			unsourcedNumbers++
		}
	}
	if unsourcedNumbers > 0 {
		items = append(items, model.CritiqueItem{
			Severity: model.SeverityHigh,
			Note:     fmt.Sprintf("%d numeric claims have no linked source. Add citations or soften the wording.", unsourcedNumbers),
		})
	}

	placeholderSources := 0
	for _, segment := range segments {
		if strings.Contains(strings.ToLower(segment.Text), "source") && len(segment.Links) == 0 {
			placeholderSources++
		}
	}
	if placeholderSources > 0 {
		items = append(items, model.CritiqueItem{
			Severity: model.SeverityMedium,
			Note:     fmt.Sprintf("%d 'Source' placeholders found without links. Replace with actual URLs.", placeholderSources),
		})
	}

	if len(linkVerdicts) == 0 {
		items = append(items, model.CritiqueItem{
			Severity: model.SeverityHigh,
			Note:     "No hyperlinks were detected. This makes verification difficult.",
		})
	}

	return items
}
