package pipeline

import (
	"testing"

	"github.com/ppiankov/veridoc/internal/extract"
	"github.com/ppiankov/veridoc/internal/model"
)

func TestAssembleReport_Ordering(t *testing.T) {
	markup := `
	<p>Revenue hit 1,200 units. See <a href="https://a.example/one">source A</a>.</p>
	<p>Costs fell 30% in March 2021. See <a href="https://b.example/two">source B</a>
	   and again <a href="https://a.example/one">source A</a>.</p>
	`
	segments, err := extract.NewSegmenter().Segments(markup)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	numericClaims := extract.NumericClaims(segments)
	dateClaims := extract.DateClaims(segments)

	linkVerdicts := map[string]model.LinkVerdict{
		"https://a.example/one": {URL: "https://a.example/one", Status: model.StatusGreen, Quality: model.QualityStandard, Notes: "ok"},
		"https://b.example/two": {URL: "https://b.example/two", Status: model.StatusYellow, Quality: model.QualityLow, Notes: "weak"},
	}
	claimVerdicts := []model.ClaimVerdict{
		{ClaimID: "num-1", Status: model.StatusGreen, Notes: "Number appears in linked source"},
		{ClaimID: "num-2", Status: model.StatusYellow, Notes: "No matching number found in linked sources"},
	}

	report := assembleReport("doc123", segments, numericClaims, dateClaims, linkVerdicts, claimVerdicts, nil)

	if report.DocID != "doc123" {
		t.Errorf("Expected doc id doc123, got %s", report.DocID)
	}

	if len(report.Numbers) != 2 {
		t.Fatalf("Expected 2 number entries, got %d", len(report.Numbers))
	}
	if report.Numbers[0].ClaimID != "num-1" || report.Numbers[1].ClaimID != "num-2" {
		t.Errorf("Expected extraction order, got %s then %s", report.Numbers[0].ClaimID, report.Numbers[1].ClaimID)
	}
	if report.Numbers[0].Status != model.StatusGreen {
		t.Errorf("Expected verdict merged onto entry, got %s", report.Numbers[0].Status)
	}

	if len(report.Links) != 2 {
		t.Fatalf("Expected 2 link entries, got %d", len(report.Links))
	}
	// First-seen document order, not map order
	if report.Links[0].URL != "https://a.example/one" || report.Links[1].URL != "https://b.example/two" {
		t.Errorf("Expected first-seen link order, got %s then %s", report.Links[0].URL, report.Links[1].URL)
	}
	if report.Links[0].Anchor != "source A" {
		t.Errorf("Expected first occurrence anchor, got '%s'", report.Links[0].Anchor)
	}

	if len(report.Dates) != 1 {
		t.Fatalf("Expected 1 date entry, got %d", len(report.Dates))
	}
	if report.Dates[0].Status != model.StatusYellow {
		t.Errorf("Expected date entries to be yellow, got %s", report.Dates[0].Status)
	}
	if report.Dates[0].Notes != "Date claims need a linked source for verification" {
		t.Errorf("Unexpected date note: '%s'", report.Dates[0].Notes)
	}

	if report.Critical == nil {
		t.Error("Expected non-nil critique list even when empty")
	}
}

func TestAssembleReport_ClaimLinksAsURLs(t *testing.T) {
	segments := []model.Segment{{
		Text:  "Output reached 1,200 units.",
		Links: []model.LinkRef{{URL: "https://a.example/one", Anchor: "a"}},
	}}
	numericClaims := extract.NumericClaims(segments)

	linkVerdicts := map[string]model.LinkVerdict{
		"https://a.example/one": {URL: "https://a.example/one", Status: model.StatusGreen},
	}
	claimVerdicts := []model.ClaimVerdict{
		{ClaimID: "num-1", Status: model.StatusGreen, Notes: "Number appears in linked source"},
	}

	report := assembleReport("d", segments, numericClaims, nil, linkVerdicts, claimVerdicts, nil)

	if len(report.Numbers) != 1 {
		t.Fatalf("Expected 1 number entry, got %d", len(report.Numbers))
	}
	if len(report.Numbers[0].Links) != 1 || report.Numbers[0].Links[0] != "https://a.example/one" {
		t.Errorf("Expected claim links flattened to URLs, got %v", report.Numbers[0].Links)
	}
}

func TestNew_DisabledLLM(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg)
	if p.summarizer != nil {
		t.Error("Expected no summarizer when LLM provider is empty")
	}
}
