package extract

import (
	"reflect"
	"testing"

	"github.com/ppiankov/veridoc/internal/model"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"basic",
			"First sentence. Second sentence! Third?",
			[]string{"First sentence.", "Second sentence!", "Third?"},
		},
		{
			"no terminator",
			"A fragment without punctuation",
			[]string{"A fragment without punctuation"},
		},
		{
			"decimal point not a boundary",
			"Growth was 4.5 percent last year. Next topic.",
			[]string{"Growth was 4.5 percent last year.", "Next topic."},
		},
		{
			"empty",
			"   ",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNumericClaims_CurrencyAndUnit(t *testing.T) {
	segments := []model.Segment{
		{Text: "Revenue grew to ₹1,200 cr in FY23."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"₹1,200 cr"}) {
		t.Errorf("Expected numbers [₹1,200 cr], got %v", claims[0].Numbers)
	}
	if claims[0].ID != "num-1" {
		t.Errorf("Expected id num-1, got %s", claims[0].ID)
	}
	if claims[0].Kind != model.ClaimKindNumber {
		t.Errorf("Expected kind number, got %s", claims[0].Kind)
	}
}

func TestNumericClaims_Percent(t *testing.T) {
	segments := []model.Segment{
		{Text: "Market share reached 45.5% this quarter."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"45.5%"}) {
		t.Errorf("Expected numbers [45.5%%], got %v", claims[0].Numbers)
	}
}

func TestNumericClaims_WordBoundaries(t *testing.T) {
	// Digits embedded in identifiers are not numeric literals
	segments := []model.Segment{
		{Text: "Check module abc123def for details."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 0 {
		t.Errorf("Expected no claims for embedded digits, got %v", claims)
	}
}

func TestNumericClaims_CurrencyGluedToWord(t *testing.T) {
	// "US$5" puts a word character before the currency symbol; the bare
	// number is still a literal
	segments := []model.Segment{
		{Text: "Exports touched US$5 billion last year."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d: %v", len(claims), claims)
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"5 billion"}) {
		t.Errorf("Expected numbers [5 billion], got %v", claims[0].Numbers)
	}
	if claims[0].ID != "num-1" {
		t.Errorf("Expected id num-1, got %s", claims[0].ID)
	}
}

func TestNumericClaims_CurrencyGluedToWordWithDecimal(t *testing.T) {
	segments := []model.Segment{
		{Text: "Revenue was A$2.5 million in total."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d: %v", len(claims), claims)
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"2.5 million"}) {
		t.Errorf("Expected numbers [2.5 million], got %v", claims[0].Numbers)
	}
}

func TestNumericClaims_UnitRunsIntoWord(t *testing.T) {
	// "5 croresque" is not a crore literal; the match shrinks to "5"
	segments := []model.Segment{
		{Text: "There were 5 croresque items."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"5"}) {
		t.Errorf("Expected match to shrink to [5], got %v", claims[0].Numbers)
	}
}

func TestNumericClaims_OnePerSentence(t *testing.T) {
	segments := []model.Segment{
		{Text: "Sales hit $5 million. Costs were $2 million and margins 40%."},
	}

	claims := NumericClaims(segments)
	if len(claims) != 2 {
		t.Fatalf("Expected 2 claims (one per sentence), got %d", len(claims))
	}
	if !reflect.DeepEqual(claims[0].Numbers, []string{"$5 million"}) {
		t.Errorf("Expected [$5 million], got %v", claims[0].Numbers)
	}
	if !reflect.DeepEqual(claims[1].Numbers, []string{"$2 million", "40%"}) {
		t.Errorf("Expected [$2 million, 40%%], got %v", claims[1].Numbers)
	}
	if claims[1].ID != "num-2" {
		t.Errorf("Expected sequential ids, got %s", claims[1].ID)
	}
}

func TestNumericClaims_InheritSegmentLinks(t *testing.T) {
	links := []model.LinkRef{{URL: "https://example.com/source", Anchor: "source"}}
	segments := []model.Segment{
		{Text: "Output rose 12% in 2021. No numbers here though links exist.", Links: links},
	}

	claims := NumericClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if !reflect.DeepEqual(claims[0].Links, links) {
		t.Errorf("Expected claim to carry segment links, got %v", claims[0].Links)
	}
}

func TestDateClaims_MonthsYearsFiscal(t *testing.T) {
	segments := []model.Segment{
		{Text: "In March 2021 and again in FY23, output doubled."},
	}

	claims := DateClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	// Months first, then years, then fiscal tokens
	want := []string{"March", "2021", "FY23"}
	if !reflect.DeepEqual(claims[0].Dates, want) {
		t.Errorf("Expected dates %v, got %v", want, claims[0].Dates)
	}
	if claims[0].ID != "date-1" {
		t.Errorf("Expected id date-1, got %s", claims[0].ID)
	}
	if claims[0].Kind != model.ClaimKindDate {
		t.Errorf("Expected kind date, got %s", claims[0].Kind)
	}
}

func TestDateClaims_YearRange(t *testing.T) {
	segments := []model.Segment{
		{Text: "Founded in 1899 but incorporated in 1902."},
	}

	claims := DateClaims(segments)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	// 1899 is outside [1900, 2099]
	if !reflect.DeepEqual(claims[0].Dates, []string{"1902"}) {
		t.Errorf("Expected only 1902, got %v", claims[0].Dates)
	}
}

func TestDateClaims_NoDates(t *testing.T) {
	segments := []model.Segment{
		{Text: "Nothing temporal in this sentence at all."},
	}

	if claims := DateClaims(segments); len(claims) != 0 {
		t.Errorf("Expected no claims, got %v", claims)
	}
}
