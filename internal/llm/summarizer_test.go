package llm

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/veridoc/internal/model"
)

type fakeProvider struct {
	summary string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	return &SummarizeResponse{Summary: f.summary, Model: "fake-model"}, nil
}

func TestCitedURLs(t *testing.T) {
	text := `The report cites https://a.example/one and https://b.example/two.
	It repeats https://a.example/one later.`

	got := citedURLs(text)
	want := []string{"https://a.example/one", "https://b.example/two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCitedURLs_TrailingPunctuationStripped(t *testing.T) {
	got := citedURLs("See https://a.example/page, then https://b.example/other!")
	want := []string{"https://a.example/page", "https://b.example/other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSummarizer_CitationLeakWarning(t *testing.T) {
	s := &Summarizer{
		provider: &fakeProvider{
			summary: "Sourcing is weak; only https://allowed.example/page and https://leaked.example/other were cited.",
		},
	}

	report := &model.Report{
		DocID: "doc1",
		Links: []model.LinkEntry{{URL: "https://allowed.example/page"}},
	}

	summary, err := s.GenerateSummary(context.Background(), report)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary == nil {
		t.Fatal("Expected a summary")
	}
	if !summary.Enabled {
		t.Error("Expected enabled summary")
	}
	if summary.Provider != "fake" {
		t.Errorf("Expected provider fake, got %s", summary.Provider)
	}
	if len(summary.Warnings) != 1 {
		t.Fatalf("Expected 1 citation leak warning, got %d: %v", len(summary.Warnings), summary.Warnings)
	}
	if !strings.Contains(summary.Warnings[0], "https://leaked.example/other") {
		t.Errorf("Expected warning to name the leaked URL, got '%s'", summary.Warnings[0])
	}
}

func TestSummarizer_NoLeaksNoWarnings(t *testing.T) {
	s := &Summarizer{
		provider: &fakeProvider{summary: "Sourcing looks fine, nothing else to say."},
	}

	summary, err := s.GenerateSummary(context.Background(), &model.Report{DocID: "doc1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", summary.Warnings)
	}
}

func TestSummarizer_DisabledReturnsNil(t *testing.T) {
	var s *Summarizer
	if s.IsEnabled() {
		t.Error("Expected nil summarizer to be disabled")
	}

	summary, err := s.GenerateSummary(context.Background(), &model.Report{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary != nil {
		t.Error("Expected nil summary when disabled")
	}
}
