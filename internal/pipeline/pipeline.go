package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/veridoc/internal/critique"
	"github.com/ppiankov/veridoc/internal/extract"
	"github.com/ppiankov/veridoc/internal/llm"
	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/policy"
	"github.com/ppiankov/veridoc/internal/util"
	"github.com/ppiankov/veridoc/internal/verify"
	"github.com/ppiankov/veridoc/internal/worker"
)

// Pipeline orchestrates one verification run: fetch document, segment,
// extract claims, check links, check numeric claims, synthesize critique,
// assemble the report.
type Pipeline struct {
	config     *model.Config
	docFetcher *DocFetcher
	segmenter  *extract.Segmenter
	classifier *policy.Classifier
	summarizer *llm.Summarizer // optional, nil if disabled
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config) *Pipeline {
	tables := policy.DefaultTables().WithExtraBlockedDomains(cfg.Policy.ExtraBlockedDomains)

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		config:     cfg,
		docFetcher: NewDocFetcher(cfg.HTTP),
		segmenter:  extract.NewSegmenter(),
		classifier: policy.NewClassifier(tables),
		summarizer: summarizer,
	}
}

// Verify runs the full assessment for one document URL. Each run owns its
// fetch caches; concurrent runs share nothing mutable. Linked-page failures
// degrade individual verdicts; only input, document-fetch and unexpected
// errors abort the run.
func (p *Pipeline) Verify(ctx context.Context, docURL string) (*model.Report, error) {
	fetched, err := p.docFetcher.FetchDoc(ctx, docURL)
	if err != nil {
		return nil, err
	}

	segments, err := p.segmenter.Segments(fetched.HTML)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	numericClaims := extract.NumericClaims(segments)
	dateClaims := extract.DateClaims(segments)

	limiter := worker.NewLimiter(p.config.RateLimit.RequestsPerSecond, p.config.RateLimit.Burst)
	var robots *util.RobotsChecker
	if p.config.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(p.config.HTTP.UserAgent, p.config.HTTP.LinkTimeout)
	}

	// The two checkers run as separate passes with independent caches.
	linkChecker := verify.NewLinkChecker(p.classifier, verify.NewPageFetcher(p.config.HTTP, limiter, robots))
	linkVerdicts := linkChecker.Check(ctx, segments)

	numericChecker := verify.NewNumericChecker(verify.NewPageFetcher(p.config.HTTP, limiter, robots))
	claimVerdicts := numericChecker.Check(ctx, numericClaims, linkVerdicts)

	critiqueItems := critique.Generate(segments, numericClaims, linkVerdicts)

	report := assembleReport(fetched.DocID, segments, numericClaims, dateClaims, linkVerdicts, claimVerdicts, critiqueItems)

	// Generated after the report is assembled; never affects verdicts.
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

// assembleReport merges claims with their verdicts into the final report.
// Numeric entries follow extraction order; link entries follow first-seen
// document order.
func assembleReport(
	docID string,
	segments []model.Segment,
	numericClaims []model.Claim,
	dateClaims []model.Claim,
	linkVerdicts map[string]model.LinkVerdict,
	claimVerdicts []model.ClaimVerdict,
	critiqueItems []model.CritiqueItem,
) *model.Report {
	byClaim := make(map[string]model.ClaimVerdict, len(claimVerdicts))
	for _, verdict := range claimVerdicts {
		byClaim[verdict.ClaimID] = verdict
	}

	numbers := make([]model.NumberEntry, 0, len(numericClaims))
	for _, claim := range numericClaims {
		verdict := byClaim[claim.ID]
		numbers = append(numbers, model.NumberEntry{
			ClaimID: claim.ID,
			Text:    claim.Text,
			Numbers: claim.Numbers,
			Status:  verdict.Status,
			Notes:   verdict.Notes,
			Links:   linkURLs(claim.Links),
		})
	}

	links := make([]model.LinkEntry, 0, len(linkVerdicts))
	for _, ref := range extract.UniqueLinks(segments) {
		verdict, ok := linkVerdicts[ref.URL]
		if !ok {
			continue
		}
		links = append(links, model.LinkEntry{
			URL:     ref.URL,
			Anchor:  ref.Anchor,
			Status:  verdict.Status,
			Quality: verdict.Quality,
			Notes:   verdict.Notes,
		})
	}

	dates := make([]model.DateEntry, 0, len(dateClaims))
	for _, claim := range dateClaims {
		dates = append(dates, model.DateEntry{
			ClaimID: claim.ID,
			Text:    claim.Text,
			Dates:   claim.Dates,
			Status:  model.StatusYellow,
			Notes:   "Date claims need a linked source for verification",
			Links:   linkURLs(claim.Links),
		})
	}

	if critiqueItems == nil {
		critiqueItems = []model.CritiqueItem{}
	}

	return &model.Report{
		DocID:    docID,
		Numbers:  numbers,
		Links:    links,
		Dates:    dates,
		Critical: critiqueItems,
	}
}

func linkURLs(links []model.LinkRef) []string {
	urls := make([]string, 0, len(links))
	for _, link := range links {
		urls = append(urls, link.URL)
	}
	return urls
}
