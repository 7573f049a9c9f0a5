package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ppiankov/veridoc/internal/model"
)

// Verifier runs one verification. Each call owns its fetch caches, so
// concurrent verifications of different documents share no mutable state.
type Verifier interface {
	Verify(ctx context.Context, docURL string) (*model.Report, error)
}

// BatchResult is the outcome of verifying one document
type BatchResult struct {
	DocURL string
	Report *model.Report
	Err    error
}

// BatchProcessor verifies multiple documents concurrently with a bounded
// worker count.
type BatchProcessor struct {
	verifier Verifier
	workers  int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(verifier Verifier, workers int) *BatchProcessor {
	if workers <= 0 {
		workers = 4
	}
	return &BatchProcessor{
		verifier: verifier,
		workers:  workers,
	}
}

// ProcessURLs verifies all URLs, at most `workers` in flight. Results keep
// the input order.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []BatchResult {
	results := make([]BatchResult, len(urls))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, b.workers)

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, docURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = BatchResult{DocURL: docURL, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			report, err := b.verifier.Verify(ctx, docURL)
			results[idx] = BatchResult{DocURL: docURL, Report: report, Err: err}
		}(i, url)
	}

	wg.Wait()
	return results
}

// ProcessFile reads document URLs from a file and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]BatchResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line, skipping blanks and
// comments and deduplicating.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
