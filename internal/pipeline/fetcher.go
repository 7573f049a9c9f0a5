package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/util"
)

var docIDRe = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)

// ExtractDocID pulls the document identifier out of a shared-document URL
func ExtractDocID(docURL string) (string, error) {
	match := docIDRe.FindStringSubmatch(docURL)
	if match == nil {
		return "", &InputError{Msg: "could not extract document ID from URL"}
	}
	return match[1], nil
}

// ExportURL returns the canonical retrievable HTML export URL for a document
func ExportURL(docID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/export?format=html", docID)
}

// DocFetcher retrieves the source document's HTML export
type DocFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewDocFetcher creates a document fetcher from HTTP configuration
func NewDocFetcher(cfg model.HTTPConfig) *DocFetcher {
	return &DocFetcher{
		client: &http.Client{
			Timeout: cfg.DocTimeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// DocFetchResult contains the resolved document ID and its HTML
type DocFetchResult struct {
	DocID string
	HTML  string
}

// FetchDoc resolves the doc URL to its export URL and retrieves the markup.
// Any retrieval failure is a SourceFetchError and aborts the run.
func (f *DocFetcher) FetchDoc(ctx context.Context, docURL string) (*DocFetchResult, error) {
	docID, err := ExtractDocID(docURL)
	if err != nil {
		return nil, err
	}

	exportURL := ExportURL(docID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, &SourceFetchError{URL: exportURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &SourceFetchError{URL: exportURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SourceFetchError{URL: exportURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, &SourceFetchError{URL: exportURL, Err: err}
	}

	return &DocFetchResult{
		DocID: docID,
		HTML:  string(body),
	}, nil
}
