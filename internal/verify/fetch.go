package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/ppiankov/veridoc/internal/cache"
	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/util"
	"github.com/ppiankov/veridoc/internal/worker"
)

// FetchError is a recoverable failure retrieving a linked page. Category is
// the short failure name surfaced in verdict notes.
type FetchError struct {
	URL        string
	Category   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Category, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Category)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PageFetcher retrieves linked pages under a bounded timeout, caching
// successful fetches per URL for the lifetime of one verification run.
// Each fetch gets exactly one attempt per cache slot; failures are not
// cached, so a later request for the same URL re-attempts.
type PageFetcher struct {
	client    *http.Client
	cache     cache.PageCache
	limiter   *worker.Limiter
	robots    *util.RobotsChecker // nil unless robots.txt politeness is enabled
	userAgent string
	maxBytes  int64
}

// NewPageFetcher creates a fetcher with its own run-scoped cache
func NewPageFetcher(cfg model.HTTPConfig, limiter *worker.Limiter, robots *util.RobotsChecker) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: cfg.LinkTimeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		cache:     cache.NewMemoryCache(),
		limiter:   limiter,
		robots:    robots,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Fetch retrieves a page, reusing the run cache when the URL has already been
// fetched successfully.
func (f *PageFetcher) Fetch(ctx context.Context, rawURL string) (cache.Page, error) {
	key := cache.Key(rawURL)
	if page, ok := f.cache.Get(key); ok {
		return page, nil
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return cache.Page{}, &FetchError{URL: rawURL, Category: categorize(err), Err: err}
		}
	}

	if f.robots != nil && !f.robots.Allowed(ctx, rawURL) {
		return cache.Page{}, &FetchError{URL: rawURL, Category: "disallowed by robots.txt"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return cache.Page{}, &FetchError{URL: rawURL, Category: "invalid URL", Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return cache.Page{}, &FetchError{URL: rawURL, Category: categorize(err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return cache.Page{}, &FetchError{
			URL:        rawURL,
			Category:   fmt.Sprintf("HTTP %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return cache.Page{}, &FetchError{URL: rawURL, Category: categorize(err), Err: err}
	}

	page := cache.Page{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}
	f.cache.Set(key, page)

	return page, nil
}

// categorize maps a transport error to a short failure name for notes
func categorize(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "network error"
}
