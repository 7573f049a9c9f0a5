package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Page is a successfully fetched page body with its content type
type Page struct {
	Body        []byte
	ContentType string
}

// IsPDF reports whether the content type indicates a PDF document
func (p Page) IsPDF() bool {
	return strings.Contains(strings.ToLower(p.ContentType), "application/pdf")
}

// PageCache caches fetched pages for the lifetime of one verification run.
// Only successful fetches are stored; failures are never cached, so callers
// re-attempt on the next request for the same URL.
type PageCache interface {
	Get(key string) (Page, bool)
	Set(key string, page Page)
	Clear()
}

// Key generates a cache key from a URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "veridoc:v1:" + hex.EncodeToString(hash[:])
}
