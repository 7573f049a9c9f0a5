package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_BurstAllowsImmediate(t *testing.T) {
	limiter := NewLimiter(1, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx, "https://example.com/page"); err != nil {
			t.Fatalf("Expected burst request %d to pass, got %v", i, err)
		}
	}
}

func TestLimiter_PerDomainIndependence(t *testing.T) {
	limiter := NewLimiter(1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Exhausting one domain's burst leaves other domains untouched
	if err := limiter.Wait(ctx, "https://a.example/page"); err != nil {
		t.Fatalf("Expected first request to pass, got %v", err)
	}
	if err := limiter.Wait(ctx, "https://b.example/page"); err != nil {
		t.Fatalf("Expected different domain to pass, got %v", err)
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	ctx := context.Background()
	if err := limiter.Wait(ctx, "https://example.com/page"); err != nil {
		t.Fatalf("Expected burst to pass, got %v", err)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := limiter.Wait(cancelled, "https://example.com/page"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if err := limiter.Wait(context.Background(), "http://bad url with spaces\x7f%"); err == nil {
		t.Error("Expected error for unparseable URL")
	}
}
