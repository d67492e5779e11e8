package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flowdeck/flowdeck/pkg/cache"
	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
)

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("transient")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("Retry() error = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on permanent error)", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: errors.New("always failing")}
	})
	if err == nil {
		t.Fatal("Retry() should return the last error")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error = %q, want attempt count annotation", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Minute, func() error {
		return &RetryableError{Err: errors.New("transient")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<diagram></diagram>"))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	body, err := f.Fetch(context.Background(), srv.URL+"/deck.xml")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != "<diagram></diagram>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchNotFoundIsPermanent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing.xml")
	if !flowerrors.Is(err, flowerrors.ErrCodeFileNotFound) {
		t.Fatalf("Fetch() error = %v, want FILE_NOT_FOUND", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (404 should not retry)", calls)
	}
}

func TestFetchServesFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("cached body"))
	}))
	defer srv.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	f := NewFetcher(fc)

	for range 2 {
		body, err := f.Fetch(context.Background(), srv.URL+"/deck.xml")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if string(body) != "cached body" {
			t.Errorf("body = %q", body)
		}
	}

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (second fetch should hit the cache)", calls)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"https://example.com/deck.xml", true},
		{"http://example.com/rows.csv", true},
		{"deck.xml", false},
		{"/tmp/deck.xml", false},
		{"ftp://example.com/deck.xml", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.path); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDetectPath(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{"https://example.com/diagrams/deck.xml?v=2", "/diagrams/deck.xml"},
		{"https://example.com/rows.csv", "/rows.csv"},
		{"deck.xml", "deck.xml"},
	}

	for _, tt := range tests {
		if got := DetectPath(tt.rawURL); got != tt.want {
			t.Errorf("DetectPath(%q) = %q, want %q", tt.rawURL, got, tt.want)
		}
	}
}
