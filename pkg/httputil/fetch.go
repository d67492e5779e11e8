// Package httputil fetches remote diagram documents over HTTP.
//
// The fetcher retries transient failures with exponential backoff and
// can cache response bodies so that repeated imports of the same URL
// do not refetch an unchanged document. HTTP activity is reported
// through the observability hooks.
package httputil

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flowdeck/flowdeck/pkg/cache"
	flowerrors "github.com/flowdeck/flowdeck/pkg/errors"
	"github.com/flowdeck/flowdeck/pkg/observability"
)

// maxDocumentBytes caps the size of a fetched document.
const maxDocumentBytes = 16 << 20

// DefaultTimeout bounds a single fetch attempt.
const DefaultTimeout = 30 * time.Second

// Fetcher downloads documents over HTTP with retry and optional
// response caching.
type Fetcher struct {
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
}

// NewFetcher creates a Fetcher. A nil cache disables response caching.
func NewFetcher(c cache.Cache) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
		cache:  c,
		ttl:    cache.DefaultTTL,
	}
}

// IsURL reports whether path names a remote document rather than a
// local file.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Fetch downloads the document at rawURL. 5xx responses and network
// failures are retried up to three times with exponential backoff;
// 4xx responses fail immediately. A cached body is returned without
// touching the network.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, flowerrors.Wrap(flowerrors.ErrCodeInvalidInput, err, "invalid document URL %s", rawURL)
	}

	key := "document:" + cache.Hash([]byte(rawURL))
	if data, ok, err := f.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "document")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "document")

	var body []byte
	err = Retry(ctx, 3, time.Second, func() error {
		var attemptErr error
		body, attemptErr = f.get(ctx, u)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, key, body, f.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "document", len(body))
	}
	return body, nil
}

// get performs one GET attempt, classifying failures as retryable or
// permanent.
func (f *Fetcher) get(ctx context.Context, u *url.URL) ([]byte, error) {
	observability.HTTP().OnRequest(ctx, http.MethodGet, u.Host, u.Path)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, flowerrors.Wrap(flowerrors.ErrCodeInternal, err, "build request for %s", u)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, u.Host, u.Path, err)
		code := flowerrors.ErrCodeNetwork
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			code = flowerrors.ErrCodeTimeout
		}
		return nil, &RetryableError{Err: flowerrors.Wrap(code, err, "fetch %s", u)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, u.Host, u.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 500:
		return nil, &RetryableError{Err: flowerrors.New(flowerrors.ErrCodeNetwork, "fetch %s: status %d", u, resp.StatusCode)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, flowerrors.New(flowerrors.ErrCodeFileNotFound, "fetch %s: status %d", u, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, flowerrors.New(flowerrors.ErrCodeNetwork, "fetch %s: status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, &RetryableError{Err: flowerrors.Wrap(flowerrors.ErrCodeNetwork, err, "read %s", u)}
	}
	if len(body) > maxDocumentBytes {
		return nil, flowerrors.New(flowerrors.ErrCodeInvalidInput, "fetch %s: document exceeds %d bytes", u, maxDocumentBytes)
	}
	return body, nil
}

// DetectPath returns the path component of rawURL for kind detection,
// or rawURL unchanged when it is not a valid URL.
func DetectPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}
