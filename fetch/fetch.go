// Package fetch retrieves remote images over HTTP through an on-disk
// response cache, spacing origin requests a minimum interval apart so
// repeated runs against the same host stay polite.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	httpcache "github.com/yyyoichi/httpcache-go"
)

// DefaultInterval is the minimum spacing between origin requests.
const DefaultInterval = 250 * time.Millisecond

// rateLimitedClient wraps an HTTP client with rate limiting between requests.
// Thread-safe for concurrent requests.
type rateLimitedClient struct {
	client   *http.Client
	interval time.Duration
	lastCall time.Time
	mu       sync.Mutex
}

func (r *rateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Wait if needed to maintain the interval between requests
	elapsed := time.Since(r.lastCall)
	if elapsed < r.interval {
		time.Sleep(r.interval - elapsed)
	}

	resp, err := r.client.Do(req)
	r.lastCall = time.Now()

	return resp, err
}

// Fetcher retrieves URLs, serving repeats from the cache directory.
type Fetcher struct {
	client httpcache.Client
}

// New builds a fetcher caching responses under cacheDir. A non-positive
// interval falls back to DefaultInterval.
func New(cacheDir string, interval time.Duration) *Fetcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Fetcher{
		client: httpcache.Client{
			Client:  &rateLimitedClient{client: http.DefaultClient, interval: interval},
			Cache:   httpcache.NewStorageCache(cacheDir),
			Handler: httpcache.NewDefaultHandler(),
		},
	}
}

// Get returns the body served at uri.
func (f *Fetcher) Get(uri string) ([]byte, error) {
	resp, err := f.client.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return data, nil
}
