package preload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher warms a single URI and returns its payload.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, uri string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, uri string) ([]byte, error) {
	return f(ctx, uri)
}

// MaxImageBytes caps a single download.
const MaxImageBytes = 16 << 20

// HTTPFetcher downloads images over HTTP. Timeouts come from the caller's context.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 8,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		UserAgent: "marquee/1.0",
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "image/webp,image/jpeg,image/png,image/*;q=0.8")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", MaxImageBytes)
	}
	return data, nil
}
