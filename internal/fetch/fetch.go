package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// DefaultUserAgent is sent on every request unless overridden.
const DefaultUserAgent = "mrepo/1.0"

// Fetcher performs HTTP GETs on behalf of the update engine. It is safe
// for concurrent use: each call constructs its own request against a
// shared *http.Client, the way a [net/http.Client] is designed to be used.
type Fetcher struct {
	http      *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the underlying HTTP client. Default: a client
// with a 60-second timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.http = c }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// New creates a Fetcher with the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		http:      &http.Client{Timeout: 60 * time.Second},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Handle wraps a successful (status 200) HTTP response body.
type Handle struct {
	url  string
	resp *http.Response
}

// Get performs an HTTP GET against url. An empty URL never starts a
// network call and returns (nil, nil): the caller's job is to treat a nil
// handle as "no update available" regardless of the reason. Any transport
// error or non-200 status returns (nil, *RequestError) for logging.
func (f *Fetcher) Get(ctx context.Context, url string) (*Handle, error) {
	if url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode}
	}

	return &Handle{url: url, resp: resp}, nil
}

// LastModified parses the response's Last-Modified header (RFC 1123,
// a.k.a. RFC 2822 format) to a UTC timestamp.
func (h *Handle) LastModified() (time.Time, bool) {
	raw := h.resp.Header.Get("Last-Modified")
	if raw == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// WriteFile streams the response body to path, creating parent
// directories as needed, and closes the underlying response.
func (h *Handle) WriteFile(path string) bool {
	defer h.resp.Body.Close()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return false
	}
	defer out.Close()

	n, err := io.Copy(out, h.resp.Body)
	if err != nil {
		return false
	}
	log.Debug().Str("url", h.url).Str("path", path).Str("size", humanize.Bytes(uint64(n))).Msg("fetch: wrote file")
	return true
}

// JSON decodes the response body as JSON into a new T and closes the
// underlying response.
func JSON[T any](h *Handle) (*T, bool) {
	defer h.resp.Body.Close()
	var v T
	if err := json.NewDecoder(h.resp.Body).Decode(&v); err != nil {
		return nil, false
	}
	return &v, true
}

// FetchJSON is a convenience wrapper around Get + JSON for provider
// documents: an empty URL, transport error, non-200 status, or decode
// failure all collapse to (nil, false).
func FetchJSON[T any](ctx context.Context, f *Fetcher, url string) (*T, bool) {
	h, err := f.Get(ctx, url)
	if err != nil || h == nil {
		return nil, false
	}
	return JSON[T](h)
}
