// Package http provides net/http implementations of ogscrape.Fetcher and
// ogscrape.SitemapService.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/ogscrape"
	"golang.org/x/net/html/charset"
)

// Defaults for Fetcher options.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultUserAgent    = "ogscrape/1.0"
	DefaultMaxBodySize  = 5 << 20
	DefaultMaxRedirects = 5
)

// Ensure Fetcher implements ogscrape.Fetcher at compile time.
var _ ogscrape.Fetcher = (*Fetcher)(nil)

// Fetcher downloads HTML pages and decodes them to UTF-8.
// JavaScript is not executed; metadata must be present in the served HTML.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodySize  int64
	maxRedirects int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of bytes read from a response body.
// Metadata lives in the head, so truncated bodies are still usable.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithMaxRedirects caps how many redirects are followed.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodySize:  DefaultMaxBodySize,
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:       f.timeout,
		CheckRedirect: f.checkRedirect,
	}

	return f
}

// Client returns the underlying HTTP client so that other services can
// share its timeout and redirect policy.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Fetch downloads url and decodes the body to UTF-8. The encoding is taken
// from a byte order mark, the Content-Type header or a <meta> declaration
// in the first kilobyte, in that order.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ogscrape.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, ogscrape.Errorf(ogscrape.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTML(contentType) {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "unsupported content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, err
	}

	enc, name, certain := charset.DetermineEncoding(body, contentType)
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", url, name, err)
	}

	out := &ogscrape.Response{
		URL:  resp.Request.URL.String(),
		HTML: string(decoded),
	}
	// An uncertain guess is left out so the document's own declaration wins.
	if certain {
		out.Charset = name
	}
	return out, nil
}

func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= f.maxRedirects {
		return errors.New("too many redirects")
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("redirect to unsupported scheme %q", req.URL.Scheme)
	}
	return nil
}

// isHTML reports whether a Content-Type header denotes an HTML document.
// A missing header is accepted.
func isHTML(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
