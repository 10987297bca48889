package ogscrape

import "context"

// Response is a fetched document decoded to UTF-8.
type Response struct {
	// URL is the final URL after redirects.
	URL string

	// HTML is the decoded document text.
	HTML string

	// Charset is the encoding the body was decoded from, as declared by
	// the server or detected from the content.
	Charset string
}

// Fetcher retrieves HTML documents from URLs.
type Fetcher interface {
	// Fetch downloads the URL and decodes the body to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
