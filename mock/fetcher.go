package mock

import (
	"context"

	"github.com/fwojciec/ogscrape"
)

var _ ogscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ogscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ogscrape.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ogscrape.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ ogscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ogscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
