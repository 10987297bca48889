package mock

import (
	"context"

	"github.com/fwojciec/ogscrape"
)

var _ ogscrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of ogscrape.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
