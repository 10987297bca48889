package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogscrape"
)

// Ensure LoggingSitemapService implements ogscrape.SitemapService.
var _ ogscrape.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   ogscrape.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next ogscrape.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs logs the site, the filter pattern counts and how many pages
// were found.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogscrape.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		var include, exclude int
		if filter != nil {
			include, exclude = len(filter.Include), len(filter.Exclude)
		}
		logCall(ctx, s.logger, "sitemap discovery", begin, err,
			"site", baseURL,
			"include", include,
			"exclude", exclude,
			"pages", len(urls),
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
