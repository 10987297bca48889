package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogscrape"
)

// Ensure LoggingScraper implements ogscrape.Scraper.
var _ ogscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   ogscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next ogscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the input size, options and how many fields were set.
func (s *LoggingScraper) Scrape(html string, opts ogscrape.Options) (result *ogscrape.Result, err error) {
	defer func(begin time.Time) {
		var fields, custom int
		if result != nil {
			fields = result.Len()
			custom = len(result.CustomMetaTags())
		}
		logCall(context.Background(), s.logger, "scrape", begin, err,
			"bytes", len(html),
			"only_og", opts.OnlyGetOpenGraphInfo,
			"custom_tags", len(opts.CustomMetaTags),
			"fields", fields,
			"custom", custom,
		)
	}(time.Now())
	return s.next.Scrape(html, opts)
}
