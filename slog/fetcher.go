package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogscrape"
)

// Ensure LoggingFetcher implements ogscrape.Fetcher.
var _ ogscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   ogscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ogscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the decoded size and charset of the page, plus the final URL
// when a redirect was followed.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *ogscrape.Response, err error) {
	defer func(begin time.Time) {
		args := []any{"url", url}
		if resp != nil {
			args = append(args, "bytes", len(resp.HTML), "charset", resp.Charset)
			if resp.URL != url {
				args = append(args, "final_url", resp.URL)
			}
		}
		logCall(ctx, f.logger, "fetch", begin, err, args...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
