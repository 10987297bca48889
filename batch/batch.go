// Package batch scrapes many pages concurrently. It coordinates sitemap
// discovery, rate-limited fetching with retries, metadata extraction and
// saving of scrape records.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/ogscrape"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 8

// Runner scrapes a list of URLs.
type Runner struct {
	Fetcher  ogscrape.Fetcher
	Scraper  ogscrape.Scraper
	Sitemaps ogscrape.SitemapService

	// Limiter, if set, throttles requests per host.
	Limiter ogscrape.DomainLimiter

	// Records, if set, receives one record per successful scrape.
	Records ogscrape.RecordWriter

	Options     ogscrape.Options
	Concurrency int
	RetryDelays []time.Duration
}

// Item is the outcome for a single URL.
type Item struct {
	URL    string
	Result *ogscrape.Result
	Err    error

	html string
}

// Summary holds the outcome of a batch.
type Summary struct {
	// Items are in input order, duplicates excluded.
	Items []Item

	Scraped int
	Failed  int
	Skipped int
	Saved   int
	Bytes   int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// RunSitemap discovers URLs from the sitemaps of baseURL and scrapes them.
func (r *Runner) RunSitemap(ctx context.Context, baseURL string, filter *ogscrape.URLFilter, progress ProgressFunc) (*Summary, error) {
	urls, err := r.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}
	return r.Run(ctx, urls, progress)
}

// Run scrapes urls and returns per-URL outcomes. Invalid options are
// reported before anything is fetched; failures of individual pages are
// recorded on their Item and do not stop the batch. Repeated URLs (ignoring
// fragments) are skipped.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Summary, error) {
	if err := ogscrape.ValidateCustomMetaTags(r.Options.CustomMetaTags); err != nil {
		return nil, err
	}

	seen := NewSeen(uint(max(len(urls), 1)), seenFalsePositiveRate)
	var unique []string
	for _, u := range urls {
		if seen.Add(u) {
			unique = append(unique, u)
		}
	}

	summary := &Summary{
		Items:   make([]Item, len(unique)),
		Skipped: len(urls) - len(unique),
	}
	total := len(unique)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type outcome struct {
		position int
		item     Item
	}
	outcomes := make(chan outcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				outcomes <- outcome{position: i, item: r.scrape(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	var completed int
	for o := range outcomes {
		completed++
		summary.Items[o.position] = o.item

		event := ProgressEvent{Completed: completed, Total: total, URL: o.item.URL}
		if o.item.Err != nil {
			summary.Failed++
			event.Type = ProgressFailed
			event.Error = o.item.Err
		} else {
			summary.Scraped++
			summary.Bytes += len(o.item.html)
			event.Type = ProgressCompleted
		}
		notify(progress, event)
	}

	if r.Records != nil {
		for i := range summary.Items {
			item := &summary.Items[i]
			if item.Err != nil {
				continue
			}
			rec := &ogscrape.ScrapeRecord{URL: item.URL, HTML: item.html, Result: item.Result}
			if err := r.Records.CreateRecord(ctx, rec); err != nil {
				item.Err = fmt.Errorf("saving record: %w", err)
				summary.Scraped--
				summary.Failed++
				continue
			}
			summary.Saved++
		}
	}

	for i := range summary.Items {
		summary.Items[i].html = ""
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// scrape fetches and extracts a single page.
func (r *Runner) scrape(ctx context.Context, rawURL string) Item {
	item := Item{URL: rawURL}

	if r.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			item.Err = ogscrape.Errorf(ogscrape.EINVALID, "invalid URL %q", rawURL)
			return item
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			item.Err = err
			return item
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	resp, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, nil, delays)
	if err != nil {
		item.Err = err
		return item
	}

	opts := r.Options
	if opts.Charset == "" {
		opts.Charset = resp.Charset
	}
	result, err := r.Scraper.Scrape(resp.HTML, opts)
	if err != nil {
		item.Err = err
		return item
	}

	item.Result = result
	item.html = resp.HTML
	return item
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
