package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/ogscrape"
	"github.com/fwojciec/ogscrape/batch"
	"github.com/fwojciec/ogscrape/fs"
)

// progressWidth is how much of a URL progress lines show.
const progressWidth = 60

// batchLine is one JSON line of batch output.
type batchLine struct {
	URL    string           `json:"url"`
	Result *ogscrape.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 && c.Sitemap == "" {
		fmt.Fprintln(deps.Stderr, "error: pass URLs or --sitemap")
		return ogscrape.Errorf(ogscrape.EINVALID, "no URLs to scrape")
	}

	opts, err := c.Options()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	filter, err := ogscrape.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(err))
		return err
	}

	var writers multiWriter
	if c.Save {
		writers = append(writers, deps.Records)
	}
	var store *fs.FileStore
	if c.Out != "" {
		dir := filepath.Clean(c.Out)
		store = fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
		writers = append(writers, store)
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Scraper:     deps.Scraper,
		Sitemaps:    deps.Sitemaps,
		Limiter:     batch.NewDomainLimiter(c.Rate, c.Burst),
		Options:     opts,
		Concurrency: c.Concurrency,
	}
	if len(writers) > 0 {
		runner.Records = writers
	}

	progress := func(event batch.ProgressEvent) {
		fmt.Fprintln(deps.Stderr, batch.FormatProgress(event, progressWidth))
	}

	var summary *batch.Summary
	if c.Sitemap != "" {
		base, nerr := ogscrape.NormalizeURL(c.Sitemap)
		if nerr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(nerr))
			return nerr
		}
		summary, err = runner.RunSitemap(deps.Ctx, base, filter, progress)
	} else {
		summary, err = runner.Run(deps.Ctx, c.targets(deps, filter), progress)
	}
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Out, err)
			return err
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	for _, item := range summary.Items {
		line := batchLine{URL: item.URL, Result: item.Result}
		if item.Err != nil {
			line.Error = errorText(item.Err)
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Scraped %d pages (%s), %d failed, %d skipped, %d saved\n",
		summary.Scraped, batch.FormatBytes(summary.Bytes), summary.Failed, summary.Skipped, summary.Saved)
	return nil
}

// targets normalizes the URL arguments, dropping invalid ones and those
// the filter rejects.
func (c *BatchCmd) targets(deps *Dependencies, filter *ogscrape.URLFilter) []string {
	var urls []string
	for _, raw := range c.URLs {
		u, err := ogscrape.NormalizeURL(raw)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", raw, ogscrape.ErrorMessage(err))
			continue
		}
		if filter.Match(u) {
			urls = append(urls, u)
		}
	}
	return urls
}

// multiWriter saves each record to every writer in turn.
type multiWriter []ogscrape.RecordWriter

func (m multiWriter) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	for _, w := range m {
		if err := w.CreateRecord(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
