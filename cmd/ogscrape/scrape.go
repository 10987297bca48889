package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/ogscrape"
)

// stdinSource names records scraped from stdin.
const stdinSource = "stdin:"

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		writeError(deps.Stdout, err)
		return err
	}

	html, source, err := c.load(deps, &opts)
	if err != nil {
		writeError(deps.Stdout, err)
		return err
	}

	result, err := deps.Scraper.Scrape(html, opts)
	if err != nil {
		writeError(deps.Stdout, err)
		return err
	}

	if c.Save {
		rec := &ogscrape.ScrapeRecord{URL: source, HTML: html, Result: result}
		if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved record %s\n", rec.ID)
	}

	return writeJSON(deps.Stdout, result)
}

// load reads the document from stdin, a local file or the network and
// returns it with the source it is recorded under. A fetched page's
// transport charset becomes the charset hint unless one was given. Local
// input that is valid UTF-8 is hinted as UTF-8.
func (c *ScrapeCmd) load(deps *Dependencies, opts *ogscrape.Options) (html, source string, err error) {
	if c.Source == "" || c.Source == "-" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		hintLocalCharset(opts, b)
		return string(b), stdinSource, nil
	}

	if info, err := os.Stat(c.Source); err == nil && !info.IsDir() {
		b, err := os.ReadFile(c.Source)
		if err != nil {
			return "", "", err
		}
		abs, err := filepath.Abs(c.Source)
		if err != nil {
			return "", "", err
		}
		hintLocalCharset(opts, b)
		return string(b), (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
	}

	target, err := ogscrape.NormalizeURL(c.Source)
	if err != nil {
		return "", "", err
	}
	resp, err := deps.Fetcher.Fetch(deps.Ctx, target)
	if err != nil {
		return "", "", err
	}
	if opts.Charset == "" {
		opts.Charset = resp.Charset
	}
	return resp.HTML, resp.URL, nil
}

func hintLocalCharset(opts *ogscrape.Options, b []byte) {
	if opts.Charset == "" && utf8.Valid(b) {
		opts.Charset = "UTF-8"
	}
}
