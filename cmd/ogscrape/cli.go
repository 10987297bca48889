package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/ogscrape"
	"gopkg.in/yaml.v3"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Records  ogscrape.RecordService
	Scraper  ogscrape.Scraper
	Fetcher  ogscrape.Fetcher
	Sitemaps ogscrape.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log every fetch and scrape to stderr"`
	DB        string        `name:"db" env:"OGSCRAPE_DB" help:"History database path (default ~/.ogscrape/history.db)"`
	Timeout   time.Duration `default:"10s" help:"HTTP request timeout"`
	UserAgent string        `name:"user-agent" default:"ogscrape/1.0" help:"User-Agent header for HTTP requests"`

	Scrape  ScrapeCmd  `cmd:"" help:"Extract metadata from a URL, file or stdin"`
	Batch   BatchCmd   `cmd:"" help:"Extract metadata from many URLs or a sitemap"`
	History HistoryCmd `cmd:"" help:"List saved scrapes"`
	Show    ShowCmd    `cmd:"" help:"Show a saved scrape"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved scrape"`
}

// ExtractFlags are the extraction options shared by scrape and batch.
type ExtractFlags struct {
	OnlyOG     bool   `name:"only-og" help:"Only use Open Graph tags (and native Twitter fields)"`
	CustomTags string `name:"custom-tags" type:"existingfile" help:"YAML or JSON file listing custom meta tags"`
	Charset    string `help:"Charset to report when the document declares none"`
}

// Options converts the flags into extraction options, loading custom tags
// from file when given.
func (f ExtractFlags) Options() (ogscrape.Options, error) {
	opts := ogscrape.Options{
		OnlyGetOpenGraphInfo: f.OnlyOG,
		Charset:              f.Charset,
	}
	if f.CustomTags == "" {
		return opts, nil
	}

	tags, err := loadCustomTags(f.CustomTags)
	if err != nil {
		return opts, err
	}
	opts.CustomMetaTags = tags
	return opts, nil
}

// loadCustomTags reads a list of {property, fieldName, multiple} entries.
// JSON is accepted since it is valid YAML.
func loadCustomTags(path string) ([]ogscrape.CustomMetaTag, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "parsing %s: %v", path, err)
	}
	tags, err := ogscrape.ParseCustomMetaTags(raw)
	if err != nil {
		return nil, ogscrape.Errorf(ogscrape.EINVALID, "%s: %s", ogscrape.ErrInvalidCustomMetaTags.Message, ogscrape.ErrorMessage(err))
	}
	return tags, nil
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Source string `arg:"" optional:"" help:"URL or HTML file to scrape; omit or use - for stdin"`
	Save   bool   `short:"s" help:"Save the result to history"`

	ExtractFlags `embed:""`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"URLs to scrape"`
	Sitemap     string   `help:"Scrape every page listed in this site's sitemaps"`
	Include     []string `short:"i" help:"Only scrape URLs matching this regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Requests per second per host (0 for unlimited)"`
	Burst       int      `default:"1" help:"Requests allowed at once per host before throttling"`
	MaxURLs     int      `name:"max-urls" default:"50000" help:"Maximum URLs taken from sitemaps"`
	Out         string   `short:"o" type:"path" help:"Directory to write one JSON file per page"`
	Save        bool     `short:"s" help:"Save results to history"`

	ExtractFlags `embed:""`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `arg:"" optional:"" help:"Only list scrapes of this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum records to list"`
	Offset int    `help:"Records to skip"`
	JSON   bool   `name:"json" help:"Print records as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Record ID"`
}
