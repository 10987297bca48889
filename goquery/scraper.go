package goquery

import "github.com/fwojciec/ogscrape"

// Ensure Scraper implements ogscrape.Scraper at compile time.
var _ ogscrape.Scraper = (*Scraper)(nil)

// Scraper extracts metadata from HTML parsed with goquery.
type Scraper struct{}

// NewScraper creates a new Scraper.
func NewScraper() *Scraper {
	return &Scraper{}
}

// Scrape validates the input, parses html and runs the extraction engine.
// Configuration errors are returned before the HTML is parsed.
func (s *Scraper) Scrape(html string, opts ogscrape.Options) (*ogscrape.Result, error) {
	if html == "" {
		return nil, ogscrape.ErrMissingHTML
	}
	if err := ogscrape.ValidateCustomMetaTags(opts.CustomMetaTags); err != nil {
		return nil, err
	}

	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}

	result, err := ogscrape.Extract(doc, opts)
	if err != nil {
		return nil, err
	}
	result.Success = true
	return result, nil
}
