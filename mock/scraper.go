package mock

import "github.com/fwojciec/ogscrape"

var _ ogscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of ogscrape.Scraper.
type Scraper struct {
	ScrapeFn func(html string, opts ogscrape.Options) (*ogscrape.Result, error)
}

func (s *Scraper) Scrape(html string, opts ogscrape.Options) (*ogscrape.Result, error) {
	return s.ScrapeFn(html, opts)
}

var _ ogscrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of ogscrape.Parser.
type Parser struct {
	ParseFn func(html string) (ogscrape.Document, error)
}

func (p *Parser) Parse(html string) (ogscrape.Document, error) {
	return p.ParseFn(html)
}
