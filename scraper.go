package ogscrape

// Scraper extracts metadata from decoded HTML.
type Scraper interface {
	// Scrape parses html and extracts its metadata.
	// Returns ErrMissingHTML for empty input and ErrInvalidCustomMetaTags
	// for malformed custom tags; no extraction happens in either case.
	// A document without any metadata is not an error.
	Scrape(html string, opts Options) (*Result, error)
}
