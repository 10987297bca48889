package ogscrape

import (
	"context"
	"time"
)

// ScrapeRecord is a saved scrape of one URL.
type ScrapeRecord struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	HTMLHash  string    `json:"htmlHash"`
	Result    *Result   `json:"result"`
	ScrapedAt time.Time `json:"scrapedAt"`

	// HTML is the scraped document. It is hashed on save, never stored.
	HTML string `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ScrapeRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Result == nil {
		return Errorf(EINVALID, "record result required")
	}
	return nil
}

// RecordWriter persists scrape records.
type RecordWriter interface {
	CreateRecord(ctx context.Context, rec *ScrapeRecord) error
}

// RecordService represents a service for managing saved scrapes.
type RecordService interface {
	// CreateRecord saves a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, rec *ScrapeRecord) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*ScrapeRecord, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*ScrapeRecord, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
