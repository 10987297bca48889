package mock

import (
	"context"

	"github.com/fwojciec/ogscrape"
)

var _ ogscrape.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of ogscrape.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *ogscrape.ScrapeRecord) error
	FindRecordByIDFn func(ctx context.Context, id string) (*ogscrape.ScrapeRecord, error)
	FindRecordsFn    func(ctx context.Context, filter ogscrape.RecordFilter) ([]*ogscrape.ScrapeRecord, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*ogscrape.ScrapeRecord, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter ogscrape.RecordFilter) ([]*ogscrape.ScrapeRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

var _ ogscrape.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of ogscrape.RecordWriter.
type RecordWriter struct {
	CreateRecordFn func(ctx context.Context, rec *ogscrape.ScrapeRecord) error
}

func (w *RecordWriter) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	return w.CreateRecordFn(ctx, rec)
}
