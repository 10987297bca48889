package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogscrape"
)

// Ensure LoggingRecordService implements ogscrape.RecordService.
var _ ogscrape.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging of writes.
// Reads are delegated without logging.
type LoggingRecordService struct {
	next   ogscrape.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next ogscrape.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) (err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "save record", begin, err,
			"url", rec.URL,
			"id", rec.ID,
			"html_hash", rec.HTMLHash,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*ogscrape.ScrapeRecord, error) {
	return s.next.FindRecordByID(ctx, id)
}

func (s *LoggingRecordService) FindRecords(ctx context.Context, filter ogscrape.RecordFilter) ([]*ogscrape.ScrapeRecord, error) {
	return s.next.FindRecords(ctx, filter)
}

func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		logCall(ctx, s.logger, "delete record", begin, err, "id", id)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
