package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ogscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ogscrape.RecordService = (*RecordService)(nil)

// RecordService implements ogscrape.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashHTML returns the xxHash of html as 16 hex digits.
func hashHTML(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

const recordColumns = "id, url, html_hash, result, scraped_at"

// CreateRecord saves a new record, assigning its ID, HTML hash and
// timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.ScrapedAt = time.Now().UTC().Truncate(time.Second)
	if rec.HTML != "" {
		rec.HTMLHash = hashHTML(rec.HTML)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, html_hash, result, scraped_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.HTMLHash, string(result), formatTime(rec.ScrapedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*ogscrape.ScrapeRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ogscrape.Errorf(ogscrape.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter ogscrape.RecordFilter) ([]*ogscrape.ScrapeRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []*ogscrape.ScrapeRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ogscrape.Errorf(ogscrape.ENOTFOUND, "record not found")
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*ogscrape.ScrapeRecord, error) {
	var rec ogscrape.ScrapeRecord
	var result, scrapedAt string

	if err := row.Scan(&rec.ID, &rec.URL, &rec.HTMLHash, &result, &scrapedAt); err != nil {
		return nil, err
	}

	rec.Result = &ogscrape.Result{}
	if err := json.Unmarshal([]byte(result), rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result of record %s: %w", rec.ID, err)
	}

	var err error
	if rec.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CountRecords returns the number of saved records, optionally for one URL.
func (s *RecordService) CountRecords(ctx context.Context, url string) (int, error) {
	query := "SELECT COUNT(*) FROM records"
	var args []any
	if url != "" {
		query += " WHERE url = ?"
		args = append(args, url)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
