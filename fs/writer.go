// Package fs writes scrape records to disk as JSON files.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/ogscrape"
)

// URLToPath converts a page URL to a relative file path rooted at its host.
// Example: https://example.com/blog/post → example.com/blog/post.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", ogscrape.Errorf(ogscrape.EINVALID, "URL %q has no host", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash → index.json
	if path == "" || strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index.json"), nil
	}
	return filepath.Join(u.Host, path+".json"), nil
}

type fileRecord struct {
	URL       string           `json:"url"`
	ScrapedAt string           `json:"scrapedAt"`
	Result    *ogscrape.Result `json:"result"`
}

// FormatRecord renders a record as indented JSON terminated by a newline.
func FormatRecord(rec *ogscrape.ScrapeRecord) ([]byte, error) {
	b, err := json.MarshalIndent(fileRecord{
		URL:       rec.URL,
		ScrapedAt: rec.ScrapedAt.UTC().Format(time.RFC3339),
		Result:    rec.Result,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Ensure Writer implements ogscrape.RecordWriter at compile time.
var _ ogscrape.RecordWriter = (*Writer)(nil)

// Writer writes records as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateRecord writes a record to disk. A later record for the same URL
// replaces the earlier file.
func (w *Writer) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ScrapedAt.IsZero() {
		rec.ScrapedAt = time.Now().UTC().Truncate(time.Second)
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatRecord(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}
