package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/ogscrape"
)

// Ensure FileStore implements ogscrape.RecordWriter at compile time.
var _ ogscrape.RecordWriter = (*FileStore)(nil)

// FileStore writes a batch of records with atomic update semantics.
// Records are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	s := &FileStore{baseDir: baseDir, name: name}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateRecord writes rec into the temporary directory.
func (s *FileStore) CreateRecord(ctx context.Context, rec *ogscrape.ScrapeRecord) error {
	return s.writer.CreateRecord(ctx, rec)
}

// Commit replaces the output directory with everything saved so far.
// Committing an empty batch leaves an empty output directory.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
