package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"go.uber.org/zap"
)

// Store persists a single JSON document of type T at a fixed path.
// The document is always read and written wholesale; there is no
// record-level access at this layer. Last write wins.
type Store[T any] struct {
	path   string
	logger *logger.Logger
}

// New creates a store for the document at path.
func New[T any](path string, log *logger.Logger) *Store[T] {
	return &Store[T]{path: path, logger: log}
}

// Path returns the document path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads and decodes the persisted document. A missing file yields
// the zero value of T with no error. A read or decode failure also
// yields the zero value: the caller starts from an empty document
// rather than failing, and the problem is logged.
func (s *Store[T]) Load(ctx context.Context) (T, error) {
	var doc T

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("no persisted document found, starting empty",
				zap.String("path", s.path))
			return doc, nil
		}
		s.logger.Error("failed to read persisted document, starting empty",
			zap.String("path", s.path),
			zap.Error(err))
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		s.logger.Error("failed to decode persisted document, starting empty",
			zap.String("path", s.path),
			zap.Error(err))
		return zero, nil
	}

	return doc, nil
}

// Save encodes doc and atomically replaces the persisted document.
// The write goes to a temp file in the same directory which is then
// renamed over the target, so concurrent readers of the path never see
// a partial document.
func (s *Store[T]) Save(_ context.Context, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".portal-doc-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, s.path)
}
