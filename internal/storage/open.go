package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open builds the slot backend named kind. For "file", location is a
// directory and ext the slot file extension; for "sqlite", location is
// the directory holding recipes.db. The returned closer is never nil.
func Open(kind, location, ext string, log *logger.Logger) (domain.Slot, io.Closer, error) {
	switch kind {
	case BackendMemory:
		return NewMemorySlot(log), nopCloser{}, nil
	case BackendFile, "":
		return NewFileSlot(location, log, WithExtension(ext)), nopCloser{}, nil
	case BackendSQLite:
		if err := ensureDir(location); err != nil {
			return nil, nil, err
		}
		s, err := OpenSQLiteSlot(filepath.Join(location, "recipes.db"), log)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w: %w", dir, domain.ErrSlotUnavailable, err)
	}
	return nil
}
