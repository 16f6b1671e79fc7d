package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// Compile-time interface check.
var _ domain.Slot = (*FileSlot)(nil)

// FileOption configures a FileSlot.
type FileOption func(*FileSlot)

// WithExtension sets the file extension used for slot files (default ".json").
func WithExtension(ext string) FileOption {
	return func(s *FileSlot) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// FileSlot stores each key in its own file under a directory.
type FileSlot struct {
	dir string
	ext string
	log *logger.Logger
}

// NewFileSlot creates a file-backed slot store rooted at dir. The
// directory is created on the first write.
func NewFileSlot(dir string, log *logger.Logger, opts ...FileOption) *FileSlot {
	s := &FileSlot{
		dir: dir,
		ext: ".json",
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file backing key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

// Get reads the file for key. A missing file is an empty slot.
func (s *FileSlot) Get(ctx context.Context, key string) ([]byte, error) {
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("slot file %s does not exist yet", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", path, domain.ErrSlotUnavailable, err)
	}
	return data, nil
}

// Put writes data to a temporary file and renames it over the slot file,
// so readers see either the old or the new contents, never a mix.
func (s *FileSlot) Put(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w: %w", s.dir, domain.ErrSlotUnavailable, err)
	}

	path := s.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w: %w", tmp, domain.ErrSlotUnavailable, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w: %w", tmp, domain.ErrSlotUnavailable, err)
	}

	s.log.Debug("wrote slot file %s (%d bytes)", path, len(data))
	return nil
}
