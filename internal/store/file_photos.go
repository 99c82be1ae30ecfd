package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
)

// photoFileStorage is the local-filesystem implementation of
// [PhotoFileStorage]. Paths handed out and accepted are relative to dir.
type photoFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewPhotoFileStorage creates dir if needed and returns a storage rooted
// at it.
func NewPhotoFileStorage(dir string, logger *logger.Logger) (PhotoFileStorage, error) {
	if dir == "" {
		return nil, errors.New("photo directory is not configured")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating photo file storage")
	return &photoFileStorage{dir: dir, logger: logger}, nil
}

func (p *photoFileStorage) Save(ctx context.Context, name string, r io.Reader) (string, int64, error) {
	rel, full, err := p.resolve(name)
	if err != nil {
		return "", 0, err
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoFileStorage.Save").Str("path", rel).Msg("failed to create photo file")
		return "", 0, fmt.Errorf("error creating photo file: %w", err)
	}

	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(full)
		logger.FromContext(ctx).Err(err).Str("func", "*photoFileStorage.Save").Str("path", rel).Msg("failed to write photo file")
		return "", 0, fmt.Errorf("error writing photo file: %w", err)
	}

	return rel, n, nil
}

func (p *photoFileStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	_, full, err := p.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening photo file: %w", err)
	}
	return f, nil
}

func (p *photoFileStorage) Remove(ctx context.Context, path string) error {
	_, full, err := p.resolve(path)
	if err != nil {
		return err
	}

	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoFileStorage.Remove").Str("path", path).Msg("failed to remove photo file")
		return fmt.Errorf("error removing photo file: %w", err)
	}
	return nil
}

// Writable probes the directory with a temporary file.
func (p *photoFileStorage) Writable(ctx context.Context) bool {
	f, err := os.CreateTemp(p.dir, ".probe-*")
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*photoFileStorage.Writable").Msg("photo directory is not writable")
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// resolve turns a storage-relative name into a path inside dir, refusing
// anything that escapes it.
func (p *photoFileStorage) resolve(name string) (string, string, error) {
	rel := filepath.Clean(filepath.FromSlash(name))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("invalid photo path %q", name)
	}
	return filepath.ToSlash(rel), filepath.Join(p.dir, rel), nil
}
