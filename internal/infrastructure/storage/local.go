package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalBlobStore keeps resume blobs on disk under a single directory. Stored
// names are opaque and server-generated, so no path element ever derives
// from user input.
type LocalBlobStore struct {
	dir string
}

// NewLocalBlobStore creates the upload directory if needed.
func NewLocalBlobStore(dir string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalBlobStore{dir: dir}, nil
}

// Save writes content to disk, enforcing the size limit while copying. The
// partial file is removed when the copy fails or overruns the limit.
func (s *LocalBlobStore) Save(ctx context.Context, storedName string, content io.Reader, limit int64) (int64, error) {
	path, err := s.path(storedName)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create blob: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(content, limit+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		_ = os.Remove(path)
		return 0, fmt.Errorf("write blob: %w", err)
	case n > limit:
		_ = os.Remove(path)
		return 0, fmt.Errorf("blob exceeds %d bytes", limit)
	case closeErr != nil:
		_ = os.Remove(path)
		return 0, fmt.Errorf("close blob: %w", closeErr)
	}

	return n, nil
}

func (s *LocalBlobStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	path, err := s.path(storedName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (s *LocalBlobStore) path(storedName string) (string, error) {
	if storedName == "" || strings.Contains(storedName, "/") || strings.Contains(storedName, "\\") || storedName != filepath.Base(storedName) {
		return "", fmt.Errorf("invalid stored name %q", storedName)
	}
	return filepath.Join(s.dir, storedName), nil
}
