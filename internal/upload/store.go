// Package upload stores product images on local disk and exposes them as
// server-relative paths under the static mount.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// MountPrefix is the URL path prefix the upload directory is served under.
const MountPrefix = "/uploads"

// Store writes uploaded files into a directory on disk.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates the upload directory if absent and returns a Store
// writing into it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Save writes the file to disk under a name derived by prefixing the
// original filename with the current Unix timestamp, and returns the public
// path the file is reachable under. Two uploads of the same filename within
// the same second overwrite each other; the timestamp scheme is kept for
// compatibility with already-stored image paths.
func (s *Store) Save(file io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d_%s", s.now().Unix(), filepath.Base(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return MountPrefix + "/" + name, nil
}
