package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalDisk stores objects as files below a root directory.
type LocalDisk struct {
	root string
}

// NewLocalDisk returns a LocalDisk rooted at dir.
func NewLocalDisk(dir string) *LocalDisk {
	return &LocalDisk{root: dir}
}

func (d *LocalDisk) path(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

// EnsureBucket creates the root directory.
func (d *LocalDisk) EnsureBucket(_ context.Context) error {
	return os.MkdirAll(d.root, 0o755)
}

// Put writes r to the file for key.
func (d *LocalDisk) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	path := d.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// Get opens the file for key.
func (d *LocalDisk) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return f, err
}

// Bucket returns the root directory.
func (d *LocalDisk) Bucket() string {
	return d.root
}
