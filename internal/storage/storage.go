package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalog/internal/config"
)

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Bucket() string
}

// Storage wraps an ObjectStorage backend under a key prefix.
type Storage struct {
	backend ObjectStorage
	prefix  string
}

// NewStorage constructs a Storage wrapper for the provided backend. Keys
// are stored as prefix/key when prefix is not empty.
func NewStorage(backend ObjectStorage, prefix string) *Storage {
	return &Storage{backend: backend, prefix: prefix}
}

// New builds the backend selected by cfg.Driver and makes sure its bucket exists.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	var (
		backend ObjectStorage
		err     error
	)
	switch cfg.Driver {
	case "local", "":
		backend = NewLocalDisk(cfg.UploadDir)
	case "minio":
		backend, err = NewMinioClient(cfg.Minio)
	case "gcs":
		backend, err = NewGCSClient(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s storage: %w", cfg.Driver, err)
	}
	if err := backend.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", backend.Bucket(), err)
	}
	return backend, nil
}

func (s *Storage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// EnsureBucket ensures the backend's bucket exists.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// Put uploads an object under the wrapper's prefix.
func (s *Storage) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	return s.backend.Put(ctx, s.key(name), r, size, contentType)
}

// Get opens a reader for an object under the wrapper's prefix.
func (s *Storage) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.backend.Get(ctx, s.key(name))
}

// Bucket returns the configured bucket name.
func (s *Storage) Bucket() string {
	return s.backend.Bucket()
}
