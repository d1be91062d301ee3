package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"trailfit_backend/internal/config"
)

var (
	ErrInvalidKey = errors.New("invalid storage key")
	ErrKeyExists  = errors.New("storage key already exists")
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores the stream under key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes the object stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Location returns the server-resolved path recorded for key
	Location(key string) string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg.BasePath)
	case "s3":
		return NewMinioStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
