package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cutroom/roughcut/config"
)

// Storage is the export destination: an opaque sink that receives rendered
// EDL blobs under a suggested filename.
type Storage interface {
	// SaveExport stores the blob and returns its location (a local path or
	// an object URL, depending on the backend).
	SaveExport(ctx context.Context, filename string, data []byte) (string, error)

	// GetReader returns a reader for a previously saved export.
	GetReader(ctx context.Context, filename string) (io.ReadCloser, error)

	// ListExports lists the filenames of saved exports.
	ListExports(ctx context.Context) ([]string, error)
}

// New creates the storage backend selected by the configuration.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg.OutputDir)
	case "gcs":
		return NewGCSStorage(ctx, cfg.Bucket, cfg.ObjectPrefix, cfg.CredentialsFile, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
