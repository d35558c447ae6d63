package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on a local output directory.
type LocalStorage struct {
	outputDir string
}

// NewLocalStorage creates a LocalStorage rooted at outputDir.
func NewLocalStorage(outputDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &LocalStorage{outputDir: outputDir}, nil
}

// SaveExport writes the blob into the output directory and returns its path.
func (s *LocalStorage) SaveExport(_ context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", filename, err)
	}
	return path, nil
}

// GetReader opens a previously saved export.
func (s *LocalStorage) GetReader(_ context.Context, filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.outputDir, filename))
}

// ListExports lists saved EDL files in the output directory.
func (s *LocalStorage) ListExports(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var results []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".edl") {
			continue
		}
		results = append(results, entry.Name())
	}
	return results, nil
}
