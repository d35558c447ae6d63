package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const uploadTimeout = time.Minute

// GCSStorage implements Storage on a Google Cloud Storage bucket.
type GCSStorage struct {
	client        *storage.Client
	bucket        string
	objectPrefix  string
	publicBaseURL string
}

// NewGCSStorage creates a GCSStorage instance. With an empty credentials
// file, application default credentials are used.
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile, publicBaseURL string) (*GCSStorage, error) {
	var client *storage.Client
	var err error

	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:        client,
		bucket:        bucketName,
		objectPrefix:  objectPrefix,
		publicBaseURL: publicBaseURL,
	}, nil
}

func (s *GCSStorage) objectName(filename string) string {
	if s.objectPrefix != "" {
		return path.Join(s.objectPrefix, filename)
	}
	return filename
}

// SaveExport uploads the blob and returns its public URL when configured,
// or the object name otherwise.
func (s *GCSStorage) SaveExport(ctx context.Context, filename string, data []byte) (string, error) {
	objectName := s.objectName(filename)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = "text/plain; charset=utf-8"

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to copy export to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.publicBaseURL, "/"), objectName), nil
	}
	return objectName, nil
}

// GetReader returns a reader for a previously uploaded export.
func (s *GCSStorage) GetReader(ctx context.Context, filename string) (io.ReadCloser, error) {
	return s.client.Bucket(s.bucket).Object(s.objectName(filename)).NewReader(ctx)
}

// ListExports lists uploaded exports under the configured prefix.
func (s *GCSStorage) ListExports(ctx context.Context) ([]string, error) {
	var prefix string
	if s.objectPrefix != "" {
		prefix = s.objectPrefix + "/"
	}

	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var results []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing objects: %w", err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		results = append(results, path.Base(attrs.Name))
	}
	return results, nil
}

// Close closes the GCS client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
