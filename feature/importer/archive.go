package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"roster-importer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver keeps a copy of every imported roster document in object
// storage. Archiving failures never fail an import.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates an archiver writing into the given bucket. A nil
// client disables archiving.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// Store uploads the document under <year>_<month>/<filename>. The
// bucket is created on first use.
func (a *Archiver) Store(ctx context.Context, year int, month int, filename string, data []byte) error {
	if a == nil || a.client == nil {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create archive bucket: %w", err)
		}
		a.logger.Info("Created archive bucket", zap.String("bucket", a.bucket))
	}

	objectName := fmt.Sprintf("%04d_%02d/%s", year, month, filename)
	_, err = a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}

	a.logger.Info("Archived roster document",
		zap.String("bucket", a.bucket),
		zap.String("object", objectName),
	)
	return nil
}

// ErrArchiveDisabled is returned by read operations when no storage
// client is configured.
var ErrArchiveDisabled = errors.New("document archive is not configured")

// List returns the object names archived for the given month.
func (a *Archiver) List(ctx context.Context, year int, month int) ([]string, error) {
	if a == nil || a.client == nil {
		return nil, ErrArchiveDisabled
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		return nil, nil
	}

	prefix := fmt.Sprintf("%04d_%02d/", year, month)
	var names []string
	for info := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", info.Err)
		}
		names = append(names, info.Key)
	}
	return names, nil
}

// Fetch streams an archived document.
func (a *Archiver) Fetch(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if a == nil || a.client == nil {
		return nil, ErrArchiveDisabled
	}
	obj, err := a.client.GetObject(ctx, a.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archived document: %w", err)
	}
	return obj, nil
}
