package orthology

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"orth-check/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrStorageNotConfigured is returned for storage URIs when no client is available.
var ErrStorageNotConfigured = errors.New("object storage is not configured")

// Opener resolves mapping file paths to readers.
// Paths of the form "s3://bucket/key" are read from object storage,
// everything else from the local filesystem.
type Opener struct {
	client storage.Client
}

// NewOpener creates an opener. A nil client limits it to local files.
func NewOpener(client storage.Client) *Opener {
	return &Opener{client: client}
}

// Open opens a mapping file for reading.
func (o *Opener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !storage.IsURI(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open mapping file %s: %w", path, err)
		}
		return f, nil
	}

	bucket, object, ok := storage.ParseURI(path)
	if !ok {
		return nil, fmt.Errorf("invalid storage path %q: expected s3://bucket/key", path)
	}
	if o.client == nil {
		return nil, fmt.Errorf("failed to open mapping file %s: %w", path, ErrStorageNotConfigured)
	}

	obj, err := o.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file %s: %w", path, err)
	}
	return obj, nil
}
