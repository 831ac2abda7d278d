package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Save returns the storage key together with a public reference URL for the
// stored object.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, publicURL string, sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
