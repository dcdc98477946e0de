// Package blobstore abstracts where a ZDD corpus lives. Research corpora are
// small sets of immutable files read whole, so the interface is built around
// sequential full reads rather than random access.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a flat namespace of immutable blobs.
type Store interface {
	// Open opens a blob for reading. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Put writes a blob, replacing any existing content atomically where
	// the backend allows it.
	Put(ctx context.Context, name string, data []byte) error
	// List returns the blob names with the given prefix, sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ReadAll opens and fully reads a blob.
func ReadAll(ctx context.Context, s Store, name string) ([]byte, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
