package ruleconv

import (
	"errors"

	"github.com/kelsenlab/ruleconv/blobstore"
)

var (
	// ErrNotFound is returned when a corpus blob does not exist.
	ErrNotFound = blobstore.ErrNotFound

	// ErrNoFiles is returned when a store holds no ZDD corpus files.
	ErrNoFiles = errors.New("no zdd files found")
)

// ErrDecodeFile wraps a zdd decode failure with the corpus file it came
// from. The underlying error is available via errors.Unwrap.
type ErrDecodeFile struct {
	Name  string
	cause error
}

func (e *ErrDecodeFile) Error() string {
	return "decode corpus file " + e.Name + ": " + e.cause.Error()
}

func (e *ErrDecodeFile) Unwrap() error { return e.cause }
