// Package fs abstracts the file system operations used by the evaluation
// store so tests can run against an in-memory implementation.
package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// FileSystem is the minimal surface the evaluation store needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// Local implements FileSystem on the local disk.
type Local struct{}

func (Local) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFileAtomic writes to a temp file in the target directory and renames,
// so concurrent readers never observe a partial file.
func (Local) WriteFileAtomic(name string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, filepath.Base(name)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(perm)

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, name)
}

func (Local) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (Local) ReadDir(name string) ([]os.DirEntry, error)   { return os.ReadDir(name) }
func (Local) Stat(name string) (os.FileInfo, error)        { return os.Stat(name) }

// Default is the local file system.
var Default FileSystem = Local{}
