package zdd

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encode writes the structure to w in the ZDD binary layout.
//
// The header magic is always MagicNumber regardless of s.MagicNumber, so a
// freshly constructed Structure round-trips without initializing the field.
func Encode(w io.Writer, s *Structure) error {
	var header [headerSize]byte
	byteOrder.PutUint32(header[0:4], MagicNumber)
	byteOrder.PutUint32(header[4:8], uint32(len(s.Arrays)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	for _, array := range s.Arrays {
		if err := binary.Write(w, byteOrder, uint32(len(array))); err != nil {
			return err
		}
		if len(array) == 0 {
			continue
		}
		buf := make([]byte, len(array)*elementSize)
		for j, v := range array {
			byteOrder.PutUint32(buf[j*elementSize:], v)
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBytes encodes the structure into a fresh byte slice.
func EncodeBytes(s *Structure) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + 4*len(s.Arrays) + elementSize*s.NumElements())
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes the structure to path, writing to a temp file in the same
// directory and renaming so readers never observe a partial file. Paths
// ending in .zst or .lz4 are compressed accordingly.
func Save(path string, s *Structure) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriter(tmp)
	w, flushFn, err := wrapWriter(buf, path)
	if err != nil {
		return err
	}
	if err := Encode(w, s); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := flushFn(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
