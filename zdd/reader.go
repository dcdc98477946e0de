// Package zdd reads and writes the ZDD binary corpus format.
//
// A ZDD file serializes a collection of integer arrays, each array one
// satisfying assignment of a logical clause set. The layout is fixed:
//
//	magic   uint32  little-endian, "ZDD0"
//	count   uint32  number of arrays
//	count × (length uint32, length × element uint32)
//
// Decoding is strict and deterministic: the same bytes always produce the
// same Structure, and any short read fails with ErrTruncated.
package zdd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var byteOrder = binary.LittleEndian

// Decode reads a single ZDD structure from r.
//
// It fails with ErrInvalidMagic if the stream does not start with the ZDD
// magic number, and with ErrTruncated if the stream ends before the
// header-declared number of arrays (or a declared array length) has been
// read in full.
func Decode(r io.Reader) (*Structure, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}

	magic := byteOrder.Uint32(header[0:4])
	if magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, magic)
	}
	count := byteOrder.Uint32(header[4:8])

	arrays := make([][]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: array %d length: %w", ErrTruncated, i, eofErr(err))
		}
		length := byteOrder.Uint32(lenBuf[:])

		array := make([]uint32, length)
		if length > 0 {
			buf := make([]byte, int(length)*elementSize)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: array %d (%d elements): %w", ErrTruncated, i, length, eofErr(err))
			}
			for j := range array {
				array[j] = byteOrder.Uint32(buf[j*elementSize:])
			}
		}
		arrays = append(arrays, array)
	}

	return &Structure{MagicNumber: magic, Arrays: arrays}, nil
}

// DecodeBytes decodes a ZDD structure from an in-memory buffer.
func DecodeBytes(data []byte) (*Structure, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeNamed decodes from r, applying transparent decompression selected
// by the compression extension of name (.zst, .lz4).
func DecodeNamed(name string, r io.Reader) (*Structure, error) {
	dr, closeFn, err := wrapReader(r, name)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	s, err := Decode(dr)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return s, nil
}

// Load reads and decodes the ZDD file at path. Files ending in .zst or .lz4
// are decompressed transparently.
func Load(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return DecodeNamed(path, f)
}

// io.ReadFull returns bare io.EOF when zero bytes were read; mid-record that
// still means truncation.
func eofErr(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
