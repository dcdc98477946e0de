package zdd

import (
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is selected by file extension so a corpus can mix plain and
// compressed files: "zdd_3.bin", "zdd_4.bin.zst", "zdd_5.bin.lz4".
const (
	extZstd = ".zst"
	extLZ4  = ".lz4"
)

// wrapReader returns a reader that transparently decompresses based on the
// path extension, plus a cleanup func releasing any decoder resources.
func wrapReader(r io.Reader, path string) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(path, extZstd):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case strings.HasSuffix(path, extLZ4):
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// wrapWriter returns a writer that transparently compresses based on the
// path extension, plus a flush func that must run before the underlying
// writer is flushed or closed.
func wrapWriter(w io.Writer, path string) (io.Writer, func() error, error) {
	switch {
	case strings.HasSuffix(path, extZstd):
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case strings.HasSuffix(path, extLZ4):
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	default:
		return w, func() error { return nil }, nil
	}
}

// TrimCompressionExt strips a trailing compression extension, if any, so
// "zdd_4.bin.zst" reports the logical name "zdd_4.bin".
func TrimCompressionExt(name string) string {
	name = strings.TrimSuffix(name, extZstd)
	return strings.TrimSuffix(name, extLZ4)
}
