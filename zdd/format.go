package zdd

import "errors"

const (
	// MagicNumber identifies ZDD binary files (ASCII: "ZDD0").
	MagicNumber = 0x5A444430

	// headerSize is the fixed header length: magic (4) + array count (4).
	headerSize = 8

	// elementSize is the on-disk width of a single array element.
	elementSize = 4
)

var (
	ErrInvalidMagic = errors.New("invalid magic number")
	ErrTruncated    = errors.New("truncated zdd file")
)

// Structure is the decoded content of a single ZDD binary file: the header
// magic number and the ordered sequence of integer arrays. Each array holds
// variable identifiers of one satisfying assignment; element order within an
// array is meaningful and preserved as read.
//
// A Structure is constructed once by Decode/Load and must not be mutated
// afterwards.
type Structure struct {
	MagicNumber uint32
	Arrays      [][]uint32
}

// NumArrays returns the number of arrays in the structure.
func (s *Structure) NumArrays() int { return len(s.Arrays) }

// NumElements returns the total element count across all arrays.
func (s *Structure) NumElements() int {
	n := 0
	for _, a := range s.Arrays {
		n += len(a)
	}
	return n
}
