// Package pattern aggregates assignment arrays across a ZDD corpus into a
// signature-frequency table. Two arrays share a pattern when their sorted
// element tuples are equal, regardless of source file or element order.
package pattern

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/kelsenlab/ruleconv/zdd"
)

// Signature is the canonical form of an array: its elements sorted ascending.
// The zero-length signature (an empty array) is valid.
type Signature []uint32

// NewSignature returns the canonical signature of an array. The input is not
// modified.
func NewSignature(array []uint32) Signature {
	sig := make(Signature, len(array))
	copy(sig, array)
	sort.Slice(sig, func(i, j int) bool { return sig[i] < sig[j] })
	return sig
}

// Key returns the stable text form "[a,b,c]" used as a map key and in CSV
// output.
func (s Signature) Key() string { return zdd.FormatArray(s) }

// UniqueElements returns the number of distinct elements in the signature.
func (s Signature) UniqueElements() int {
	n := 0
	for i := range s {
		if i == 0 || s[i] != s[i-1] {
			n++
		}
	}
	return n
}

// Entry is one row of the pattern-frequency table.
type Entry struct {
	Signature Signature
	// Frequency counts every occurrence, including repeats within one file.
	Frequency int
	// FileIDs lists the distinct source file IDs, ascending.
	FileIDs []int
	// FirstSeen is the smallest contributing file ID.
	FirstSeen int
}

// Analyzer accumulates arrays from named source files.
type Analyzer struct {
	entries     map[string]*Entry
	totalArrays int
	universe    *roaring.Bitmap
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		entries:  make(map[string]*Entry),
		universe: roaring.New(),
	}
}

// Add records every array of the structure under the given file ID.
func (a *Analyzer) Add(fileID int, s *zdd.Structure) {
	for _, array := range s.Arrays {
		a.AddArray(fileID, array)
	}
}

// AddArray records a single array under the given file ID.
func (a *Analyzer) AddArray(fileID int, array []uint32) {
	sig := NewSignature(array)
	key := sig.Key()

	e, ok := a.entries[key]
	if !ok {
		e = &Entry{Signature: sig, FirstSeen: fileID}
		a.entries[key] = e
	}
	e.Frequency++
	if fileID < e.FirstSeen {
		e.FirstSeen = fileID
	}
	if !containsInt(e.FileIDs, fileID) {
		e.FileIDs = insertSorted(e.FileIDs, fileID)
	}

	a.universe.AddMany(array)
	a.totalArrays++
}

// TotalArrays returns the number of arrays added so far. The sum of all
// entry frequencies always equals this value.
func (a *Analyzer) TotalArrays() int { return a.totalArrays }

// Universe returns the distinct variable identifiers seen across all arrays,
// ascending.
func (a *Analyzer) Universe() []uint32 { return a.universe.ToArray() }

// UniverseCardinality returns the number of distinct variable identifiers.
func (a *Analyzer) UniverseCardinality() int { return int(a.universe.GetCardinality()) }

// Entries returns the frequency table ordered by descending frequency, with
// the signature key as tiebreaker so output is deterministic.
func (a *Analyzer) Entries() []*Entry {
	out := make([]*Entry, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Signature.Key() < out[j].Signature.Key()
	})
	return out
}

// NumPatterns returns the number of distinct signatures.
func (a *Analyzer) NumPatterns() int { return len(a.entries) }

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
