package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsenlab/ruleconv/zdd"
)

func TestSignatureCanonical(t *testing.T) {
	assert.Equal(t, "[1,2,7]", NewSignature([]uint32{7, 1, 2}).Key())
	assert.Equal(t, "[]", NewSignature(nil).Key())
	assert.Equal(t, "[3,3,9]", NewSignature([]uint32{9, 3, 3}).Key())
}

func TestSignatureUniqueElements(t *testing.T) {
	assert.Equal(t, 2, NewSignature([]uint32{3, 9, 3}).UniqueElements())
	assert.Equal(t, 0, NewSignature(nil).UniqueElements())
	assert.Equal(t, 3, NewSignature([]uint32{1, 2, 3}).UniqueElements())
}

func TestAnalyzerFrequencies(t *testing.T) {
	a := NewAnalyzer()
	a.Add(1, &zdd.Structure{Arrays: [][]uint32{{2, 7}, {7, 2}, {1}}})
	a.Add(2, &zdd.Structure{Arrays: [][]uint32{{2, 7}, {}}})
	a.Add(3, &zdd.Structure{Arrays: [][]uint32{{1}}})

	// Frequencies must sum to the total array count.
	total := 0
	for _, e := range a.Entries() {
		total += e.Frequency
	}
	assert.Equal(t, a.TotalArrays(), total)
	assert.Equal(t, 6, total)

	entries := a.Entries()
	require.Len(t, entries, 3)

	// Descending frequency, key tiebreak.
	top := entries[0]
	assert.Equal(t, "[2,7]", top.Signature.Key())
	assert.Equal(t, 3, top.Frequency)
	assert.Equal(t, []int{1, 2}, top.FileIDs)
	assert.Equal(t, 1, top.FirstSeen)

	assert.Equal(t, "[1]", entries[1].Signature.Key())
	assert.Equal(t, []int{1, 3}, entries[1].FileIDs)

	// Empty arrays keep their own pattern, they are not dropped.
	assert.Equal(t, "[]", entries[2].Signature.Key())
	assert.Equal(t, 1, entries[2].Frequency)
}

func TestAnalyzerUniverse(t *testing.T) {
	a := NewAnalyzer()
	a.AddArray(1, []uint32{2, 7, 8})
	a.AddArray(2, []uint32{1, 7})

	assert.Equal(t, []uint32{1, 2, 7, 8}, a.Universe())
	assert.Equal(t, 4, a.UniverseCardinality())
	assert.Equal(t, 2, a.NumPatterns())
}

func TestPositiveClause(t *testing.T) {
	assert.Equal(t, "(2=T ∧ 7=T ∧ others=F)", PositiveClause(NewSignature([]uint32{7, 2})))
	assert.Equal(t, "(all_variables=F)", PositiveClause(nil))
}

func TestFullClause(t *testing.T) {
	universe := []uint32{1, 2, 7}
	got := FullClause(NewSignature([]uint32{2}), universe)
	assert.Equal(t, "(1=F ∧ 2=T ∧ 7=F)", got)
}

func TestDNF(t *testing.T) {
	sigs := []Signature{NewSignature([]uint32{2}), NewSignature([]uint32{1, 7})}
	got := DNF(sigs, PositiveClause)
	assert.Equal(t, "(2=T ∧ others=F) ∨\n(1=T ∧ 7=T ∧ others=F)", got)
}
