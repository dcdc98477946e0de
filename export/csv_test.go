package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsenlab/ruleconv/zdd"
)

func testSources() []Source {
	return []Source{
		{ID: 2, Thesis: "2021246", Structure: &zdd.Structure{
			MagicNumber: zdd.MagicNumber,
			Arrays:      [][]uint32{{7, 2}, {}},
		}},
		{ID: 1, Thesis: "2020418", Structure: &zdd.Structure{
			MagicNumber: zdd.MagicNumber,
			Arrays:      [][]uint32{{2, 7}, {1}},
		}},
	}
}

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCompleteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCompleteCSV(&buf, testSources()))

	rows := parseCSV(t, &buf)
	require.NotEmpty(t, rows)
	assert.Equal(t, "zdd_id", rows[0][0])
	assert.Equal(t, "element_value", rows[0][8])

	// One row per element: 2+1 elements for file 1, 2+0 for file 2. The
	// empty array contributes no element rows here.
	assert.Len(t, rows, 1+5)

	// Sources are ordered by ID, so file 1 comes first despite input order.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2020418", rows[1][1])
	// Signature is sorted even when the raw array is not.
	assert.Equal(t, "[2,7]", rows[1][6])
	assert.Equal(t, "[2,7]", rows[1][5])
}

func TestWriteArraySummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArraySummaryCSV(&buf, testSources()))

	rows := parseCSV(t, &buf)
	// One row per array, including empty arrays.
	assert.Len(t, rows, 1+4)

	// File 2's raw order is preserved in array_elements but not in the
	// signature column.
	var found bool
	for _, row := range rows[1:] {
		if row[0] == "2" && row[5] == "[7,2]" {
			found = true
			assert.Equal(t, "[2,7]", row[6])
		}
	}
	assert.True(t, found)

	// Empty array reports zero min/max.
	last := rows[len(rows)-1]
	assert.Equal(t, "[]", last[5])
	assert.Equal(t, "0", last[8])
	assert.Equal(t, "0", last[9])
}

func TestWritePatternCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePatternCSV(&buf, testSources()))

	rows := parseCSV(t, &buf)
	require.Len(t, rows, 1+3) // [2,7] x2, [1], []

	// Most frequent pattern first.
	assert.Equal(t, "[2,7]", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "1,2", rows[1][2])
	assert.Equal(t, "1", rows[1][3])

	// Frequencies sum to the total array count.
	total := 0
	for _, row := range rows[1:] {
		n, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 4, total)
}

func TestSummarize(t *testing.T) {
	sum := Summarize(testSources())

	assert.Equal(t, 2, sum.Files)
	assert.Equal(t, 4, sum.Arrays)
	assert.Equal(t, 5, sum.Elements)
	assert.Equal(t, 3, sum.UniqueVariables)
	assert.Equal(t, 3, sum.UniquePatterns)
	assert.Equal(t, uint32(1), sum.MinVariable)
	assert.Equal(t, uint32(7), sum.MaxVariable)

	require.Len(t, sum.PerFile, 2)
	assert.Equal(t, 1, sum.PerFile[0].ID)

	var buf bytes.Buffer
	require.NoError(t, sum.WriteTo(&buf))
	assert.Contains(t, buf.String(), "Total arrays across all ZDDs: 4")
	assert.Contains(t, buf.String(), "ZDD 2 (Thesis 2021246)")
}

func TestThesisFallback(t *testing.T) {
	src := Source{ID: 9, Structure: &zdd.Structure{Arrays: [][]uint32{{1}}}}

	var buf bytes.Buffer
	require.NoError(t, WriteArraySummaryCSV(&buf, []Source{src}))
	assert.True(t, strings.Contains(buf.String(), "unknown_9"))
}
