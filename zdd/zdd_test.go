package zdd

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Structure {
	return &Structure{
		MagicNumber: MagicNumber,
		Arrays: [][]uint32{
			{2, 7, 8},
			{},
			{1},
			{4294967295, 2147483648, 17}, // full uint32 range
			{9, 3, 3, 1},                 // order and duplicates preserved
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	want := sample()

	data, err := EncodeBytes(want)
	require.NoError(t, err)

	got, err := DecodeBytes(data)
	require.NoError(t, err)

	assert.Equal(t, uint32(MagicNumber), got.MagicNumber)
	assert.Equal(t, want.Arrays, got.Arrays)
	assert.Equal(t, len(want.Arrays), got.NumArrays())
}

func TestDecodeEmptyStructure(t *testing.T) {
	data, err := EncodeBytes(&Structure{})
	require.NoError(t, err)

	got, err := DecodeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumArrays())
	assert.Equal(t, 0, got.NumElements())
}

func TestDecodeInvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(0xDEADBEEF)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(0)))

	_, err := DecodeBytes(buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestDecodeTruncated(t *testing.T) {
	full, err := EncodeBytes(sample())
	require.NoError(t, err)

	// Cut the stream at every possible boundary; all prefixes shorter than
	// the full encoding must fail with ErrTruncated.
	for cut := 0; cut < len(full); cut++ {
		_, err := DecodeBytes(full[:cut])
		assert.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", cut)
	}
}

func TestDecodeCountMatchesHeader(t *testing.T) {
	s := sample()
	data, err := EncodeBytes(s)
	require.NoError(t, err)

	declared := binary.LittleEndian.Uint32(data[4:8])
	got, err := DecodeBytes(data)
	require.NoError(t, err)
	assert.Equal(t, int(declared), got.NumArrays())
}

func TestDecodeLengthExceedsRemaining(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(MagicNumber)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1000))) // declared length
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(42)))   // only one element present

	_, err := DecodeBytes(buf.Bytes())
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSaveLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"plain", "zdd_1.bin"},
		{"zstd", "zdd_2.bin.zst"},
		{"lz4", "zdd_3.bin.lz4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			want := sample()

			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want.Arrays, got.Arrays)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

func TestFormatParseArray(t *testing.T) {
	tests := []struct {
		array []uint32
		text  string
	}{
		{[]uint32{1, 2, 3}, "[1,2,3]"},
		{[]uint32{}, "[]"},
		{[]uint32{42}, "[42]"},
		{[]uint32{4294967295}, "[4294967295]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, FormatArray(tt.array))

		got, err := ParseArray(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.array, got)
	}
}

func TestParseArrayMalformed(t *testing.T) {
	for _, line := range []string{"", "1,2,3", "[1,2", "[a,b]", "[1;2]", "[-1]"} {
		_, err := ParseArray(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestTextRoundTrip(t *testing.T) {
	want := sample()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, want))

	got, err := ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, want.Arrays, got)
}

func TestWriteTextMulti(t *testing.T) {
	s1 := &Structure{MagicNumber: MagicNumber, Arrays: [][]uint32{{1, 2}, {}}}
	s2 := &Structure{MagicNumber: MagicNumber, Arrays: [][]uint32{{7}}}

	var buf bytes.Buffer
	err := WriteTextMulti(&buf, []string{"zdd_1.bin", "zdd_2.bin"}, []*Structure{s1, s2})
	require.NoError(t, err)

	text := buf.String()
	assert.Contains(t, text, "# ZDD 1: zdd_1.bin")
	assert.Contains(t, text, "# ZDD 2: zdd_2.bin")
	assert.Contains(t, text, "# Arrays: 2")
	assert.True(t, strings.Contains(text, "# End of ZDD 2"))

	// Comment separators are transparent to the parser.
	arrays, err := ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, [][]uint32{{1, 2}, {}, {7}}, arrays)
}

func TestWriteTextMultiLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTextMulti(&buf, []string{"a"}, nil)
	assert.Error(t, err)
}

func TestTrimCompressionExt(t *testing.T) {
	assert.Equal(t, "zdd_4.bin", TrimCompressionExt("zdd_4.bin.zst"))
	assert.Equal(t, "zdd_4.bin", TrimCompressionExt("zdd_4.bin.lz4"))
	assert.Equal(t, "zdd_4.bin", TrimCompressionExt("zdd_4.bin"))
}
