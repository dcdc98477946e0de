package zdd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatArray renders an array in the canonical text form "[v1,v2,...]".
// An empty array renders as "[]".
func FormatArray(array []uint32) string {
	if len(array) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.Grow(2 + len(array)*4)
	sb.WriteByte('[')
	for i, v := range array {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseArray parses the canonical text form back into an array.
func ParseArray(line string) ([]uint32, error) {
	s := strings.TrimSpace(line)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("malformed array %q", line)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return []uint32{}, nil
	}
	parts := strings.Split(inner, ",")
	array := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed array %q: %w", line, err)
		}
		array[i] = uint32(v)
	}
	return array, nil
}

// WriteText writes one array per line in canonical text form.
func WriteText(w io.Writer, s *Structure) error {
	bw := bufio.NewWriter(w)
	for _, array := range s.Arrays {
		if _, err := bw.WriteString(FormatArray(array)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTextMulti writes several named structures into a single text document,
// separating them with comment blocks carrying the source name, magic number
// and array count.
func WriteTextMulti(w io.Writer, names []string, structures []*Structure) error {
	if len(names) != len(structures) {
		return fmt.Errorf("names/structures length mismatch: %d != %d", len(names), len(structures))
	}
	bw := bufio.NewWriter(w)
	for i, s := range structures {
		fmt.Fprintf(bw, "# ZDD %d: %s\n", i+1, names[i])
		fmt.Fprintf(bw, "# Magic: %d\n", s.MagicNumber)
		fmt.Fprintf(bw, "# Arrays: %d\n", len(s.Arrays))
		fmt.Fprintln(bw, "#")
		for _, array := range s.Arrays {
			fmt.Fprintln(bw, FormatArray(array))
		}
		fmt.Fprintln(bw, "#")
		fmt.Fprintf(bw, "# End of ZDD %d\n", i+1)
		fmt.Fprintln(bw, "#")
	}
	return bw.Flush()
}

// ParseText reads arrays from the text form, one per line. Blank lines and
// "#" comment lines (including WriteTextMulti separators) are skipped, so
// both single- and multi-structure documents parse into one flat sequence.
func ParseText(r io.Reader) ([][]uint32, error) {
	var arrays [][]uint32
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		array, err := ParseArray(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		arrays = append(arrays, array)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return arrays, nil
}
