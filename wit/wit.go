// Package wit parses WIT clause files: machine-generated logical clauses
// derived from legal theses. A file is organized in thesis sections headed by
// a "// THESIS <id>: <title>" comment, each followed by clause definitions of
// the form "clause tesis<id>_<name> = <body>;".
package wit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

var (
	thesisHeaderRe = regexp.MustCompile(`// THESIS (\d+): (.+)`)
	clauseRe       = regexp.MustCompile(`^clause (tesis(\d+)_\w+)\s*=\s*(.+);`)
)

// Clause is a single clause definition inside a thesis section.
type Clause struct {
	ID      string // e.g. "tesis2_responsabilidad"
	Line    int    // 1-indexed line of the definition
	Content string // clause body without the trailing semicolon
}

// Thesis is one parsed thesis section.
type Thesis struct {
	ID        int
	Title     string
	StartLine int // 1-indexed line of the section header
	EndLine   int // 1-indexed line of the last section line
	Clauses   []Clause
}

// LineRange renders the section span as "start-end".
func (t *Thesis) LineRange() string {
	return fmt.Sprintf("%d-%d", t.StartLine, t.EndLine)
}

// File is a parsed WIT file.
type File struct {
	theses map[int]*Thesis
	order  []int
}

// Parse reads a WIT file from r.
func Parse(r io.Reader) (*File, error) {
	f := &File{theses: make(map[int]*Thesis)}

	var current *Thesis
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := thesisHeaderRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.EndLine = lineNo - 1
			}
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: thesis id: %w", lineNo, err)
			}
			current = &Thesis{ID: id, Title: m[2], StartLine: lineNo}
			if _, dup := f.theses[id]; !dup {
				f.theses[id] = current
				f.order = append(f.order, id)
			}
			continue
		}

		if current == nil {
			continue
		}
		if m := clauseRe.FindStringSubmatch(line); m != nil {
			// Clauses carry their thesis id in the name; ignore strays that
			// ended up under the wrong section header.
			if owner, _ := strconv.Atoi(m[2]); owner == current.ID {
				current.Clauses = append(current.Clauses, Clause{
					ID:      m[1],
					Line:    lineNo,
					Content: m[3],
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		current.EndLine = lineNo
	}
	return f, nil
}

// ParseFile reads and parses the WIT file at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Thesis returns the parsed section for the given id.
func (f *File) Thesis(id int) (*Thesis, bool) {
	t, ok := f.theses[id]
	return t, ok
}

// Theses returns all sections in file order.
func (f *File) Theses() []*Thesis {
	out := make([]*Thesis, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.theses[id])
	}
	return out
}

// NumClauses returns the total clause count across all sections.
func (f *File) NumClauses() int {
	n := 0
	for _, t := range f.theses {
		n += len(t.Clauses)
	}
	return n
}
