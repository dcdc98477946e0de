package export

import (
	"fmt"
	"io"

	"github.com/kelsenlab/ruleconv/pattern"
)

// Summary aggregates corpus-level statistics.
type Summary struct {
	Files           int
	Arrays          int
	Elements        int
	UniqueVariables int
	UniquePatterns  int
	MinVariable     uint32
	MaxVariable     uint32
	PerFile         []FileSummary
}

// FileSummary is the per-file breakdown line.
type FileSummary struct {
	ID       int
	Thesis   string
	Arrays   int
	Elements int
}

// Summarize computes corpus statistics over the given sources.
func Summarize(sources []Source) Summary {
	a := pattern.NewAnalyzer()
	sum := Summary{Files: len(sources)}

	for _, src := range sortedByID(sources) {
		a.Add(src.ID, src.Structure)
		sum.PerFile = append(sum.PerFile, FileSummary{
			ID:       src.ID,
			Thesis:   src.thesisLabel(),
			Arrays:   src.Structure.NumArrays(),
			Elements: src.Structure.NumElements(),
		})
		sum.Arrays += src.Structure.NumArrays()
		sum.Elements += src.Structure.NumElements()
	}

	sum.UniquePatterns = a.NumPatterns()
	sum.UniqueVariables = a.UniverseCardinality()
	if universe := a.Universe(); len(universe) > 0 {
		sum.MinVariable = universe[0]
		sum.MaxVariable = universe[len(universe)-1]
	}
	return sum
}

// WriteTo renders the summary as the human-readable report printed after an
// export run.
func (s Summary) WriteTo(w io.Writer) error {
	p := func(format string, args ...any) { fmt.Fprintf(w, format+"\n", args...) }

	p("Total ZDDs analyzed: %d", s.Files)
	p("Total arrays across all ZDDs: %d", s.Arrays)
	p("Total elements across all arrays: %d", s.Elements)
	p("Unique variables across all ZDDs: %d", s.UniqueVariables)
	p("Unique array patterns: %d", s.UniquePatterns)
	if s.Files > 0 {
		p("Average arrays per ZDD: %.1f", float64(s.Arrays)/float64(s.Files))
	}
	if s.Arrays > 0 {
		p("Average elements per array: %.1f", float64(s.Elements)/float64(s.Arrays))
	}
	if s.UniqueVariables > 0 {
		p("Variable ID range: %d - %d", s.MinVariable, s.MaxVariable)
	}

	if len(s.PerFile) > 0 {
		p("")
		p("Per-ZDD Breakdown:")
		for _, f := range s.PerFile {
			p("  ZDD %d (Thesis %s): %d arrays, %d elements", f.ID, f.Thesis, f.Arrays, f.Elements)
		}
	}
	return nil
}
