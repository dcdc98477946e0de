// Package export renders decoded ZDD corpora as CSV tables and plain-text
// summaries for downstream statistical analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kelsenlab/ruleconv/pattern"
	"github.com/kelsenlab/ruleconv/zdd"
)

// Source is one decoded corpus file together with its numeric ID and the
// thesis number it belongs to. Thesis may be empty when no mapping is known;
// output then falls back to "unknown_<id>".
type Source struct {
	ID        int
	Thesis    string
	Structure *zdd.Structure
}

func (s Source) thesisLabel() string {
	if s.Thesis != "" {
		return s.Thesis
	}
	return fmt.Sprintf("unknown_%d", s.ID)
}

// sortedByID returns the sources ordered by ascending ID without modifying
// the input.
func sortedByID(sources []Source) []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WriteCompleteCSV writes one row per array element across all sources.
func WriteCompleteCSV(w io.Writer, sources []Source) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"zdd_id", "thesis_number", "magic_number", "array_index",
		"array_length", "array_elements", "array_signature_sorted",
		"element_position", "element_value",
	}); err != nil {
		return err
	}

	for _, src := range sortedByID(sources) {
		for idx, array := range src.Structure.Arrays {
			elements := zdd.FormatArray(array)
			signature := pattern.NewSignature(array).Key()
			for pos, v := range array {
				if err := cw.Write([]string{
					strconv.Itoa(src.ID),
					src.thesisLabel(),
					strconv.FormatUint(uint64(src.Structure.MagicNumber), 10),
					strconv.Itoa(idx),
					strconv.Itoa(len(array)),
					elements,
					signature,
					strconv.Itoa(pos),
					strconv.FormatUint(uint64(v), 10),
				}); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteArraySummaryCSV writes one row per array across all sources.
func WriteArraySummaryCSV(w io.Writer, sources []Source) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"zdd_id", "thesis_number", "magic_number", "array_index",
		"array_length", "array_elements", "array_signature_sorted",
		"unique_elements", "min_element", "max_element",
	}); err != nil {
		return err
	}

	for _, src := range sortedByID(sources) {
		for idx, array := range src.Structure.Arrays {
			sig := pattern.NewSignature(array)
			minEl, maxEl := uint32(0), uint32(0)
			if len(sig) > 0 {
				minEl, maxEl = sig[0], sig[len(sig)-1]
			}
			if err := cw.Write([]string{
				strconv.Itoa(src.ID),
				src.thesisLabel(),
				strconv.FormatUint(uint64(src.Structure.MagicNumber), 10),
				strconv.Itoa(idx),
				strconv.Itoa(len(array)),
				zdd.FormatArray(array),
				sig.Key(),
				strconv.Itoa(sig.UniqueElements()),
				strconv.FormatUint(uint64(minEl), 10),
				strconv.FormatUint(uint64(maxEl), 10),
			}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePatternCSV writes the cross-file signature frequency table, ordered
// by descending frequency.
func WritePatternCSV(w io.Writer, sources []Source) error {
	a := pattern.NewAnalyzer()
	for _, src := range sources {
		a.Add(src.ID, src.Structure)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"array_signature", "frequency_across_zdds", "zdd_occurrences",
		"first_seen_zdd", "array_length", "unique_elements",
	}); err != nil {
		return err
	}

	for _, e := range a.Entries() {
		ids := make([]string, len(e.FileIDs))
		for i, id := range e.FileIDs {
			ids[i] = strconv.Itoa(id)
		}
		if err := cw.Write([]string{
			e.Signature.Key(),
			strconv.Itoa(e.Frequency),
			strings.Join(ids, ","),
			strconv.Itoa(e.FirstSeen),
			strconv.Itoa(len(e.Signature)),
			strconv.Itoa(e.Signature.UniqueElements()),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
