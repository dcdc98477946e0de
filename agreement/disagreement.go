package agreement

import (
	"fmt"
	"sort"

	"github.com/kelsenlab/ruleconv/evaluation"
)

// Disagreement records one clause the two evaluators rated differently.
// Justifications are truncated for the report; full text stays in the batch
// files.
type Disagreement struct {
	ClauseID       string            `json:"clause_id"`
	ThesisID       int               `json:"thesis_id"`
	ThesisTitle    string            `json:"thesis_title"`
	Evaluator1     evaluation.Rating `json:"evaluator_1"`
	Evaluator2     evaluation.Rating `json:"evaluator_2"`
	Justification1 string            `json:"justification_1"`
	Justification2 string            `json:"justification_2"`
}

const justificationPreview = 100

// Disagreements lists the commonly-rated clauses with differing verdicts,
// ordered by clause ID.
func Disagreements(a, b RatingSet) []Disagreement {
	ids, ra, rb := commonRated(a, b)

	var out []Disagreement
	for i, id := range ids {
		if ra[i] == rb[i] {
			continue
		}
		out = append(out, Disagreement{
			ClauseID:       id,
			ThesisID:       a[id].ThesisID,
			ThesisTitle:    a[id].ThesisTitle,
			Evaluator1:     ra[i],
			Evaluator2:     rb[i],
			Justification1: truncate(a[id].Justification, justificationPreview),
			Justification2: truncate(b[id].Justification, justificationPreview),
		})
	}
	return out
}

// PatternCount is one "rating1 → rating2" disagreement direction with its
// occurrence count.
type PatternCount struct {
	Pattern string
	Count   int
}

// DisagreementPatterns tallies disagreement directions, most frequent first
// with the pattern string as tiebreaker.
func DisagreementPatterns(ds []Disagreement) []PatternCount {
	counts := make(map[string]int)
	for _, d := range ds {
		counts[fmt.Sprintf("%s → %s", d.Evaluator1, d.Evaluator2)]++
	}

	out := make([]PatternCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, PatternCount{Pattern: p, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
