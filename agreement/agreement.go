// Package agreement computes inter-rater reliability and model quality
// statistics over two evaluators' clause ratings.
package agreement

import (
	"sort"

	"github.com/kelsenlab/ruleconv/evaluation"
)

// ClauseRating is one evaluator's verdict on one clause, with enough thesis
// context to report disagreements.
type ClauseRating struct {
	Rating        evaluation.Rating
	Justification string
	ThesisID      int
	ThesisTitle   string
}

// RatingSet maps clause ID to an evaluator's verdict.
type RatingSet map[string]ClauseRating

// FromBatches flattens an evaluator's batch files into a RatingSet. Later
// occurrences of a clause ID win, matching a re-evaluated batch overwriting
// an earlier one.
func FromBatches(batches []*evaluation.Batch) RatingSet {
	set := make(RatingSet)
	for _, b := range batches {
		for _, te := range b.ThesisEvaluations {
			for _, c := range te.Clauses {
				set[c.ClauseID] = ClauseRating{
					Rating:        c.Rating,
					Justification: c.Justification,
					ThesisID:      te.ThesisID,
					ThesisTitle:   te.ThesisTitle,
				}
			}
		}
	}
	return set
}

// Rated returns the number of clauses carrying a non-empty rating.
func (s RatingSet) Rated() int {
	n := 0
	for _, r := range s {
		if r.Rating != "" {
			n++
		}
	}
	return n
}

// commonRated returns the clause IDs both sets have rated, sorted, with the
// two rating sequences aligned to that order. Clauses either side left
// unrated are skipped.
func commonRated(a, b RatingSet) (ids []string, ra, rb []evaluation.Rating) {
	for id, ar := range a {
		br, ok := b[id]
		if !ok || ar.Rating == "" || br.Rating == "" {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ra = make([]evaluation.Rating, len(ids))
	rb = make([]evaluation.Rating, len(ids))
	for i, id := range ids {
		ra[i] = a[id].Rating
		rb[i] = b[id].Rating
	}
	return ids, ra, rb
}
