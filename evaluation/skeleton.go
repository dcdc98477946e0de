package evaluation

import (
	"fmt"

	"github.com/kelsenlab/ruleconv/wit"
)

// Evaluator pairs the directory key an evaluator's files live under with the
// display name written into the JSON artifacts.
type Evaluator struct {
	Key  string // e.g. "evaluator_1"
	Name string // e.g. "Claude Sonnet 4.5"
}

// SkeletonResult reports what GenerateSkeletons produced.
type SkeletonResult struct {
	Files   int
	Clauses int // across all evaluators
}

// GenerateSkeletons writes a pre-filled batch file for every batch in the
// index, for every evaluator: thesis titles, WIT line ranges and clause
// lists come from the parsed WIT file, with rating and justification left
// empty for the evaluator. A thesis missing from the WIT file yields a
// recognizable fallback entry instead of failing the run.
func (s *Store) GenerateSkeletons(witFile *wit.File, evaluators []Evaluator) (SkeletonResult, error) {
	idx, err := s.LoadIndex()
	if err != nil {
		return SkeletonResult{}, err
	}

	var res SkeletonResult
	for _, ev := range evaluators {
		for _, info := range idx.Batches {
			b := &Batch{
				BatchNumber:    info.BatchNumber,
				Evaluator:      ev.Name,
				EvaluationDate: s.now().Format("2006-01-02"),
				ThesisIDs:      info.ThesisIDs,
			}
			for _, id := range info.ThesisIDs {
				te := skeletonThesis(witFile, id)
				res.Clauses += len(te.Clauses)
				b.ThesisEvaluations = append(b.ThesisEvaluations, te)
			}
			if err := s.SaveSkeleton(ev.Key, b); err != nil {
				return res, err
			}
			res.Files++
		}
	}
	return res, nil
}

func skeletonThesis(witFile *wit.File, id int) ThesisEvaluation {
	te := ThesisEvaluation{
		ThesisID:   id,
		SourceText: fmt.Sprintf("texts/tesis%d.txt", id),
		Clauses:    []ClauseEvaluation{},
	}

	t, ok := witFile.Thesis(id)
	if !ok {
		te.ThesisTitle = fmt.Sprintf("Thesis %d (not found in WIT)", id)
		te.WITLines = "unknown"
		return te
	}

	te.ThesisTitle = t.Title
	te.WITLines = t.LineRange()
	for _, c := range t.Clauses {
		te.Clauses = append(te.Clauses, ClauseEvaluation{
			ClauseID:      c.ID,
			ClauseLine:    c.Line,
			ClauseContent: c.Content,
		})
	}
	return te
}
