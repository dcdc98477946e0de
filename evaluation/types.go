// Package evaluation manages the two-evaluator batch evaluation workflow:
// the batch index, per-evaluator batch files, skeleton templates and merged
// results. All artifacts are JSON files under a single evaluations directory
// and are shared with non-Go tooling, so field names are fixed.
package evaluation

// Rating is an evaluator's verdict on a single clause.
type Rating string

const (
	RatingAccept Rating = "accept"
	RatingRevise Rating = "revise"
	RatingReject Rating = "reject"
)

// Ratings is the fixed label order used by agreement statistics.
var Ratings = []Rating{RatingAccept, RatingRevise, RatingReject}

// Valid reports whether r is one of the three known ratings.
func (r Rating) Valid() bool {
	return r == RatingAccept || r == RatingRevise || r == RatingReject
}

// Status of a batch for one evaluator.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Index is the batch_index.json bookkeeping file.
type Index struct {
	TotalBatches int          `json:"total_batches"`
	TotalTheses  int          `json:"total_theses"`
	Batches      []*BatchInfo `json:"batches"`
}

// BatchInfo is one index entry.
type BatchInfo struct {
	BatchNumber int               `json:"batch_number"`
	ThesisIDs   []int             `json:"thesis_ids"`
	Status      map[string]Status `json:"status"` // evaluator name -> status
}

// Batch returns the entry for the given batch number.
func (idx *Index) Batch(number int) (*BatchInfo, bool) {
	for _, b := range idx.Batches {
		if b.BatchNumber == number {
			return b, true
		}
	}
	return nil, false
}

// Completed counts the batches an evaluator has finished.
func (idx *Index) Completed(evaluator string) int {
	n := 0
	for _, b := range idx.Batches {
		if b.Status[evaluator] == StatusCompleted {
			n++
		}
	}
	return n
}

// Batch is a single per-evaluator evaluation file.
type Batch struct {
	BatchNumber       int                `json:"batch_number"`
	Evaluator         string             `json:"evaluator"`
	EvaluationDate    string             `json:"evaluation_date"` // YYYY-MM-DD
	ThesisIDs         []int              `json:"thesis_ids"`
	ThesisEvaluations []ThesisEvaluation `json:"thesis_evaluations"`
}

// ThesisEvaluation groups the clause verdicts of one thesis.
type ThesisEvaluation struct {
	ThesisID    int                `json:"thesis_id"`
	ThesisTitle string             `json:"thesis_title"`
	SourceText  string             `json:"source_text"`
	WITLines    string             `json:"wit_lines"`
	Clauses     []ClauseEvaluation `json:"clauses"`
}

// ClauseEvaluation is one clause with its verdict. Rating and Justification
// are empty in skeletons and filled in by the evaluator.
type ClauseEvaluation struct {
	ClauseID      string `json:"clause_id"`
	ClauseLine    int    `json:"clause_line"`
	ClauseContent string `json:"clause_content"`
	Rating        Rating `json:"rating"`
	Justification string `json:"justification"`
}

// Merged is the <evaluator>_complete.json artifact.
type Merged struct {
	Metadata          MergeMetadata      `json:"evaluation_metadata"`
	ThesisEvaluations []ThesisEvaluation `json:"thesis_evaluations"`
}

// MergeMetadata describes how a merged file was produced.
type MergeMetadata struct {
	Evaluator            string `json:"evaluator"`
	EvaluationDate       string `json:"evaluation_date"`
	TotalThesesEvaluated int    `json:"total_theses_evaluated"`
	Source               string `json:"source"`
}
