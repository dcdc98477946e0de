package agreement

import "github.com/kelsenlab/ruleconv/evaluation"

// Quality summarizes one evaluator's rating distribution. Rates are
// percentages of the rated total.
type Quality struct {
	TotalClauses int
	AcceptCount  int
	ReviseCount  int
	RejectCount  int
	AcceptRate   float64
	ReviseRate   float64
	RejectRate   float64
	// ErrorRate is the share of clauses needing revision or rejection.
	ErrorRate float64
}

// ComputeQuality tallies the non-empty ratings of a set. Returns a zero
// Quality when nothing has been rated yet.
func ComputeQuality(set RatingSet) Quality {
	var q Quality
	for _, r := range set {
		switch r.Rating {
		case evaluation.RatingAccept:
			q.AcceptCount++
		case evaluation.RatingRevise:
			q.ReviseCount++
		case evaluation.RatingReject:
			q.RejectCount++
		default:
			continue
		}
		q.TotalClauses++
	}
	if q.TotalClauses == 0 {
		return q
	}

	total := float64(q.TotalClauses)
	q.AcceptRate = float64(q.AcceptCount) / total * 100
	q.ReviseRate = float64(q.ReviseCount) / total * 100
	q.RejectRate = float64(q.RejectCount) / total * 100
	q.ErrorRate = float64(q.ReviseCount+q.RejectCount) / total * 100
	return q
}
