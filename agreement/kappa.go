package agreement

import (
	"errors"

	"github.com/kelsenlab/ruleconv/evaluation"
)

// ErrNoCommonRatings is returned when the two evaluators share no clause
// that both have rated.
var ErrNoCommonRatings = errors.New("no common rated clauses")

// KappaResult is Cohen's Kappa together with the aligned rating sequences it
// was computed from.
type KappaResult struct {
	Kappa     float64
	ClauseIDs []string
	Ratings1  []evaluation.Rating
	Ratings2  []evaluation.Rating
}

// CohenKappa computes Cohen's Kappa over the clauses both evaluators have
// rated.
func CohenKappa(a, b RatingSet) (*KappaResult, error) {
	ids, ra, rb := commonRated(a, b)
	if len(ids) == 0 {
		return nil, ErrNoCommonRatings
	}
	return &KappaResult{
		Kappa:     kappa(ra, rb),
		ClauseIDs: ids,
		Ratings1:  ra,
		Ratings2:  rb,
	}, nil
}

// kappa computes (po - pe) / (1 - pe) over two aligned rating sequences.
// When chance agreement pe is 1 (both raters used a single category), the
// statistic is undefined; we report 1 for perfect observed agreement and 0
// otherwise.
func kappa(ra, rb []evaluation.Rating) float64 {
	n := len(ra)
	agree := 0
	countA := make(map[evaluation.Rating]int)
	countB := make(map[evaluation.Rating]int)
	for i := range ra {
		if ra[i] == rb[i] {
			agree++
		}
		countA[ra[i]]++
		countB[rb[i]]++
	}

	po := float64(agree) / float64(n)
	pe := 0.0
	for label, ca := range countA {
		pe += (float64(ca) / float64(n)) * (float64(countB[label]) / float64(n))
	}

	if 1-pe == 0 {
		if po == 1 {
			return 1
		}
		return 0
	}
	return (po - pe) / (1 - pe)
}

// InterpretKappa maps a kappa value onto the Landis & Koch agreement bands.
func InterpretKappa(k float64) string {
	switch {
	case k < 0:
		return "Poor (worse than chance)"
	case k < 0.20:
		return "Slight"
	case k < 0.40:
		return "Fair"
	case k < 0.60:
		return "Moderate"
	case k < 0.80:
		return "Substantial"
	default:
		return "Almost Perfect"
	}
}
