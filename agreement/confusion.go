package agreement

import (
	"fmt"
	"strings"

	"github.com/kelsenlab/ruleconv/evaluation"
)

// ConfusionMatrix is the 3×3 matrix over the fixed label order accept,
// revise, reject. Rows index evaluator 1's rating, columns evaluator 2's.
type ConfusionMatrix struct {
	Counts [3][3]int
	Total  int
}

func labelIndex(r evaluation.Rating) int {
	for i, label := range evaluation.Ratings {
		if r == label {
			return i
		}
	}
	return -1
}

// Confusion builds the matrix from two aligned rating sequences. Unknown
// labels are ignored.
func Confusion(ra, rb []evaluation.Rating) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range ra {
		r, c := labelIndex(ra[i]), labelIndex(rb[i])
		if r < 0 || c < 0 {
			continue
		}
		cm.Counts[r][c]++
		cm.Total++
	}
	return cm
}

// LabelStats is precision/recall/F1 for one label, treating evaluator 1 as
// reference.
type LabelStats struct {
	Label     evaluation.Rating
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Stats returns per-label statistics in label order.
func (cm ConfusionMatrix) Stats() []LabelStats {
	out := make([]LabelStats, len(evaluation.Ratings))
	for i, label := range evaluation.Ratings {
		tp := cm.Counts[i][i]
		rowSum, colSum := 0, 0
		for j := range evaluation.Ratings {
			rowSum += cm.Counts[i][j]
			colSum += cm.Counts[j][i]
		}
		s := LabelStats{Label: label, Support: rowSum}
		if colSum > 0 {
			s.Precision = float64(tp) / float64(colSum)
		}
		if rowSum > 0 {
			s.Recall = float64(tp) / float64(rowSum)
		}
		if s.Precision+s.Recall > 0 {
			s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
		}
		out[i] = s
	}
	return out
}

// Accuracy is the share of diagonal entries.
func (cm ConfusionMatrix) Accuracy() float64 {
	if cm.Total == 0 {
		return 0
	}
	agree := 0
	for i := range evaluation.Ratings {
		agree += cm.Counts[i][i]
	}
	return float64(agree) / float64(cm.Total)
}

// String renders the matrix as the fixed-width table used in reports.
func (cm ConfusionMatrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-12s", "")
	for _, label := range evaluation.Ratings {
		fmt.Fprintf(&sb, " %10s", label)
	}
	sb.WriteByte('\n')
	for i, label := range evaluation.Ratings {
		fmt.Fprintf(&sb, "%-12s", label)
		for j := range evaluation.Ratings {
			fmt.Fprintf(&sb, " %10d", cm.Counts[i][j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
