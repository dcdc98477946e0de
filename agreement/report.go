package agreement

import (
	"fmt"
	"io"

	"github.com/kelsenlab/ruleconv/codec"
)

// Report bundles every statistic of one analysis run.
type Report struct {
	// Kappa is nil when the evaluators share no rated clause.
	Kappa         *KappaResult
	Quality1      Quality
	Quality2      Quality
	Disagreements []Disagreement
	Patterns      []PatternCount
	Confusion     ConfusionMatrix
}

// Analyze computes the full report over two evaluators' rating sets.
func Analyze(a, b RatingSet) *Report {
	r := &Report{
		Quality1: ComputeQuality(a),
		Quality2: ComputeQuality(b),
	}

	// An empty overlap leaves Kappa nil; the report degrades gracefully.
	if kr, err := CohenKappa(a, b); err == nil {
		r.Kappa = kr
		r.Confusion = Confusion(kr.Ratings1, kr.Ratings2)
	}

	r.Disagreements = Disagreements(a, b)
	r.Patterns = DisagreementPatterns(r.Disagreements)
	return r
}

// DisagreementsJSON encodes the disagreement list with the given codec, for
// the standalone disagreements artifact.
func (r *Report) DisagreementsJSON(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r.Disagreements)
}

// WriteMarkdown renders the full analysis report.
func (r *Report) WriteMarkdown(w io.Writer) error {
	p := func(format string, args ...any) { fmt.Fprintf(w, format+"\n", args...) }

	p("# Evaluation Analysis Report")
	p("")

	p("## 1. Inter-Rater Reliability (Cohen's Kappa)")
	p("")
	if r.Kappa != nil {
		p("**Cohen's Kappa: %.4f** (%s)", r.Kappa.Kappa, InterpretKappa(r.Kappa.Kappa))
		p("")
		p("- Common rated clauses: %d", len(r.Kappa.ClauseIDs))
		p("- This measures whether both evaluators see the same issues consistently.")
	} else {
		p("Cannot compute yet - need common rated clauses from both evaluators.")
	}
	p("")

	p("## 2. WIT Model Quality")
	p("")
	p("This measures how well the WIT clauses reflect the actual theses.")
	p("")
	writeQuality(p, "Evaluator 1", r.Quality1)
	writeQuality(p, "Evaluator 2", r.Quality2)

	if r.Quality1.TotalClauses > 0 && r.Quality2.TotalClauses > 0 {
		avg := (r.Quality1.AcceptRate + r.Quality2.AcceptRate) / 2
		p("### Overall Assessment")
		p("")
		p("Average acceptance rate: %.1f%% (%s)", avg, assessModel(avg))
		p("")
	}

	p("## 3. Disagreement Analysis")
	p("")
	if len(r.Disagreements) > 0 {
		p("Total disagreements: %d", len(r.Disagreements))
		p("")
		p("| Pattern | Count |")
		p("|---------|-------|")
		for _, pc := range r.Patterns {
			p("| %s | %d |", pc.Pattern, pc.Count)
		}
	} else {
		p("No disagreements found.")
	}
	p("")

	if r.Kappa != nil {
		p("## 4. Detailed Statistical Analysis")
		p("")
		p("### Confusion Matrix (Evaluator 1 vs Evaluator 2)")
		p("```")
		fmt.Fprint(w, r.Confusion.String())
		p("```")
		p("")
		p("| Label | Precision | Recall | F1 | Support |")
		p("|-------|-----------|--------|----|---------|")
		for _, s := range r.Confusion.Stats() {
			p("| %s | %.2f | %.2f | %.2f | %d |", s.Label, s.Precision, s.Recall, s.F1, s.Support)
		}
		p("")
	}

	p("## 5. Recommendations")
	p("")
	recs := r.recommendations()
	for _, rec := range recs {
		p("- %s", rec)
	}
	return nil
}

func writeQuality(p func(string, ...any), name string, q Quality) {
	p("### %s", name)
	p("")
	if q.TotalClauses == 0 {
		p("No ratings yet.")
		p("")
		return
	}
	p("| Rating | Count | Percentage |")
	p("|--------|-------|------------|")
	p("| Accept | %d | %.1f%% |", q.AcceptCount, q.AcceptRate)
	p("| Revise | %d | %.1f%% |", q.ReviseCount, q.ReviseRate)
	p("| Reject | %d | %.1f%% |", q.RejectCount, q.RejectRate)
	p("| **Total** | **%d** | **100.0%%** |", q.TotalClauses)
	p("")
	p("**Model Error Rate: %.1f%%** (clauses needing revision/rejection)", q.ErrorRate)
	p("")
}

func assessModel(avgAccept float64) string {
	switch {
	case avgAccept >= 85:
		return "excellent model"
	case avgAccept >= 70:
		return "good model"
	case avgAccept >= 50:
		return "moderate model, significant improvements needed"
	default:
		return "poor model, major revisions required"
	}
}

func (r *Report) recommendations() []string {
	var recs []string
	if r.Kappa != nil && r.Kappa.Kappa < 0.60 {
		recs = append(recs, "Inter-rater reliability: review evaluation guidelines - evaluators need better alignment.")
	}
	if r.Quality1.TotalClauses > 0 && r.Quality1.ErrorRate > 30 {
		recs = append(recs, "Model quality (Evaluator 1): high error rate suggests WIT clauses need significant revision.")
	}
	if r.Quality2.TotalClauses > 0 && r.Quality2.ErrorRate > 30 {
		recs = append(recs, "Model quality (Evaluator 2): high error rate suggests WIT clauses need significant revision.")
	}
	if r.Kappa != nil && len(r.Disagreements) > len(r.Kappa.ClauseIDs)*3/10 {
		recs = append(recs, "Disagreements: >30% disagreement rate - consider a third evaluator for disputed clauses.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Continue with current evaluation process.")
	}
	return recs
}
