package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv/agreement"
	"github.com/kelsenlab/ruleconv/codec"
	"github.com/kelsenlab/ruleconv/evaluation"
)

var (
	analyzeDir        string
	analyzeEvaluator1 string
	analyzeEvaluator2 string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute inter-rater agreement statistics",
	Long: "Analyze loads both evaluators' batch files, computes Cohen's Kappa,\n" +
		"per-evaluator quality metrics, the confusion matrix and the disagreement\n" +
		"list, and writes ANALYSIS_REPORT.md plus disagreements_report.json.",
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDir, "evaluations", "evaluations", "evaluations directory")
	analyzeCmd.Flags().StringVar(&analyzeEvaluator1, "evaluator-1", "evaluator_1", "first evaluator's directory key")
	analyzeCmd.Flags().StringVar(&analyzeEvaluator2, "evaluator-2", "evaluator_2", "second evaluator's directory key")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger()
	s := evaluation.NewStore(analyzeDir)

	sets := make([]agreement.RatingSet, 2)
	for i, key := range []string{analyzeEvaluator1, analyzeEvaluator2} {
		batches, err := s.LoadEvaluatorBatches(key)
		if err != nil {
			return fmt.Errorf("load batches for %s: %w", key, err)
		}
		sets[i] = agreement.FromBatches(batches)
		log.WithEvaluator(key).Info("loaded ratings",
			"batches", len(batches), "rated", sets[i].Rated())
	}

	report := agreement.Analyze(sets[0], sets[1])

	reportPath := filepath.Join(analyzeDir, "ANALYSIS_REPORT.md")
	if err := writeText(reportPath, func(w io.Writer) error {
		return report.WriteMarkdown(w)
	}); err != nil {
		return err
	}

	data, err := report.DisagreementsJSON(codec.Default)
	if err != nil {
		return err
	}
	disagreementsPath := filepath.Join(analyzeDir, "disagreements_report.json")
	if err := os.WriteFile(disagreementsPath, append(data, '\n'), 0o644); err != nil {
		return err
	}

	if report.Kappa != nil {
		fmt.Printf("Cohen's Kappa: %.4f (%s) over %d common clauses\n",
			report.Kappa.Kappa,
			agreement.InterpretKappa(report.Kappa.Kappa),
			len(report.Kappa.ClauseIDs))
	} else {
		fmt.Println("No common rated clauses; kappa not computed.")
	}
	fmt.Printf("Disagreements: %d\n", len(report.Disagreements))
	fmt.Printf("Wrote %s and %s\n", reportPath, disagreementsPath)
	return nil
}
