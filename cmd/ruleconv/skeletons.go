package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv/evaluation"
	"github.com/kelsenlab/ruleconv/wit"
)

var (
	skeletonsWIT        string
	skeletonsDir        string
	skeletonsEvaluators []string
)

var skeletonsCmd = &cobra.Command{
	Use:   "skeletons",
	Short: "Generate pre-filled evaluation files from a WIT file",
	Long: "Skeletons parses the WIT file, then writes a batch file per batch and\n" +
		"evaluator with thesis titles, line ranges and clause lists filled in and\n" +
		"ratings left empty.",
	Args: cobra.NoArgs,
	RunE: runSkeletons,
}

func init() {
	skeletonsCmd.Flags().StringVar(&skeletonsWIT, "wit", "", "WIT file with THESIS markers and clause definitions (required)")
	skeletonsCmd.Flags().StringVar(&skeletonsDir, "evaluations", "evaluations", "evaluations directory")
	skeletonsCmd.Flags().StringArrayVar(&skeletonsEvaluators, "evaluator", nil,
		"evaluator as key=display-name, repeatable (default: evaluator_1, evaluator_2)")
	skeletonsCmd.MarkFlagRequired("wit")
}

func runSkeletons(cmd *cobra.Command, args []string) error {
	evaluators, err := parseEvaluators(skeletonsEvaluators)
	if err != nil {
		return err
	}

	witFile, err := wit.ParseFile(skeletonsWIT)
	if err != nil {
		return err
	}
	log := logger()
	log.Info("parsed WIT file",
		"path", skeletonsWIT,
		"theses", len(witFile.Theses()),
		"clauses", witFile.NumClauses())

	s := evaluation.NewStore(skeletonsDir)
	res, err := s.GenerateSkeletons(witFile, evaluators)
	if err != nil {
		return err
	}
	log.Info("skeletons generated", "files", res.Files, "clauses", res.Clauses)
	return nil
}

func parseEvaluators(specs []string) ([]evaluation.Evaluator, error) {
	if len(specs) == 0 {
		return []evaluation.Evaluator{
			{Key: "evaluator_1", Name: "evaluator_1"},
			{Key: "evaluator_2", Name: "evaluator_2"},
		}, nil
	}
	out := make([]evaluation.Evaluator, 0, len(specs))
	for _, spec := range specs {
		key, name, ok := strings.Cut(spec, "=")
		if !ok || key == "" || name == "" {
			return nil, fmt.Errorf("invalid --evaluator %q, want key=display-name", spec)
		}
		out = append(out, evaluation.Evaluator{Key: key, Name: name})
	}
	return out, nil
}
