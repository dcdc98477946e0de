package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv/evaluation"
)

var evaluationsDir string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage the batch evaluation workflow",
}

var batchStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-evaluator progress for every batch",
	Args:  cobra.NoArgs,
	RunE:  runBatchStatus,
}

var batchNextCmd = &cobra.Command{
	Use:   "next <evaluator>",
	Short: "Show the next pending batch for an evaluator",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchNext,
}

var batchTemplateCmd = &cobra.Command{
	Use:   "template <number> <evaluator>",
	Short: "Write an empty evaluation template for a batch",
	Args:  cobra.ExactArgs(2),
	RunE:  runBatchTemplate,
}

var batchMergeCmd = &cobra.Command{
	Use:   "merge <evaluator>",
	Short: "Merge an evaluator's batch files into <evaluator>_complete.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchMerge,
}

func init() {
	batchCmd.PersistentFlags().StringVar(&evaluationsDir, "evaluations", "evaluations", "evaluations directory")
	batchCmd.AddCommand(batchStatusCmd)
	batchCmd.AddCommand(batchNextCmd)
	batchCmd.AddCommand(batchTemplateCmd)
	batchCmd.AddCommand(batchMergeCmd)
}

func store() *evaluation.Store {
	return evaluation.NewStore(evaluationsDir)
}

func runBatchStatus(cmd *cobra.Command, args []string) error {
	s := store()
	idx, err := s.LoadIndex()
	if err != nil {
		return err
	}

	// Collect evaluator names across all entries so the table has a stable
	// column set even when a batch has no status yet.
	seen := map[string]bool{}
	var evaluators []string
	for _, b := range idx.Batches {
		for name := range b.Status {
			if !seen[name] {
				seen[name] = true
				evaluators = append(evaluators, name)
			}
		}
	}

	fmt.Printf("Batches: %d, theses: %d\n\n", idx.TotalBatches, idx.TotalTheses)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "BATCH\tTHESES")
	for _, name := range evaluators {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)
	for _, b := range idx.Batches {
		fmt.Fprintf(w, "%d\t%d", b.BatchNumber, len(b.ThesisIDs))
		for _, name := range evaluators {
			status := b.Status[name]
			if status == "" {
				status = evaluation.StatusPending
			}
			fmt.Fprintf(w, "\t%s", status)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, name := range evaluators {
		fmt.Printf("%s: %d/%d completed\n", name, idx.Completed(name), idx.TotalBatches)
	}
	return nil
}

func runBatchNext(cmd *cobra.Command, args []string) error {
	s := store()
	number, err := s.NextPending(args[0])
	if err != nil {
		return err
	}
	idx, err := s.LoadIndex()
	if err != nil {
		return err
	}
	info, _ := idx.Batch(number)
	fmt.Printf("Next batch for %s: %d (theses %v)\n", args[0], number, info.ThesisIDs)
	return nil
}

func runBatchTemplate(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid batch number %q", args[0])
	}
	evaluator := args[1]

	s := store()
	b, err := s.Template(number, evaluator)
	if err != nil {
		return err
	}
	if err := s.SaveSkeleton(evaluator, b); err != nil {
		return err
	}
	logger().Info("template written",
		"batch", number, "evaluator", evaluator, "theses", len(b.ThesisIDs))
	return nil
}

func runBatchMerge(cmd *cobra.Command, args []string) error {
	merged, err := store().MergeAll(args[0])
	if err != nil {
		return err
	}
	logger().Info("merged",
		"evaluator", args[0],
		"theses", merged.Metadata.TotalThesesEvaluated,
		"output", args[0]+"_complete.json")
	return nil
}
