// Ruleconv is the command-line interface of the rule convergence toolkit.
//
// It converts ZDD binary corpora to text and CSV, manages the batch
// evaluation workflow and computes inter-rater agreement statistics.
//
// Usage:
//
//	ruleconv convert witness_output/
//	ruleconv export witness_output/ --out analysis/
//	ruleconv batch status
//	ruleconv skeletons --wit analysis/unified_legal_conclusions.wit
//	ruleconv analyze
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv"
)

var (
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "ruleconv",
	Short:   "Legal-rule convergence analysis toolkit",
	Long:    "ruleconv decodes ZDD binary corpora, exports text/CSV views and manages the two-evaluator clause evaluation workflow.",
	Version: version,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func logger() *ruleconv.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return ruleconv.NewTextLogger(level)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(skeletonsCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger().Error("command failed", "error", err)
		os.Exit(1)
	}
}
