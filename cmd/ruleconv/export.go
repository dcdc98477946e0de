package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv"
	"github.com/kelsenlab/ruleconv/codec"
)

var (
	exportOut       string
	exportThesisMap string
)

var exportCmd = &cobra.Command{
	Use:   "export <directory>",
	Short: "Export a ZDD corpus to CSV for statistical analysis",
	Long: "Export decodes every zdd_<n>.bin file in the directory and writes three CSV views:\n" +
		"all_arrays_complete.csv (one row per element), arrays_summary.csv (one row per file)\n" +
		"and pattern_analysis.csv (one row per distinct array signature).",
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "analysis", "output directory for the CSV files")
	exportCmd.Flags().StringVar(&exportThesisMap, "thesis-map", "", "JSON file mapping file IDs to thesis numbers, e.g. {\"1\": \"65\"}")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger()

	opts := []ruleconv.Option{ruleconv.WithLogger(log)}
	if exportThesisMap != "" {
		m, err := loadThesisMap(exportThesisMap)
		if err != nil {
			return err
		}
		opts = append(opts, ruleconv.WithThesisMap(m))
	}

	c, err := ruleconv.OpenDir(cmd.Context(), args[0], opts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return err
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"all_arrays_complete.csv", c.WriteCompleteCSV},
		{"arrays_summary.csv", c.WriteArraySummaryCSV},
		{"pattern_analysis.csv", c.WritePatternCSV},
	}
	for _, f := range files {
		path := filepath.Join(exportOut, f.name)
		if err := writeText(path, f.write); err != nil {
			return err
		}
		log.Info("exported", "output", path)
	}

	return c.Summary().WriteTo(os.Stdout)
}

func loadThesisMap(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[int]string
	if err := codec.Default.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
