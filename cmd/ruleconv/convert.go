package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kelsenlab/ruleconv"
	"github.com/kelsenlab/ruleconv/zdd"
)

var (
	convertOut      string
	convertSeparate bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|directory>",
	Short: "Convert ZDD binary files to readable text",
	Long:  "Convert decodes one zdd_<n>.bin file, or every such file in a directory, and writes the arrays as [a,b,c] text lines.",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: <input>.txt, or zdd_vectors.txt for a directory)")
	convertCmd.Flags().BoolVar(&convertSeparate, "separate", false, "write one .txt file per input instead of a combined document")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return convertDir(cmd.Context(), input)
	}
	return convertFile(input)
}

func convertFile(path string) error {
	s, err := zdd.Load(path)
	if err != nil {
		return err
	}

	out := convertOut
	if out == "" {
		out = filepath.Join(filepath.Dir(path), textName(filepath.Base(path)))
	}
	if err := writeText(out, func(w io.Writer) error {
		return zdd.WriteText(w, s)
	}); err != nil {
		return err
	}

	logger().Info("converted", "input", path, "output", out,
		"arrays", s.NumArrays(), "elements", s.NumElements())
	return nil
}

func convertDir(ctx context.Context, dir string) error {
	log := logger()
	c, err := ruleconv.OpenDir(ctx, dir, ruleconv.WithLogger(log))
	if err != nil {
		return err
	}

	if convertSeparate {
		outDir := convertOut
		if outDir == "" {
			outDir = dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		for _, f := range c.Files() {
			out := filepath.Join(outDir, textName(f.Name))
			s := f.Structure
			if err := writeText(out, func(w io.Writer) error {
				return zdd.WriteText(w, s)
			}); err != nil {
				return err
			}
			log.WithFile(f.Name).Info("converted", "output", out)
		}
		return nil
	}

	out := convertOut
	if out == "" {
		out = "zdd_vectors.txt"
	}
	if err := writeText(out, c.WriteText); err != nil {
		return err
	}
	log.Info("converted corpus", "files", c.Len(), "output", out)

	return c.Summary().WriteTo(os.Stdout)
}

// textName maps zdd_3.bin (optionally compressed) to zdd_3.txt.
func textName(name string) string {
	name = zdd.TrimCompressionExt(name)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".txt"
}

func writeText(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
