// export.go powers 'iedash export', dumping the dataset as JSON, YAML, or CSV.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/iedash/internal/config"
	"github.com/example/iedash/internal/csvutil"
	"github.com/example/iedash/internal/metrics"
)

func newExportCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard dataset (json, yaml, or csv)",
		Example: `  # Print JSON to stdout
  iedash export

  # Write the long-form CSV used by spreadsheet tooling
  iedash export --format csv --output metrics.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.OutputPath != "" {
				if dir := filepath.Dir(opts.OutputPath); dir != "." && dir != "" {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create output directory: %w", err)
					}
				}
				f, err := os.Create(opts.OutputPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return writeDataset(out, opts.Format)
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "Export format: json, yaml, or csv")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Output path (default stdout)")
	return cmd
}

func writeDataset(w io.Writer, format string) error {
	d := metrics.Generate()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml: %w", err)
		}
	case "csv":
		if err := csvutil.WriteDataset(w, d); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q (expected json, yaml, or csv)", format)
	}
	return nil
}
