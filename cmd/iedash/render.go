// render.go powers 'iedash render', writing the dashboard to a standalone HTML file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/iedash/internal/config"
	"github.com/example/iedash/internal/dashboard"
	"github.com/example/iedash/internal/metrics"
	"github.com/example/iedash/internal/ui"
)

func newRenderCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dashboard to a standalone HTML file",
		Example: `  # Write a timestamped report in the current directory
  iedash render

  # Write to a fixed path
  iedash render --output dist/dashboard.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := ui.StartSpinner(cmd.ErrOrStderr(), "Rendering dashboard")
			defer spinner.Stop(false)

			page, err := dashboard.RenderHTML(metrics.Generate(), time.Now())
			if err != nil {
				return err
			}
			outPath := opts.ResolveOutputPath(time.Now())
			if dir := filepath.Dir(outPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			spinner.Stop(true)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Output path for the HTML report (default iedash-report-<timestamp>.html)")
	return cmd
}
