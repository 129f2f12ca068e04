// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/chart"
	"github.com/fknfilewalker/tinyldt/internal/cmdctx"
	"github.com/fknfilewalker/tinyldt/internal/eulumdat"
	"github.com/fknfilewalker/tinyldt/internal/prompts"
)

type plotOptions struct {
	output string
}

func newPlotCmd() *cobra.Command {
	opts := &plotOptions{}

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render the intensity distribution as an HTML chart",
		Long: `Render the stored luminous intensity distribution as a standalone HTML
line chart, one curve per stored C-plane.`,
		Example: `  # Write luminaire.html next to the input
  tinyldt plot luminaire.ldt

  # Choose the output path
  tinyldt plot luminaire.ldt -o distribution.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			path, err := resolveFile(args)
			if err != nil {
				return err
			}
			return runPlot(path, opts, ctx.Config.PlotDir)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default: <file>.html)")

	return cmd
}

func runPlot(path string, opts *plotOptions, plotDir string) error {
	rec, warn, err := eulumdat.ParseFile(path)
	if err != nil {
		return err
	}
	if warn != nil {
		prompts.PrintWarning(warn.String())
	}

	out := opts.output
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".html"
		if plotDir != "" {
			out = filepath.Join(plotDir, base)
		} else {
			out = filepath.Join(filepath.Dir(path), base)
		}
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	f, err := os.Create(out) //nolint:gosec // path is from flags/config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := chart.Render(rec, f); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{{Label: "Wrote", Value: out}}, "")
	return nil
}
