// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package commands

import (
	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/cmdctx"
	"github.com/fknfilewalker/tinyldt/internal/eulumdat"
	"github.com/fknfilewalker/tinyldt/internal/prompts"
)

type fmtOptions struct {
	output    string
	precision int
}

func newFmtCmd() *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a photometric file with normalized number formatting",
		Long: `Decode a file and write it back in the canonical line order with a
uniform numeric precision. Unreadable numeric lines are reported and come
out as zero.`,
		Example: `  # Rewrite in place with shortest round-trip numbers
  tinyldt fmt luminaire.ldt

  # Write a copy with 7 significant digits
  tinyldt fmt luminaire.ldt -o normalized.ldt --precision 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				opts.precision = ctx.Config.Precision
			}
			path, err := resolveFile(args)
			if err != nil {
				return err
			}
			return runFmt(path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default: rewrite the input in place)")
	cmd.Flags().IntVar(&opts.precision, "precision", 0, "Significant digits for floating-point fields (0 = shortest round-trip)")

	return cmd
}

func runFmt(path string, opts *fmtOptions) error {
	rec, warn, err := eulumdat.ParseFile(path)
	if err != nil {
		return err
	}
	if warn != nil {
		prompts.PrintWarning(warn.String())
	}

	out := opts.output
	if out == "" {
		out = path
	}

	wr := eulumdat.Writer{Precision: opts.precision}
	if err := wr.WriteFile(rec, out); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{{Label: "Wrote", Value: out}}, "")
	return nil
}
