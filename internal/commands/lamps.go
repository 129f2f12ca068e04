// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/eulumdat"
	"github.com/fknfilewalker/tinyldt/internal/prompts"
)

func newLampsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lamps [file]",
		Short: "List the standard lamp sets of a photometric file",
		Example: `  # List lamp sets
  tinyldt lamps luminaire.ldt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFile(args)
			if err != nil {
				return err
			}
			return runLamps(path)
		},
	}
	return cmd
}

func runLamps(path string) error {
	rec, warn, err := eulumdat.ParseFile(path)
	if err != nil {
		return err
	}
	if warn != nil {
		prompts.PrintWarning(warn.String())
	}

	if len(rec.Lamps) == 0 {
		fmt.Println("No lamp sets defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SET\tLAMPS\tTYPE\tFLUX (lm)\tCOLOR (K)\tCRI GROUP\tWATTAGE\tPHOTOMETRY")

	for i, l := range rec.Lamps {
		count := l.Count
		photometry := "relative"
		if l.Absolute() {
			count = -count
			photometry = "absolute"
		}
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%d\t%g\t%s\n",
			i+1, count, l.Type, l.Flux, l.ColorTemperature, l.ColorRenderingGroup, l.Wattage, photometry)
	}

	return w.Flush()
}
