// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/eulumdat"
	"github.com/fknfilewalker/tinyldt/internal/prompts"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Show a summary of a photometric file",
		Long: `Show the identity, geometry and photometric data of an EULUMDAT file,
including peak and mean intensity derived from the stored distribution.`,
		Example: `  # Describe a file
  tinyldt describe luminaire.ldt

  # Pick a file from the current directory
  tinyldt describe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFile(args)
			if err != nil {
				return err
			}
			return runDescribe(path)
		},
	}
	return cmd
}

func runDescribe(path string) error {
	rec, warn, err := eulumdat.ParseFile(path)
	if err != nil {
		return err
	}
	if warn != nil {
		prompts.PrintWarning(warn.String())
	}

	fields := []prompts.ResultField{
		{Label: "Manufacturer", Value: rec.Manufacturer},
		{Label: "Luminaire", Value: rec.LuminaireName},
		{Label: "Number", Value: rec.LuminaireNumber},
		{Label: "Report", Value: rec.ReportNumber},
		{Label: "Measured", Value: rec.DateUser},
		{Label: "Type", Value: rec.Type.String()},
		{Label: "Symmetry", Value: rec.Symmetry.String()},
		{Label: "C-planes", Value: fmt.Sprintf("%d stored of %d", rec.StoredPlanes(), rec.PlaneCount)},
		{Label: "Intensities per plane", Value: strconv.Itoa(rec.SampleCount)},
		{Label: "Dimensions", Value: fmt.Sprintf("%d × %d × %d mm", rec.Length, rec.Width, rec.Height)},
		{Label: "Luminous area", Value: fmt.Sprintf("%d × %d mm", rec.AreaLength, rec.AreaWidth)},
		{Label: "Downward flux fraction", Value: fmt.Sprintf("%g %%", rec.DownwardFluxFraction)},
		{Label: "Light output ratio", Value: fmt.Sprintf("%g %%", rec.LightOutputRatio)},
	}

	sum := eulumdat.Summarize(rec)
	fields = append(fields,
		prompts.ResultField{Label: "Peak intensity", Value: fmt.Sprintf("%.1f cd/1000 lm at C%g / G%g", sum.PeakIntensity, sum.PeakC, sum.PeakG)},
		prompts.ResultField{Label: "Mean intensity", Value: fmt.Sprintf("%.1f cd/1000 lm", sum.MeanIntensity)},
		prompts.ResultField{Label: "Lamp sets", Value: strconv.Itoa(len(rec.Lamps))},
	)
	if sum.TotalFlux > 0 {
		fields = append(fields, prompts.ResultField{Label: "Total lamp flux", Value: fmt.Sprintf("%d lm", sum.TotalFlux)})
	}
	if sum.Absolute {
		fields = append(fields, prompts.ResultField{Label: "Photometry", Value: "absolute"})
	}

	prompts.PrintResult(fields, "")
	return nil
}
