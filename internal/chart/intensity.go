// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package chart renders luminous intensity distributions as standalone
// HTML charts.
package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fknfilewalker/tinyldt/internal/eulumdat"
)

// maxSeries caps the number of C-plane curves on one chart so dense road
// lighting files stay readable.
const maxSeries = 12

// IntensityCurves builds a line chart of luminous intensity over the G
// angle, one series per stored C-plane.
func IntensityCurves(rec *eulumdat.Record) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Luminous intensity distribution",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Luminous intensity distribution",
			Subtitle: fmt.Sprintf("%s — %s", rec.Manufacturer, rec.LuminaireName),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "G (°)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cd/1000 lm"}),
	)

	axis := make([]string, len(rec.AnglesG))
	for i, g := range rec.AnglesG {
		axis[i] = strconv.FormatFloat(g, 'f', -1, 64)
	}
	line.SetXAxis(axis)

	first, _, err := rec.Symmetry.PlaneRange(rec.PlaneCount)
	if err != nil {
		first = 1
	}

	planes := rec.StoredPlanes()
	stride := 1
	if planes > maxSeries {
		stride = (planes + maxSeries - 1) / maxSeries
	}
	for p := 0; p < planes; p += stride {
		data := make([]opts.LineData, rec.SampleCount)
		for s := 0; s < rec.SampleCount; s++ {
			data[s] = opts.LineData{Value: rec.Intensity(p, s)}
		}
		line.AddSeries(seriesName(rec, first-1+p), data)
	}
	return line
}

// Render writes the chart for rec as a standalone HTML page.
func Render(rec *eulumdat.Record, w io.Writer) error {
	return IntensityCurves(rec).Render(w)
}

func seriesName(rec *eulumdat.Record, planeIdx int) string {
	if planeIdx < len(rec.AnglesC) {
		return fmt.Sprintf("C%s", strconv.FormatFloat(rec.AnglesC[planeIdx], 'f', -1, 64))
	}
	return fmt.Sprintf("plane %d", planeIdx+1)
}
