// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package eulumdat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Writer encodes a Record back to the EULUMDAT line sequence.
//
// Precision is the significant-digit count used for floating-point fields.
// Zero or negative selects the shortest representation that parses back to
// the same value, which is the default a round-trip wants.
type Writer struct {
	Precision int
}

// Write emits rec to w, one value per line, in the exact order Parse
// consumes them. It performs no validation: array lengths are taken as
// stored on rec, the lamp-set count is len(rec.Lamps), and zero-length
// sections simply emit no lines.
func (wr Writer) Write(rec *Record, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, rec.Manufacturer)
	fmt.Fprintln(bw, int(rec.Type))
	fmt.Fprintln(bw, int(rec.Symmetry))
	fmt.Fprintln(bw, rec.PlaneCount)
	fmt.Fprintln(bw, wr.formatFloat(rec.PlaneDistance))
	fmt.Fprintln(bw, rec.SampleCount)
	fmt.Fprintln(bw, wr.formatFloat(rec.SampleDistance))

	fmt.Fprintln(bw, rec.ReportNumber)
	fmt.Fprintln(bw, rec.LuminaireName)
	fmt.Fprintln(bw, rec.LuminaireNumber)
	fmt.Fprintln(bw, rec.FileName)
	fmt.Fprintln(bw, rec.DateUser)

	fmt.Fprintln(bw, rec.Length)
	fmt.Fprintln(bw, rec.Width)
	fmt.Fprintln(bw, rec.Height)
	fmt.Fprintln(bw, rec.AreaLength)
	fmt.Fprintln(bw, rec.AreaWidth)
	fmt.Fprintln(bw, rec.AreaHeightC0)
	fmt.Fprintln(bw, rec.AreaHeightC90)
	fmt.Fprintln(bw, rec.AreaHeightC180)
	fmt.Fprintln(bw, rec.AreaHeightC270)

	fmt.Fprintln(bw, wr.formatFloat(rec.DownwardFluxFraction))
	fmt.Fprintln(bw, wr.formatFloat(rec.LightOutputRatio))
	fmt.Fprintln(bw, wr.formatFloat(rec.ConversionFactor))
	fmt.Fprintln(bw, rec.Tilt)

	fmt.Fprintln(bw, len(rec.Lamps))
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, l.Count)
	}
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, l.Type)
	}
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, l.Flux)
	}
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, l.ColorTemperature)
	}
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, l.ColorRenderingGroup)
	}
	for _, l := range rec.Lamps {
		fmt.Fprintln(bw, wr.formatFloat(l.Wattage))
	}

	for _, v := range rec.DirectRatios {
		fmt.Fprintln(bw, wr.formatFloat(v))
	}
	for _, v := range rec.AnglesC {
		fmt.Fprintln(bw, wr.formatFloat(v))
	}
	for _, v := range rec.AnglesG {
		fmt.Fprintln(bw, wr.formatFloat(v))
	}
	for _, v := range rec.Intensities {
		fmt.Fprintln(bw, wr.formatFloat(v))
	}

	return bw.Flush()
}

// WriteFile writes rec to path, creating or truncating the file.
func (wr Writer) WriteFile(rec *Record, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed writing file %s: %w", path, err)
	}
	if err := wr.Write(rec, f); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return f.Close()
}

// formatFloat renders v as plain decimal text. The format does not allow
// scientific notation, so the significant-digit form falls back to the
// shortest plain rendering when it would need an exponent.
func (wr Writer) formatFloat(v float64) string {
	if wr.Precision > 0 {
		s := strconv.FormatFloat(v, 'g', wr.Precision, 64)
		if !strings.ContainsAny(s, "eE") {
			return s
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
