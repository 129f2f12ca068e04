// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package eulumdat

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds display-oriented quantities derived from a Record.
type Summary struct {
	PeakIntensity float64 // cd/1000 lm
	PeakC         float64 // C-plane angle of the peak, degrees
	PeakG         float64 // G angle of the peak, degrees
	MeanIntensity float64 // cd/1000 lm, over the stored table
	TotalFlux     int     // summed rated lamp flux, lm
	Absolute      bool    // any lamp set measured with absolute photometry
}

// Summarize derives a Summary from the stored distribution. Planes implied
// by the symmetry indicator are not reconstructed, so the mean covers the
// stored table only.
func Summarize(rec *Record) Summary {
	var s Summary
	for _, l := range rec.Lamps {
		s.TotalFlux += l.Flux
		if l.Absolute() {
			s.Absolute = true
		}
	}
	if len(rec.Intensities) == 0 || rec.SampleCount == 0 {
		return s
	}

	s.PeakIntensity = floats.Max(rec.Intensities)
	s.MeanIntensity = stat.Mean(rec.Intensities, nil)

	idx := floats.MaxIdx(rec.Intensities)
	plane, sample := idx/rec.SampleCount, idx%rec.SampleCount
	if first, _, err := rec.Symmetry.PlaneRange(rec.PlaneCount); err == nil {
		if ci := first - 1 + plane; ci < len(rec.AnglesC) {
			s.PeakC = rec.AnglesC[ci]
		}
	}
	if sample < len(rec.AnglesG) {
		s.PeakG = rec.AnglesG[sample]
	}
	return s
}
