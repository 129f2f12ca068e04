// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package eulumdat reads and writes the EULUMDAT photometric data format,
// the line-oriented text encoding used across the European lighting
// industry to describe the luminous intensity distribution of a luminaire.
//
// See https://docs.agi32.com/PhotometricToolbox/Content/Open_Tool/eulumdat_file_format.htm
// for the field-by-field layout.
package eulumdat

// TypeIndicator classifies the luminaire geometry. Only linear luminaires
// are subdivided in longitudinal and transverse directions.
type TypeIndicator int

const (
	// TypePointNoSymmetry is a point source with no symmetry.
	TypePointNoSymmetry TypeIndicator = iota
	// TypeVerticalAxis is a source with symmetry about the vertical axis.
	TypeVerticalAxis
	// TypeLinear is a linear luminaire.
	TypeLinear
	// TypePointOtherSymmetry is a point source with any other symmetry.
	TypePointOtherSymmetry
)

// String returns a human-readable name for the type indicator.
func (t TypeIndicator) String() string {
	switch t {
	case TypePointNoSymmetry:
		return "point source, no symmetry"
	case TypeVerticalAxis:
		return "vertical-axis symmetry"
	case TypeLinear:
		return "linear luminaire"
	case TypePointOtherSymmetry:
		return "point source, other symmetry"
	default:
		return "unknown"
	}
}

// Record is the complete photometric description of one luminaire.
//
// A Record is a self-contained value: it owns all its strings and slices
// and holds no handles to the stream it was read from.
type Record struct {
	// Manufacturer holds company identification, databank and format
	// identification.
	Manufacturer string
	Type         TypeIndicator
	Symmetry     Symmetry

	// PlaneCount is the number of C-planes between 0 and 360 degrees,
	// usually 24 for interior and 36 for road lighting luminaires.
	PlaneCount int
	// PlaneDistance is the angular distance between C-planes in degrees,
	// 0 for non-equidistantly available C-planes.
	PlaneDistance float64
	// SampleCount is the number of luminous intensities in each C-plane,
	// usually 19 or 37.
	SampleCount int
	// SampleDistance is the angular distance between intensities within a
	// C-plane, 0 for non-equidistant samples.
	SampleDistance float64

	ReportNumber    string
	LuminaireName   string
	LuminaireNumber string
	FileName        string
	DateUser        string

	// Luminaire and luminous-area dimensions in millimeters. Length doubles
	// as the diameter for circular luminaires.
	Length         int
	Width          int
	Height         int
	AreaLength     int
	AreaWidth      int
	AreaHeightC0   int
	AreaHeightC90  int
	AreaHeightC180 int
	AreaHeightC270 int

	DownwardFluxFraction float64 // percent
	LightOutputRatio     float64 // percent
	ConversionFactor     float64
	Tilt                 int // tilt of luminaire during measurement

	Lamps []Lamp

	// DirectRatios are the direct ratios for room indices k = 0.6 ... 5.
	DirectRatios [10]float64
	AnglesC      []float64
	AnglesG      []float64

	// Intensities is the luminous intensity distribution in cd/1000 lm,
	// row-major: one row of SampleCount values per stored C-plane. Planes
	// omitted under the symmetry indicator are not present.
	Intensities []float64
}

// Lamp is one standard set of lamps of a luminaire.
type Lamp struct {
	// Count is the number of lamps in the set. A negative count marks the
	// set as measured with absolute photometry.
	Count               int
	Type                string
	Flux                int // total luminous flux, lm
	ColorTemperature    int
	ColorRenderingGroup int
	Wattage             float64 // including ballast
}

// Absolute reports whether the set was measured with absolute photometry,
// signaled by a negative lamp count.
func (l Lamp) Absolute() bool { return l.Count < 0 }

// StoredPlanes returns the number of C-planes physically present in the
// intensity table.
func (r *Record) StoredPlanes() int {
	if r.SampleCount == 0 {
		return 0
	}
	return len(r.Intensities) / r.SampleCount
}

// Intensity returns the stored intensity for stored plane p and sample s,
// both zero-based. Plane indices count from the first stored plane, not
// from C0.
func (r *Record) Intensity(p, s int) float64 {
	return r.Intensities[p*r.SampleCount+s]
}
