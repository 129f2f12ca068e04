// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package eulumdat

import "errors"

// ErrInvalidSymmetry indicates a symmetry indicator outside the five values
// the format defines. Nothing downstream of the indicator can be sized
// without it, so a decode aborts on this error.
var ErrInvalidSymmetry = errors.New("invalid symmetry indicator")

// Symmetry describes which angular symmetry lets a file omit redundant
// C-planes from the intensity table.
type Symmetry int

const (
	// SymmetryNone stores every C-plane.
	SymmetryNone Symmetry = iota
	// SymmetryVertical stores a single C-plane; the distribution is
	// rotationally symmetric about the vertical axis.
	SymmetryVertical
	// SymmetryC0C180 stores the half symmetric to the C0-C180 plane.
	SymmetryC0C180
	// SymmetryC90C270 stores the half symmetric to the C90-C270 plane.
	SymmetryC90C270
	// SymmetryQuarter stores one quarter, symmetric to both planes.
	SymmetryQuarter
)

// String returns a human-readable name for the symmetry indicator.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "none"
	case SymmetryVertical:
		return "vertical axis"
	case SymmetryC0C180:
		return "C0-C180 plane"
	case SymmetryC90C270:
		return "C90-C270 plane"
	case SymmetryQuarter:
		return "C0-C180 and C90-C270 planes"
	default:
		return "unknown"
	}
}

// PlaneRange returns the inclusive, 1-based range of C-planes whose
// intensity rows are stored in a file with planeCount C-planes in total.
// Planes outside the range are implied by the symmetry and are not part of
// the stored table. Indicators outside 0-4 return ErrInvalidSymmetry.
func (s Symmetry) PlaneRange(planeCount int) (first, last int, err error) {
	switch s {
	case SymmetryNone:
		return 1, planeCount, nil
	case SymmetryVertical:
		return 1, 1, nil
	case SymmetryC0C180:
		return 1, planeCount/2 + 1, nil
	case SymmetryC90C270:
		first = 3*planeCount/4 + 1
		return first, first + planeCount/2, nil
	case SymmetryQuarter:
		return 1, planeCount/4 + 1, nil
	default:
		return 0, 0, ErrInvalidSymmetry
	}
}
