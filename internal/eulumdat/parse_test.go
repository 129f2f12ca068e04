// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package eulumdat

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureLines(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "quadrant.ldt"))
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func parseLines(lines []string) (*Record, *Warning, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// sampleRecord builds a record with deterministic contents and array
// lengths consistent with the given symmetry.
func sampleRecord(t *testing.T, sym Symmetry, planes, samples, lampSets int) *Record {
	t.Helper()
	first, last, err := sym.PlaneRange(planes)
	require.NoError(t, err)

	rec := &Record{
		Manufacturer:         "ACME Lighting GmbH",
		Type:                 TypePointOtherSymmetry,
		Symmetry:             sym,
		PlaneCount:           planes,
		PlaneDistance:        360 / float64(max(planes, 1)),
		SampleCount:          samples,
		SampleDistance:       5,
		ReportNumber:         "TR-1187",
		LuminaireName:        "Vela 600",
		LuminaireNumber:      "VL600",
		FileName:             "vl600.ldt",
		DateUser:             "2024-06-02 / rk",
		Length:               600,
		Width:                600,
		Height:               110,
		AreaLength:           550,
		AreaWidth:            550,
		DownwardFluxFraction: 100,
		LightOutputRatio:     91.5,
		ConversionFactor:     1,
		DirectRatios:         [10]float64{0.4, 0.48, 0.55, 0.61, 0.66, 0.7, 0.74, 0.78, 0.81, 0.84},
	}
	rec.Lamps = make([]Lamp, 0, lampSets)
	for i := 0; i < lampSets; i++ {
		rec.Lamps = append(rec.Lamps, Lamp{
			Count:               1,
			Type:                "LED module",
			Flux:                3200 + i,
			ColorTemperature:    4000,
			ColorRenderingGroup: 80,
			Wattage:             24.5,
		})
	}
	rec.AnglesC = make([]float64, planes)
	for i := range rec.AnglesC {
		rec.AnglesC[i] = float64(i) * rec.PlaneDistance
	}
	rec.AnglesG = make([]float64, samples)
	for i := range rec.AnglesG {
		rec.AnglesG[i] = float64(i) * rec.SampleDistance
	}
	rec.Intensities = make([]float64, (last-first+1)*samples)
	for i := range rec.Intensities {
		rec.Intensities[i] = float64(500 - i%37)
	}
	return rec
}

func TestParseFile(t *testing.T) {
	rec, warn, err := ParseFile(filepath.Join("testdata", "quadrant.ldt"))
	require.NoError(t, err)
	require.Nil(t, warn)

	assert.Equal(t, "ACME Lighting GmbH/LUMDAT 1.0", rec.Manufacturer)
	assert.Equal(t, TypeVerticalAxis, rec.Type)
	assert.Equal(t, SymmetryQuarter, rec.Symmetry)
	assert.Equal(t, 4, rec.PlaneCount)
	assert.Equal(t, 90.0, rec.PlaneDistance)
	assert.Equal(t, 3, rec.SampleCount)
	assert.Equal(t, 45.0, rec.SampleDistance)
	assert.Equal(t, "TR-2041", rec.ReportNumber)
	assert.Equal(t, "Orbis 300", rec.LuminaireName)
	assert.Equal(t, "OR300-D", rec.LuminaireNumber)
	assert.Equal(t, "or300.ldt", rec.FileName)
	assert.Equal(t, "2024-03-11 / mk", rec.DateUser)
	assert.Equal(t, 300, rec.Length)
	assert.Equal(t, 300, rec.Width)
	assert.Equal(t, 95, rec.Height)
	assert.Equal(t, 250, rec.AreaLength)
	assert.Equal(t, 250, rec.AreaWidth)
	assert.Equal(t, 100.0, rec.DownwardFluxFraction)
	assert.Equal(t, 87.5, rec.LightOutputRatio)
	assert.Equal(t, 1.0, rec.ConversionFactor)
	assert.Equal(t, 0, rec.Tilt)

	require.Len(t, rec.Lamps, 1)
	lamp := rec.Lamps[0]
	assert.Equal(t, 1, lamp.Count)
	assert.False(t, lamp.Absolute())
	assert.Equal(t, "LED module 19.5W 3000K", lamp.Type)
	assert.Equal(t, 2100, lamp.Flux)
	assert.Equal(t, 3000, lamp.ColorTemperature)
	assert.Equal(t, 80, lamp.ColorRenderingGroup)
	assert.Equal(t, 19.5, lamp.Wattage)

	assert.Equal(t, 0.42, rec.DirectRatios[0])
	assert.Equal(t, 0.85, rec.DirectRatios[9])
	assert.Equal(t, []float64{0, 90, 180, 270}, rec.AnglesC)
	assert.Equal(t, []float64{0, 45, 90}, rec.AnglesG)

	// Quarter symmetry over 4 planes stores 4/4+1 = 2 of them.
	assert.Equal(t, 2, rec.StoredPlanes())
	assert.Equal(t, []float64{310, 205, 12, 298, 198, 10}, rec.Intensities)
	assert.Equal(t, 298.0, rec.Intensity(1, 0))
}

func TestParseFile_NotFound(t *testing.T) {
	_, _, err := ParseFile(filepath.Join("testdata", "nonexistent.ldt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed reading file")
}

func TestParse_ArraySizes(t *testing.T) {
	tests := []struct {
		name    string
		sym     Symmetry
		planes  int
		samples int
		rows    int
	}{
		{"no symmetry stores all planes", SymmetryNone, 24, 19, 24},
		{"C0-C180 stores half plus one", SymmetryC0C180, 24, 19, 13},
		{"C90-C270 stores half plus one", SymmetryC90C270, 24, 19, 13},
		{"quarter stores a quarter plus one", SymmetryQuarter, 24, 19, 7},
		{"vertical stores one plane regardless", SymmetryVertical, 36, 19, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := sampleRecord(t, tt.sym, tt.planes, tt.samples, 1)

			var buf bytes.Buffer
			require.NoError(t, Writer{}.Write(want, &buf))

			got, warn, err := Parse(&buf)
			require.NoError(t, err)
			require.Nil(t, warn)
			assert.Len(t, got.AnglesC, tt.planes)
			assert.Len(t, got.AnglesG, tt.samples)
			assert.Len(t, got.Intensities, tt.rows*tt.samples)
			assert.Equal(t, tt.rows, got.StoredPlanes())
		})
	}
}

func TestParse_InvalidSymmetry(t *testing.T) {
	lines := fixtureLines(t)
	lines[2] = "5"

	rec, warn, err := parseLines(lines)
	assert.ErrorIs(t, err, ErrInvalidSymmetry)
	assert.Nil(t, rec)
	assert.Nil(t, warn)
}

func TestParse_Truncated(t *testing.T) {
	tests := []struct {
		name  string
		keep  int
		field string
	}{
		{"empty input", 0, "manufacturer"},
		{"after symmetry", 3, "number of C-planes"},
		{"inside lamp block", 27, "type of lamps"},
		{"last line missing", len(fixtureLines(t)) - 1, "luminous intensity distribution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := fixtureLines(t)[:tt.keep]

			rec, warn, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
			require.Error(t, err)
			assert.Nil(t, rec)
			assert.Nil(t, warn)

			var trunc *TruncatedError
			require.ErrorAs(t, err, &trunc)
			assert.Equal(t, tt.field, trunc.Field)
		})
	}
}

func TestParse_UnparseableNumberWarns(t *testing.T) {
	pristine, _, err := parseLines(fixtureLines(t))
	require.NoError(t, err)

	lines := fixtureLines(t)
	lines[12] = "n/a" // length of luminaire

	rec, warn, err := parseLines(lines)
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, "length of luminaire", warn.Field)
	assert.Contains(t, warn.String(), "could not be read")

	// The offending field holds its zero value; everything else matches.
	assert.Equal(t, 0, rec.Length)
	want := *pristine
	want.Length = 0
	if diff := cmp.Diff(&want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_WarningKeepsLastField(t *testing.T) {
	lines := fixtureLines(t)
	lines[12] = "n/a" // length of luminaire
	lines[13] = "??"  // width of luminaire

	_, warn, err := parseLines(lines)
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, "width of luminaire", warn.Field)
}

func TestParse_EmptyLampSet(t *testing.T) {
	rec := sampleRecord(t, SymmetryNone, 2, 2, 0)

	var buf bytes.Buffer
	require.NoError(t, Writer{}.Write(rec, &buf))

	got, warn, err := Parse(&buf)
	require.NoError(t, err)
	require.Nil(t, warn)
	assert.Empty(t, got.Lamps)
}

func TestParse_NegativeLampSetCount(t *testing.T) {
	lines := fixtureLines(t)
	lines[25] = "-2" // number of lamp sets

	// A negative count sizes the lamp set as empty rather than panicking;
	// the remaining lines are consumed out of step, which warns but does
	// not abort.
	rec, warn, err := parseLines(lines)
	require.NoError(t, err)
	assert.Empty(t, rec.Lamps)
	require.NotNil(t, warn)
}

func TestParse_AbsolutePhotometry(t *testing.T) {
	rec := sampleRecord(t, SymmetryVertical, 1, 2, 1)
	rec.Lamps[0].Count = -1

	var buf bytes.Buffer
	require.NoError(t, Writer{}.Write(rec, &buf))

	got, _, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, got.Lamps, 1)
	assert.True(t, got.Lamps[0].Absolute())
}

func TestParse_ReaderFailure(t *testing.T) {
	_, _, err := Parse(&failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading <manufacturer>")
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}
