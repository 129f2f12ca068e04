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

// TruncatedError reports a stream that ended before the record was
// complete. Field names the field that was being read when input ran out.
type TruncatedError struct {
	Field string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("unexpected end of input reading <%s>", e.Field)
}

// Warning reports that one or more numeric lines could not be converted to
// their target type and were left at their zero value. Field names the last
// offending line; earlier failures are overwritten, the warning itself is
// raised at most once per decode.
type Warning struct {
	Field string
}

func (w *Warning) String() string {
	return fmt.Sprintf("some values could not be read (last failure: <%s>)", w.Field)
}

// reader walks the fixed line sequence of the format. Exhausted input is
// fatal; a present line that fails numeric conversion degrades the field to
// its zero value and records a warning.
type reader struct {
	sc   *bufio.Scanner
	warn *Warning
}

func (fr *reader) line(field string) (string, error) {
	if !fr.sc.Scan() {
		if err := fr.sc.Err(); err != nil {
			return "", fmt.Errorf("reading <%s>: %w", field, err)
		}
		return "", &TruncatedError{Field: field}
	}
	return fr.sc.Text(), nil
}

func (fr *reader) int(field string) (int, error) {
	line, err := fr.line(field)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		fr.warn = &Warning{Field: field}
		return 0, nil
	}
	return v, nil
}

// count reads a non-negative integer used to size a section. Negative
// values are treated like a conversion failure so no section is sized from
// them.
func (fr *reader) count(field string) (int, error) {
	v, err := fr.int(field)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		fr.warn = &Warning{Field: field}
		return 0, nil
	}
	return v, nil
}

func (fr *reader) float(field string) (float64, error) {
	line, err := fr.line(field)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if convErr != nil {
		fr.warn = &Warning{Field: field}
		return 0, nil
	}
	return v, nil
}

// Parse decodes one complete EULUMDAT record from r.
//
// The record is read as a unit in the fixed line order of the format; there
// is no partial or streaming mode. A nil error means the record was fully
// read. A non-nil Warning means one or more numeric fields failed to
// convert and hold their zero value. On a non-nil error no Record is
// returned: the stream ended early (TruncatedError), the symmetry indicator
// was invalid (ErrInvalidSymmetry), or the underlying reader failed.
func Parse(r io.Reader) (*Record, *Warning, error) {
	fr := &reader{sc: bufio.NewScanner(r)}

	var rec Record
	var err error

	if rec.Manufacturer, err = fr.line("manufacturer"); err != nil {
		return nil, nil, err
	}
	typ, err := fr.int("type indicator")
	if err != nil {
		return nil, nil, err
	}
	rec.Type = TypeIndicator(typ)
	sym, err := fr.int("symmetry indicator")
	if err != nil {
		return nil, nil, err
	}
	rec.Symmetry = Symmetry(sym)
	if rec.PlaneCount, err = fr.count("number of C-planes"); err != nil {
		return nil, nil, err
	}

	// The symmetry indicator decides how many C-planes the intensity table
	// stores. Resolve it before anything is sized from it; an invalid
	// indicator makes every later length meaningless.
	first, last, err := rec.Symmetry.PlaneRange(rec.PlaneCount)
	if err != nil {
		return nil, nil, err
	}

	if rec.PlaneDistance, err = fr.float("distance between C-planes"); err != nil {
		return nil, nil, err
	}
	if rec.SampleCount, err = fr.count("number of intensities per C-plane"); err != nil {
		return nil, nil, err
	}
	if rec.SampleDistance, err = fr.float("distance between intensities"); err != nil {
		return nil, nil, err
	}

	if rec.ReportNumber, err = fr.line("measurement report number"); err != nil {
		return nil, nil, err
	}
	if rec.LuminaireName, err = fr.line("luminaire name"); err != nil {
		return nil, nil, err
	}
	if rec.LuminaireNumber, err = fr.line("luminaire number"); err != nil {
		return nil, nil, err
	}
	if rec.FileName, err = fr.line("file name"); err != nil {
		return nil, nil, err
	}
	if rec.DateUser, err = fr.line("date/user"); err != nil {
		return nil, nil, err
	}

	if rec.Length, err = fr.int("length of luminaire"); err != nil {
		return nil, nil, err
	}
	if rec.Width, err = fr.int("width of luminaire"); err != nil {
		return nil, nil, err
	}
	if rec.Height, err = fr.int("height of luminaire"); err != nil {
		return nil, nil, err
	}
	if rec.AreaLength, err = fr.int("length of luminous area"); err != nil {
		return nil, nil, err
	}
	if rec.AreaWidth, err = fr.int("width of luminous area"); err != nil {
		return nil, nil, err
	}
	if rec.AreaHeightC0, err = fr.int("height of luminous area C0"); err != nil {
		return nil, nil, err
	}
	if rec.AreaHeightC90, err = fr.int("height of luminous area C90"); err != nil {
		return nil, nil, err
	}
	if rec.AreaHeightC180, err = fr.int("height of luminous area C180"); err != nil {
		return nil, nil, err
	}
	if rec.AreaHeightC270, err = fr.int("height of luminous area C270"); err != nil {
		return nil, nil, err
	}

	if rec.DownwardFluxFraction, err = fr.float("downward flux fraction"); err != nil {
		return nil, nil, err
	}
	if rec.LightOutputRatio, err = fr.float("light output ratio"); err != nil {
		return nil, nil, err
	}
	if rec.ConversionFactor, err = fr.float("conversion factor"); err != nil {
		return nil, nil, err
	}
	if rec.Tilt, err = fr.int("tilt of luminaire"); err != nil {
		return nil, nil, err
	}

	lampSets, err := fr.count("number of lamp sets")
	if err != nil {
		return nil, nil, err
	}
	rec.Lamps = make([]Lamp, lampSets)
	for i := range rec.Lamps {
		if rec.Lamps[i].Count, err = fr.int("number of lamps"); err != nil {
			return nil, nil, err
		}
	}
	for i := range rec.Lamps {
		if rec.Lamps[i].Type, err = fr.line("type of lamps"); err != nil {
			return nil, nil, err
		}
	}
	for i := range rec.Lamps {
		if rec.Lamps[i].Flux, err = fr.int("total luminous flux"); err != nil {
			return nil, nil, err
		}
	}
	for i := range rec.Lamps {
		if rec.Lamps[i].ColorTemperature, err = fr.int("color temperature"); err != nil {
			return nil, nil, err
		}
	}
	for i := range rec.Lamps {
		if rec.Lamps[i].ColorRenderingGroup, err = fr.int("color rendering group"); err != nil {
			return nil, nil, err
		}
	}
	for i := range rec.Lamps {
		if rec.Lamps[i].Wattage, err = fr.float("wattage including ballast"); err != nil {
			return nil, nil, err
		}
	}

	for i := range rec.DirectRatios {
		if rec.DirectRatios[i], err = fr.float("direct ratio"); err != nil {
			return nil, nil, err
		}
	}

	rec.AnglesC = make([]float64, rec.PlaneCount)
	for i := range rec.AnglesC {
		if rec.AnglesC[i], err = fr.float("C angles"); err != nil {
			return nil, nil, err
		}
	}
	rec.AnglesG = make([]float64, rec.SampleCount)
	for i := range rec.AnglesG {
		if rec.AnglesG[i], err = fr.float("G angles"); err != nil {
			return nil, nil, err
		}
	}

	rec.Intensities = make([]float64, (last-first+1)*rec.SampleCount)
	for i := range rec.Intensities {
		if rec.Intensities[i], err = fr.float("luminous intensity distribution"); err != nil {
			return nil, nil, err
		}
	}

	return &rec, fr.warn, nil
}

// ParseFile decodes the EULUMDAT record stored at path.
func ParseFile(path string) (*Record, *Warning, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, nil, fmt.Errorf("failed reading file %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck
	return Parse(f)
}
