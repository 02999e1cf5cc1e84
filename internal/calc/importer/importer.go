package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"

	"github.com/xuri/excelize/v2"
)

var (
	ErrMissingCell   = errors.New("measurement missing")
	ErrDuplicateCell = errors.New("measurement given twice")
	ErrEmptySheet    = errors.New("empty sheet")
)

var hoopHeader = []interface{}{"side", "leg", "axis", "angle_deg", "absolute_mm"}

func firstSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	return rows[1:], nil
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
	return strings.TrimSuffix(s, "leg")
}

func parseSide(s string) (hoop.SideName, bool) {
	for _, n := range hoop.SideNames() {
		if normalise(s) == string(n) {
			return n, true
		}
	}
	return "", false
}

func parseLeg(s string) (hoop.LegName, bool) {
	for _, n := range hoop.LegNames() {
		if normalise(s) == string(n) {
			return n, true
		}
	}
	return "", false
}

func parseAxis(s string) (hoop.Axis, bool) {
	for _, a := range hoop.Axes() {
		if normalise(s) == strings.ToLower(string(a)) {
			return a, true
		}
	}
	return "", false
}

// ReadHoopSheet reads side, leg, axis and angle columns from the first
// sheet. All twelve measurements must be present exactly once.
func ReadHoopSheet(r io.Reader) (hoop.Configuration, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return hoop.Configuration{}, err
	}

	var cfg hoop.Configuration
	seen := map[string]bool{}
	for i, row := range rows {
		line := i + 2
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		if len(row) < 4 {
			return hoop.Configuration{}, fmt.Errorf("row %d: expected side, leg, axis, angle", line)
		}
		side, ok := parseSide(row[0])
		if !ok {
			return hoop.Configuration{}, fmt.Errorf("row %d: unknown side %q", line, row[0])
		}
		leg, ok := parseLeg(row[1])
		if !ok {
			return hoop.Configuration{}, fmt.Errorf("row %d: unknown leg %q", line, row[1])
		}
		axis, ok := parseAxis(row[2])
		if !ok {
			return hoop.Configuration{}, fmt.Errorf("row %d: unknown axis %q", line, row[2])
		}
		angle, err := toFloat(row[3])
		if err != nil {
			return hoop.Configuration{}, fmt.Errorf("row %d: angle: %w", line, err)
		}

		key := fmt.Sprintf("%s/%s/%s", side, leg, axis)
		if seen[key] {
			return hoop.Configuration{}, fmt.Errorf("row %d: %s: %w", line, key, ErrDuplicateCell)
		}
		seen[key] = true
		cfg.Side(side).Leg(leg).Axis(axis).Angle = angle
	}

	var missing []string
	cfg.Each(func(side hoop.SideName, leg hoop.LegName, axis hoop.Axis, _ *hoop.Measurement) {
		if key := fmt.Sprintf("%s/%s/%s", side, leg, axis); !seen[key] {
			missing = append(missing, key)
		}
	})
	if len(missing) > 0 {
		return hoop.Configuration{}, fmt.Errorf("%w: %s", ErrMissingCell, strings.Join(missing, ", "))
	}
	return cfg, nil
}

// WriteHoopSheet writes cfg in the layout ReadHoopSheet expects. A nil cfg
// gives an empty template to fill in.
func WriteHoopSheet(w io.Writer, cfg *hoop.Configuration) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &hoopHeader); err != nil {
		return err
	}

	var src hoop.Configuration
	if cfg != nil {
		src = *cfg
	}
	row := 2
	var werr error
	src.Each(func(side hoop.SideName, leg hoop.LegName, axis hoop.Axis, m *hoop.Measurement) {
		if werr != nil {
			return
		}
		cells := []interface{}{string(side), string(leg), string(axis)}
		if cfg != nil {
			cells = append(cells, m.Angle)
			if m.Absolute != nil {
				cells = append(cells, *m.Absolute)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			werr = err
			return
		}
		werr = f.SetSheetRow(sheet, cell, &cells)
		row++
	})
	if werr != nil {
		return werr
	}
	return f.Write(w)
}

type BeamSheet struct {
	Inputs  []beam.Input `json:"inputs" yaml:"inputs"`
	Skipped []int        `json:"skipped_rows,omitempty" yaml:"skippedRows,omitempty"`
}

// ReadBeamSheet reads one beam per row. Rows that cannot be parsed are
// skipped and their sheet row numbers reported.
func ReadBeamSheet(r io.Reader) (BeamSheet, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return BeamSheet{}, err
	}
	var out BeamSheet
	for i, row := range rows {
		in, err := parseBeamRow(row)
		if err != nil {
			out.Skipped = append(out.Skipped, i+2)
			continue
		}
		out.Inputs = append(out.Inputs, in)
	}
	return out, nil
}

func parseBeamRow(row []string) (beam.Input, error) {
	// expected: section, material, span_mm, point_load_kg, udl_kn_m(optional), ratio(optional), width_mm, height_mm
	if len(row) < 4 {
		return beam.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[2])
	if err != nil {
		return beam.Input{}, err
	}
	load, err := optFloat(row, 3)
	if err != nil {
		return beam.Input{}, err
	}
	udl, err := optFloat(row, 4)
	if err != nil {
		return beam.Input{}, err
	}
	ratio, err := optFloat(row, 5)
	if err != nil {
		return beam.Input{}, err
	}
	width, err := optFloat(row, 6)
	if err != nil {
		return beam.Input{}, err
	}
	height, err := optFloat(row, 7)
	if err != nil {
		return beam.Input{}, err
	}
	return beam.Input{
		Section:              strings.TrimSpace(row[0]),
		Material:             strings.TrimSpace(row[1]),
		SpanMM:               span,
		PointLoadKg:          load,
		UDLKNM:               udl,
		DeflectionLimitRatio: ratio,
		WidthMM:              width,
		HeightMM:             height,
	}, nil
}

func optFloat(row []string, i int) (float64, error) {
	if len(row) <= i || strings.TrimSpace(row[i]) == "" {
		return 0, nil
	}
	return toFloat(row[i])
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
