// Package importer moves beam data in and out of Excel workbooks.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Cantilever/internal/calc/batch"
	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/materials"
)

// Columns expected on the first sheet, after a header row.
var Columns = []string{"height_mm", "width_mm", "solid", "wall_thickness_mm", "modulus_gpa", "length_m", "force_n"}

type BeamImportResult struct {
	Rows    int          `json:"rows"`
	Count   int          `json:"count"`
	Results []batch.Item `json:"results"`
}

// ImportBeams reads beam rows from the first sheet of an xlsx workbook and
// evaluates each of them. Item indexes are 1-based sheet row numbers.
func ImportBeams(r io.Reader) (BeamImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return BeamImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return BeamImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return BeamImportResult{}, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var out BeamImportResult
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		out.Rows++
		input, err := parseBeamRow(row)
		if err != nil {
			out.Results = append(out.Results, batch.Item{Index: i + 1, Error: err.Error()})
			continue
		}
		item := batch.Evaluate(i+1, input)
		if item.Result != nil {
			out.Count++
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func parseBeamRow(row []string) (beam.Input, error) {
	if len(row) < len(Columns) {
		return beam.Input{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(row))
	}
	var in beam.Input
	var err error
	if in.HeightMM, err = toFloat(Columns[0], row[0]); err != nil {
		return beam.Input{}, err
	}
	if in.WidthMM, err = toFloat(Columns[1], row[1]); err != nil {
		return beam.Input{}, err
	}
	in.IsSolid = toBool(row[2])
	if strings.TrimSpace(row[3]) != "" {
		if in.WallThicknessMM, err = toFloat(Columns[3], row[3]); err != nil {
			return beam.Input{}, err
		}
	}
	if in.ModulusGPa, err = toModulus(row[4]); err != nil {
		return beam.Input{}, err
	}
	if in.LengthM, err = toFloat(Columns[5], row[5]); err != nil {
		return beam.Input{}, err
	}
	if in.ForceN, err = toFloat(Columns[6], row[6]); err != nil {
		return beam.Input{}, err
	}
	return in, nil
}

func toFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// toModulus accepts either a number in GPa or a material name.
func toModulus(s string) (float64, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v, nil
	}
	if e, ok := materials.Modulus(s); ok {
		return e, nil
	}
	return 0, fmt.Errorf("modulus_gpa: %q is neither a number nor a known material", s)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "x", "solid":
		return true
	}
	return false
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
