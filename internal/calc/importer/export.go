package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"Cantilever/internal/calc/beam"
)

const (
	CurveSheet   = "Deflection"
	SummarySheet = "Summary"
)

// WriteCurve writes the results and the sampled deflection curve of out as
// an xlsx workbook.
func WriteCurve(w io.Writer, in beam.Input, out beam.Output) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CurveSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(CurveSheet, "A1", &[]interface{}{"Position x (m)", "Deflection (mm)"}); err != nil {
		return err
	}
	for i, p := range out.Curve.All() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(CurveSheet, cell, &[]interface{}{p.PositionM, p.DeflectionMM}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"Height", in.HeightMM, "mm"},
		{"Width", in.WidthMM, "mm"},
		{"Solid", in.IsSolid, ""},
		{"Wall thickness", in.WallThicknessMM, "mm"},
		{"Modulus of elasticity", in.ModulusGPa, "GPa"},
		{"Length", in.LengthM, "m"},
		{"Force", in.ForceN, "N"},
		{"Reaction force", out.Result.ReactionForceN, "N"},
		{"Max moment", out.Result.MaxMomentNM, "N·m"},
		{"Moment of inertia", out.Result.MomentOfInertiaM4, "m⁴"},
		{"Max deflection", out.Result.MaxDeflectionMM, "mm"},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
