// Package report produces the printable summary of a beam calculation.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/chart"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Beam    beam.Request `json:"beam"`
}

// The core PDF fonts only cover cp1252.
var ascii = strings.NewReplacer("⁴", "^4", "δ", "d")

// Generate calculates the beam in in and writes an A4 PDF report to w.
func Generate(w io.Writer, in Input, now time.Time) error {
	if in.Title == "" {
		in.Title = "Cantilever Beam Report"
	}
	bi, err := in.Beam.Resolve()
	if err != nil {
		return err
	}
	out, err := beam.Calculate(bi)
	if err != nil {
		return err
	}

	var img bytes.Buffer
	if err := chart.WritePNG(&img, out.Curve); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(ascii.Replace(value)), "1", 1, "R", false, 0, "")
	}

	section("Input")
	kind := "Hollow box"
	if bi.IsSolid {
		kind = "Solid"
	}
	row("Cross-section", kind)
	row("Height h", fmt.Sprintf("%g mm", bi.HeightMM))
	row("Width w", fmt.Sprintf("%g mm", bi.WidthMM))
	if !bi.IsSolid {
		row("Wall thickness t", fmt.Sprintf("%g mm", bi.WallThicknessMM))
	}
	row("Modulus of elasticity E", fmt.Sprintf("%g GPa", bi.ModulusGPa))
	row("Length L", fmt.Sprintf("%g m", bi.LengthM))
	row("Force F", fmt.Sprintf("%g N", bi.ForceN))
	pdf.Ln(4)

	section("Results")
	for _, c := range Cards(out.Result) {
		row(fmt.Sprintf("%s (%s)", c.Title, ascii.Replace(c.Symbol)), c.Value)
	}
	pdf.Ln(4)

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("deflection", opt, &img)
	pdf.ImageOptions("deflection", 10, pdf.GetY(), 190, 0, true, opt, 0, "")

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf.Output(w)
}
