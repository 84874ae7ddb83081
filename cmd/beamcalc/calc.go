package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/chart"
	"Cantilever/internal/calc/importer"
	"Cantilever/internal/calc/loads"
	"Cantilever/internal/calc/materials"
	"Cantilever/internal/calc/report"
)

type calcFlags struct {
	req     beam.Request
	load    loads.Input
	png     string
	html    string
	pdf     string
	xlsx    string
	project string
	author  string
}

func newCalcCmd() *cobra.Command {
	f := &calcFlags{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Analyse a cantilever under an end load",
		Example: `  # 100x50 mm solid steel bar, 1 m long, 1 kN at the tip
  beamcalc calc --height 100 --width 50 --solid --material Steel --length 1 --force 1000

  # Hollow aluminium box with 4 mm walls, plot and report
  beamcalc calc -H 80 -W 40 -t 4 --material Aluminum -L 2 -F 100 --png defl.png --pdf report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			if fl.Changed("permanent") || fl.Changed("long-term") || fl.Changed("short-term") {
				f.req.Load = &f.load
				if !fl.Changed("force") {
					f.req.ForceN = 0
				}
			}
			return runCalc(cmd.OutOrStdout(), f)
		},
	}

	in := &f.req.Input
	cmd.Flags().Float64VarP(&in.HeightMM, "height", "H", 100, "Section height h (mm)")
	cmd.Flags().Float64VarP(&in.WidthMM, "width", "W", 50, "Section width w (mm)")
	cmd.Flags().BoolVar(&in.IsSolid, "solid", false, "Solid section (no hollow core)")
	cmd.Flags().Float64VarP(&in.WallThicknessMM, "thickness", "t", 5, "Wall thickness t (mm), hollow sections only")
	cmd.Flags().Float64VarP(&in.ModulusGPa, "modulus", "E", 0, "Modulus of elasticity E (GPa); overrides --material")
	cmd.Flags().StringVar(&f.req.Material, "material", materials.Default, "Material used when --modulus is not set")
	cmd.Flags().Float64VarP(&in.LengthM, "length", "L", 1, "Beam length L (m)")
	cmd.Flags().Float64VarP(&in.ForceN, "force", "F", 1000, "End load F (N)")
	cmd.Flags().IntVar(&in.Samples, "samples", beam.DefaultSamples, "Number of curve points")

	cmd.Flags().Float64Var(&f.load.PermanentKN, "permanent", 0, "Characteristic permanent end load G (kN); replaces --force")
	cmd.Flags().Float64Var(&f.load.LongTermKN, "long-term", 0, "Characteristic long-term variable end load (kN)")
	cmd.Flags().Float64Var(&f.load.ShortTermKN, "short-term", 0, "Characteristic short-term variable end load (kN)")
	cmd.Flags().StringVar((*string)(&f.load.Method), "method", string(loads.MethodSP24), "Load combination method: SP24, SP22 or EC7")

	cmd.Flags().StringVar(&f.png, "png", "", "Write the deflection plot to this PNG file")
	cmd.Flags().StringVar(&f.html, "html", "", "Write an interactive deflection chart to this HTML file")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Write a PDF report to this file")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "Write results and curve to this Excel file")
	cmd.Flags().StringVar(&f.project, "project", "", "Project name for the PDF report")
	cmd.Flags().StringVar(&f.author, "author", "", "Author for the PDF report")
	return cmd
}

func init() {
	rootCmd.AddCommand(newCalcCmd())
}

func runCalc(out io.Writer, f *calcFlags) error {
	in, err := f.req.Resolve()
	if err != nil {
		return err
	}
	res, err := beam.Calculate(in)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range report.Cards(res.Result) {
		fmt.Fprintf(w, "  %s (%s):\t%s\n", c.Title, c.Symbol, c.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if f.png != "" {
		if err := writeFile(f.png, func(w io.Writer) error { return chart.WritePNG(w, res.Curve) }); err != nil {
			return err
		}
	}
	if f.html != "" {
		sub := fmt.Sprintf("δ max = %.4f mm", res.Result.MaxDeflectionMM)
		if err := writeFile(f.html, func(w io.Writer) error { return chart.WriteHTML(w, res.Curve, sub) }); err != nil {
			return err
		}
	}
	if f.xlsx != "" {
		if err := writeFile(f.xlsx, func(w io.Writer) error { return importer.WriteCurve(w, in, res) }); err != nil {
			return err
		}
	}
	if f.pdf != "" {
		rin := report.Input{Project: f.project, Author: f.author, Beam: f.req}
		if err := writeFile(f.pdf, func(w io.Writer) error { return report.Generate(w, rin, time.Now()) }); err != nil {
			return err
		}
	}
	return nil
}

// writeFile renders into memory first so a failed render leaves no partial file.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}
