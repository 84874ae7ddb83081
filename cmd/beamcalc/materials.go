package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Cantilever/internal/calc/materials"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in materials and their elastic moduli",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MATERIAL\tE (GPa)")
		for _, m := range materials.List() {
			fmt.Fprintf(w, "%s\t%g\n", m.Name, m.ModulusGPa)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
