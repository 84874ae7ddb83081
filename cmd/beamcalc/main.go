package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beamcalc",
	Short: "Cantilever beam deflection calculator",
	Long: `Calculate reactions, bending moment and deflection of a rectangular
cantilever (solid or hollow box) under a single end point load.

Input units: section dimensions in mm, modulus in GPa, length in m, force in N.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
