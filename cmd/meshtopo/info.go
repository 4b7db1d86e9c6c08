package main

import (
	"io"
	"os"

	"github.com/philipparndt/meshtopo/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoNoGeometry bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display topology information about a mesh",
	Long: `Show vertex, edge and face counts, boundary and singular elements,
orientation, connected components, Euler characteristic and genus.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoNoGeometry, "no-geometry", false, "Skip coordinate measurements")
}

func runInfo(cmd *cobra.Command, args []string) {
	exitOnError("analyzing mesh", printInfo(os.Stdout, args[0], cfg.Output.Geometry && !infoNoGeometry))
}

func printInfo(w io.Writer, path string, withGeometry bool) error {
	set, err := loadMesh(path)
	if err != nil {
		return err
	}
	pm, err := set.Topology()
	if err != nil {
		return err
	}

	report := &analysis.Report{
		Name:     set.Name,
		Topology: analysis.AnalyzeTopology(pm),
	}
	if withGeometry {
		report.Geometry = analysis.AnalyzeGeometry(pm, set.Coord)
	}

	if ok, err := writeStructured(w, cfg.Output.Format, report); ok {
		return err
	}
	return analysis.FormatReport(w, report)
}
