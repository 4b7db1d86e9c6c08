package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var orientOutput string

var orientCmd = &cobra.Command{
	Use:   "orient [file]",
	Short: "Orient the faces of a mesh consistently",
	Long: `Invert the faces needed for every regular edge to be traversed in opposite
directions by its two faces. The first face of each connected component keeps
its orientation. Fails on meshes that are not orientable.`,
	Args: cobra.ExactArgs(1),
	Run:  runOrient,
}

func init() {
	rootCmd.AddCommand(orientCmd)

	orientCmd.Flags().StringVarP(&orientOutput, "output", "o", "", "Output file (default: print to stdout)")
}

func runOrient(cmd *cobra.Command, args []string) {
	exitOnError("orienting mesh", orient(os.Stdout, args[0], orientOutput))
}

func orient(w io.Writer, input, output string) error {
	set, err := loadMesh(input)
	if err != nil {
		return err
	}
	nCC, inverted, err := set.Orient()
	if err != nil {
		return err
	}
	logger.Info("oriented mesh", "components", nCC, "inverted", inverted)
	return writeMesh(w, set, input, output)
}
