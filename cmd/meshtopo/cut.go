package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var cutOutput string

var cutCmd = &cobra.Command{
	Use:   "cut [file]",
	Short: "Cut a mesh through its singular vertices",
	Long: `Give every fan of faces around a singular vertex its own copy of the
vertex. Singular edges are left as they are and isolated vertices are removed.`,
	Args: cobra.ExactArgs(1),
	Run:  runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().StringVarP(&cutOutput, "output", "o", "", "Output file (default: print to stdout)")
}

func runCut(cmd *cobra.Command, args []string) {
	exitOnError("cutting mesh", cut(os.Stdout, args[0], cutOutput))
}

func cut(w io.Writer, input, output string) error {
	set, err := loadMesh(input)
	if err != nil {
		return err
	}
	delta, changed, err := set.CutThroughSingularVertices()
	if err != nil {
		return err
	}
	logger.Info("cut through singular vertices", "changed", changed, "vertices", set.NumberOfVertices(), "delta", delta)
	return writeMesh(w, set, input, output)
}
