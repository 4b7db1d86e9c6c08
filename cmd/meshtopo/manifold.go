package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	manifoldOutput string
	manifoldOrient bool
)

var manifoldCmd = &cobra.Command{
	Use:   "manifold [file]",
	Short: "Convert a mesh into an oriented manifold",
	Long: `Cut a mesh through its singular vertices, its singular edges and its
inconsistently oriented edges. With --orient the faces are oriented first so
that only singularities are cut.`,
	Args: cobra.ExactArgs(1),
	Run:  runManifold,
}

func init() {
	rootCmd.AddCommand(manifoldCmd)

	manifoldCmd.Flags().StringVarP(&manifoldOutput, "output", "o", "", "Output file (default: print to stdout)")
	manifoldCmd.Flags().BoolVar(&manifoldOrient, "orient", false, "Orient faces before cutting")
}

func runManifold(cmd *cobra.Command, args []string) {
	exitOnError("converting mesh", convertToManifold(os.Stdout, args[0], manifoldOutput, manifoldOrient))
}

func convertToManifold(w io.Writer, input, output string, orientFirst bool) error {
	set, err := loadMesh(input)
	if err != nil {
		return err
	}
	delta, changed, err := set.ConvertToManifold(orientFirst)
	if err != nil {
		return err
	}
	logger.Info("converted to manifold", "changed", changed, "vertices", set.NumberOfVertices(), "delta", delta)
	return writeMesh(w, set, input, output)
}
