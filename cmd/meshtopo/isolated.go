package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var isolatedOutput string

var isolatedCmd = &cobra.Command{
	Use:   "isolated [file]",
	Short: "Remove vertices not used by any face",
	Args:  cobra.ExactArgs(1),
	Run:   runIsolated,
}

func init() {
	rootCmd.AddCommand(isolatedCmd)

	isolatedCmd.Flags().StringVarP(&isolatedOutput, "output", "o", "", "Output file (default: print to stdout)")
}

func runIsolated(cmd *cobra.Command, args []string) {
	exitOnError("removing isolated vertices", removeIsolated(os.Stdout, args[0], isolatedOutput))
}

func removeIsolated(w io.Writer, input, output string) error {
	set, err := loadMesh(input)
	if err != nil {
		return err
	}
	removed, err := set.RemoveIsolatedVertices()
	if err != nil {
		return err
	}
	logger.Info("removed isolated vertices", "removed", removed)
	return writeMesh(w, set, input, output)
}
