package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/meshtopo/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount    int
	edgesKind     string
	edgesLongest  bool
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the edges of a mesh",
	Long:  "List edges with their end vertices, number of incident faces, kind and length.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 20, "Number of edges to display")
	edgesCmd.Flags().StringVarP(&edgesKind, "kind", "k", "", "Only show boundary, regular or singular edges")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) {
	exitOnError("listing edges", printEdges(os.Stdout, args[0], edgesKind, edgesCount))
}

func parseEdgeKind(name string) (analysis.EdgeKind, error) {
	for _, kind := range []analysis.EdgeKind{analysis.BoundaryEdge, analysis.RegularEdge, analysis.SingularEdge} {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown edge kind %q", name)
}

func printEdges(w io.Writer, path, kindName string, count int) error {
	if count < 0 {
		return fmt.Errorf("edge count must not be negative, got %d", count)
	}
	set, err := loadMesh(path)
	if err != nil {
		return err
	}
	pm, err := set.Topology()
	if err != nil {
		return err
	}

	all := analysis.CollectEdges(pm, set.Coord)
	edges := all
	if kindName != "" {
		kind, err := parseEdgeKind(kindName)
		if err != nil {
			return err
		}
		edges = analysis.FilterEdges(edges, kind)
	}

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(edges, count)
	case edgesShortest:
		edges = analysis.FindShortestEdges(edges, count)
	case len(edges) > count:
		edges = edges[:count]
	}

	if ok, err := writeStructured(w, cfg.Output.Format, edges); ok {
		return err
	}

	fmt.Fprintf(w, "Edges: %d total, showing %d\n\n", len(all), len(edges))
	if len(edges) == 0 {
		fmt.Fprintln(w, "No edges found matching the criteria.")
		return nil
	}
	fmt.Fprintf(w, "%-8s %-8s %-8s %-6s %-9s %-15s\n", "Index", "V0", "V1", "Faces", "Kind", "Length")
	fmt.Fprintln(w, "----------------------------------------------------------")
	for _, e := range edges {
		fmt.Fprintf(w, "%-8d %-8d %-8d %-6d %-9s %-15.6f\n", e.Index, e.V0, e.V1, e.Faces, e.Kind, e.Length)
	}
	return nil
}
