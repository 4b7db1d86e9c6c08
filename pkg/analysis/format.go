package analysis

import (
	"fmt"
	"io"

	"github.com/philipparndt/meshtopo/pkg/geometry"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report bundles the reports of one mesh for printing or serialization
type Report struct {
	Name     string          `yaml:"name,omitempty" json:"name,omitempty"`
	Topology *TopologyReport `yaml:"topology" json:"topology"`
	Geometry *GeometryReport `yaml:"geometry,omitempty" json:"geometry,omitempty"`
}

// FormatReport writes a human readable report
func FormatReport(w io.Writer, r *Report) error {
	p := message.NewPrinter(language.English)
	t := r.Topology

	lines := []struct {
		label string
		value any
	}{
		{"Vertices", t.Vertices},
		{"  boundary", t.BoundaryVertices},
		{"  singular", t.SingularVertices},
		{"  isolated", t.IsolatedVertices},
		{"Edges", t.Edges},
		{"  boundary", t.BoundaryEdges},
		{"  regular", t.RegularEdges},
		{"  singular", t.SingularEdges},
		{"Faces", t.Faces},
		{"Corners", t.Corners},
		{"Regular", yesNo(t.IsRegular)},
		{"Boundary", yesNo(t.HasBoundary)},
		{"Oriented", yesNo(t.IsOriented)},
		{"Orientable", yesNo(t.IsOrientable)},
		{"Components (primal)", t.PrimalComponents},
		{"Components (dual)", t.DualComponents},
		{"Euler characteristic", t.EulerCharacteristic},
	}

	if r.Name != "" {
		if _, err := p.Fprintf(w, "Mesh: %s\n", r.Name); err != nil {
			return err
		}
	}
	for _, line := range lines {
		if _, err := p.Fprintf(w, "%-22s %v\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	if t.Genus >= 0 {
		if _, err := p.Fprintf(w, "%-22s %d\n", "Genus:", t.Genus); err != nil {
			return err
		}
	}

	g := r.Geometry
	if g == nil {
		return nil
	}
	_, err := p.Fprintf(w, "\nDimensions:            %s\nSurface area:          %.6f\nVolume:                %.6f\nEdge length:           min %.6f, max %.6f, avg %.6f\n",
		FormatVector(g.Dimensions), g.SurfaceArea, g.Volume, g.MinEdgeLength, g.MaxEdgeLength, g.AvgEdgeLength)
	return err
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
