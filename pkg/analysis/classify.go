// Package analysis reduces a polygon mesh to per-element classifications
// and summary reports.
package analysis

import (
	"fmt"

	"github.com/philipparndt/meshtopo/pkg/topology"
)

// VertexKind describes where a vertex sits in the mesh
type VertexKind int

const (
	// Isolated vertices are not used by any face
	Isolated VertexKind = iota
	// Internal vertices have no incident boundary edge
	Internal
	// Boundary vertices are an end of at least one boundary edge
	Boundary
)

func (k VertexKind) String() string {
	switch k {
	case Isolated:
		return "isolated"
	case Internal:
		return "internal"
	case Boundary:
		return "boundary"
	}
	return fmt.Sprintf("VertexKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k VertexKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// VertexClass is the classification of a single vertex
type VertexClass struct {
	Kind     VertexKind `yaml:"kind" json:"kind"`
	Singular bool       `yaml:"singular,omitempty" json:"singular,omitempty"`
	Parts    int        `yaml:"parts" json:"parts"`
}

// EdgeKind classifies an edge by its number of incident half-edges
type EdgeKind int

const (
	// BoundaryEdge has one incident half-edge
	BoundaryEdge EdgeKind = iota
	// RegularEdge has two
	RegularEdge
	// SingularEdge has three or more
	SingularEdge
)

func (k EdgeKind) String() string {
	switch k {
	case BoundaryEdge:
		return "boundary"
	case RegularEdge:
		return "regular"
	case SingularEdge:
		return "singular"
	}
	return fmt.Sprintf("EdgeKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k EdgeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ClassifyVertices returns the class of every vertex
func ClassifyVertices(pm *topology.PolygonMesh) []VertexClass {
	classes := make([]VertexClass, pm.NumberOfVertices())
	for iV := range classes {
		c := VertexClass{
			Kind:     Internal,
			Singular: pm.IsSingularVertex(iV),
			Parts:    pm.NumberOfVertexParts(iV),
		}
		switch {
		case pm.IsIsolatedVertex(iV):
			c.Kind = Isolated
		case pm.IsBoundaryVertex(iV):
			c.Kind = Boundary
		}
		classes[iV] = c
	}
	return classes
}

// ClassifyEdges returns the kind of every edge
func ClassifyEdges(pm *topology.PolygonMesh) []EdgeKind {
	kinds := make([]EdgeKind, pm.NumberOfEdges())
	for iE := range kinds {
		switch {
		case pm.IsBoundaryEdge(iE):
			kinds[iE] = BoundaryEdge
		case pm.IsRegularEdge(iE):
			kinds[iE] = RegularEdge
		default:
			kinds[iE] = SingularEdge
		}
	}
	return kinds
}

// BoundaryVertexSelection flags the boundary vertices
func BoundaryVertexSelection(pm *topology.PolygonMesh) []bool {
	selection := make([]bool, pm.NumberOfVertices())
	for iV := range selection {
		selection[iV] = pm.IsBoundaryVertex(iV)
	}
	return selection
}

// SingularVertexSelection flags the singular vertices
func SingularVertexSelection(pm *topology.PolygonMesh) []bool {
	selection := make([]bool, pm.NumberOfVertices())
	for iV := range selection {
		selection[iV] = pm.IsSingularVertex(iV)
	}
	return selection
}

// EdgeSelection flags the edges of the given kind
func EdgeSelection(pm *topology.PolygonMesh, kind EdgeKind) []bool {
	kinds := ClassifyEdges(pm)
	selection := make([]bool, len(kinds))
	for iE, k := range kinds {
		selection[iE] = k == kind
	}
	return selection
}

// FaceSelection flags the faces carrying the given component label
func FaceSelection(labels []int, label int) []bool {
	selection := make([]bool, len(labels))
	for iF, l := range labels {
		selection[iF] = l == label
	}
	return selection
}

// Count returns the number of selected elements
func Count(selection []bool) int {
	n := 0
	for _, s := range selection {
		if s {
			n++
		}
	}
	return n
}
