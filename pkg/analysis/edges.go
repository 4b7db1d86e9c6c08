package analysis

import (
	"sort"

	"github.com/philipparndt/meshtopo/pkg/geometry"
	"github.com/philipparndt/meshtopo/pkg/topology"
)

// EdgeInfo describes one edge of the mesh
type EdgeInfo struct {
	Index  int      `yaml:"index" json:"index"`
	V0     int      `yaml:"v0" json:"v0"`
	V1     int      `yaml:"v1" json:"v1"`
	Kind   EdgeKind `yaml:"kind" json:"kind"`
	Faces  int      `yaml:"faces" json:"faces"`
	Length float64  `yaml:"length" json:"length"`
}

// CollectEdges returns every edge in id order. Lengths are zero when coord
// is nil.
func CollectEdges(pm *topology.PolygonMesh, coord []float32) []EdgeInfo {
	kinds := ClassifyEdges(pm)
	edges := make([]EdgeInfo, len(kinds))
	for iE, kind := range kinds {
		e := EdgeInfo{
			Index: iE,
			V0:    pm.Vertex0(iE),
			V1:    pm.Vertex1(iE),
			Kind:  kind,
			Faces: pm.NumberOfEdgeFaces(iE),
		}
		if coord != nil {
			e.Length = geometry.Vertex(coord, e.V0).Distance(geometry.Vertex(coord, e.V1))
		}
		edges[iE] = e
	}
	return edges
}

// FilterEdges returns the edges of the given kind
func FilterEdges(edges []EdgeInfo, kind EdgeKind) []EdgeInfo {
	var filtered []EdgeInfo
	for _, e := range edges {
		if e.Kind == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool {
		return a.Length < b.Length
	})
}

func sortedEdges(edges []EdgeInfo, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	count = max(0, min(count, len(sorted)))
	return sorted[:count]
}
