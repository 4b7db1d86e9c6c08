package analysis

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/philipparndt/meshtopo/pkg/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var tetrahedronCoord = []float32{
	0, 0, 0,
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

var tetrahedron = []int{
	0, 2, 1, -1,
	0, 1, 3, -1,
	0, 3, 2, -1,
	1, 2, 3, -1,
}

func mesh(t *testing.T, nV int, coordIndex []int) *topology.PolygonMesh {
	t.Helper()
	pm, err := topology.NewPolygonMesh(nV, coordIndex)
	require.NoError(t, err)
	return pm
}

// torus returns an n by m grid of quads with opposite sides identified
func torus(n, m int) (int, []int) {
	var coordIndex []int
	v := func(i, j int) int { return (i%n)*m + j%m }
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			coordIndex = append(coordIndex, v(i, j), v(i+1, j), v(i+1, j+1), v(i, j+1), -1)
		}
	}
	return n * m, coordIndex
}

func TestClassifyVertices(t *testing.T) {
	// bowtie plus an isolated vertex 5
	pm := mesh(t, 6, []int{0, 1, 2, -1, 0, 3, 4, -1})

	classes := ClassifyVertices(pm)
	require.Len(t, classes, 6)
	assert.Equal(t, VertexClass{Kind: Boundary, Singular: true, Parts: 2}, classes[0])
	assert.Equal(t, VertexClass{Kind: Boundary, Parts: 1}, classes[1])
	assert.Equal(t, VertexClass{Kind: Isolated}, classes[5])

	classes = ClassifyVertices(mesh(t, 4, tetrahedron))
	for _, c := range classes {
		assert.Equal(t, Internal, c.Kind)
		assert.False(t, c.Singular)
	}
}

func TestClassifyEdges(t *testing.T) {
	pm := mesh(t, 5, []int{0, 1, 2, -1, 1, 0, 3, -1, 0, 1, 4, -1})

	kinds := ClassifyEdges(pm)
	require.Len(t, kinds, pm.NumberOfEdges())
	iE := pm.Edge(0, 1)
	assert.Equal(t, SingularEdge, kinds[iE])
	assert.Equal(t, BoundaryEdge, kinds[pm.Edge(1, 2)])

	selection := EdgeSelection(pm, SingularEdge)
	assert.Equal(t, 1, Count(selection))
	assert.True(t, selection[iE])
	assert.Equal(t, 6, Count(EdgeSelection(pm, BoundaryEdge)))
	assert.Equal(t, 0, Count(EdgeSelection(pm, RegularEdge)))
}

func TestSelections(t *testing.T) {
	pm := mesh(t, 5, []int{0, 1, 2, -1, 0, 3, 4, -1})

	assert.Equal(t, []bool{true, false, false, false, false}, SingularVertexSelection(pm))
	assert.Equal(t, 5, Count(BoundaryVertexSelection(pm)))

	_, labels := pm.ConnectedComponentsDual()
	assert.Equal(t, []bool{false, true}, FaceSelection(labels, labels[1]))
}

func TestAnalyzeTopology(t *testing.T) {
	nTorus, torusIndex := torus(3, 3)
	tests := []struct {
		name       string
		nV         int
		coordIndex []int
		chi        int
		genus      int
	}{
		{"tetrahedron", 4, tetrahedron, 2, 0},
		{"torus", nTorus, torusIndex, 0, 1},
		{"two tetrahedra", 8, append(append([]int(nil), tetrahedron...), 4, 6, 5, -1, 4, 5, 7, -1, 4, 7, 6, -1, 5, 6, 7, -1), 4, 0},
		{"triangle", 3, []int{0, 1, 2, -1}, 1, -1},
		{"mobius", 6, []int{0, 1, 4, 3, -1, 1, 2, 5, 4, -1, 2, 3, 0, 5, -1}, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AnalyzeTopology(mesh(t, tt.nV, tt.coordIndex))
			assert.Equal(t, tt.chi, r.EulerCharacteristic)
			assert.Equal(t, tt.genus, r.Genus)
			assert.Equal(t, r.Edges, r.BoundaryEdges+r.RegularEdges+r.SingularEdges)
		})
	}
}

func TestAnalyzeTopologyCounts(t *testing.T) {
	// fin plus an isolated vertex
	r := AnalyzeTopology(mesh(t, 6, []int{0, 1, 2, -1, 1, 0, 3, -1, 0, 1, 4, -1}))

	assert.Equal(t, 6, r.Vertices)
	assert.Equal(t, 7, r.Edges)
	assert.Equal(t, 3, r.Faces)
	assert.Equal(t, 9, r.Corners)
	assert.Equal(t, 1, r.IsolatedVertices)
	assert.Equal(t, 1, r.SingularEdges)
	assert.False(t, r.IsRegular)
	assert.False(t, r.IsOriented)
	assert.False(t, r.IsOrientable)
	assert.Equal(t, 2, r.PrimalComponents)
	assert.Equal(t, 3, r.DualComponents)
	assert.Equal(t, -1, r.Genus)
}

func TestAnalyzeGeometry(t *testing.T) {
	pm := mesh(t, 4, tetrahedron)

	g := AnalyzeGeometry(pm, tetrahedronCoord)
	assert.InDelta(t, 1.0/6.0, g.Volume, 1e-9)
	assert.InDelta(t, 1.5+0.8660254037844386, g.SurfaceArea, 1e-9)
	assert.InDelta(t, 1.0, g.MinEdgeLength, 1e-9)
	assert.InDelta(t, 1.4142135623730951, g.MaxEdgeLength, 1e-9)
	assert.Equal(t, 1.0, g.Dimensions.X)
}

func TestAnalyzeGeometryEmpty(t *testing.T) {
	g := AnalyzeGeometry(mesh(t, 2, nil), []float32{0, 0, 0, 1, 1, 1})

	assert.Equal(t, 0.0, g.Dimensions.Length())
	assert.Equal(t, 0.0, g.MaxEdgeLength)
}

func TestFormatReport(t *testing.T) {
	pm := mesh(t, 4, tetrahedron)
	report := &Report{
		Name:     "tetrahedron",
		Topology: AnalyzeTopology(pm),
		Geometry: AnalyzeGeometry(pm, tetrahedronCoord),
	}

	var buf bytes.Buffer
	require.NoError(t, FormatReport(&buf, report))
	out := buf.String()
	assert.Contains(t, out, "Mesh: tetrahedron")
	assert.Regexp(t, `Vertices:\s+4`, out)
	assert.Regexp(t, `Oriented:\s+yes`, out)
	assert.Regexp(t, `Genus:\s+0`, out)
	assert.Contains(t, out, "Surface area:")
}

func TestReportSerialization(t *testing.T) {
	report := &Report{Topology: AnalyzeTopology(mesh(t, 4, tetrahedron))}

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"oriented":true`)

	data, err = yaml.Marshal(ClassifyVertices(mesh(t, 5, []int{0, 1, 2, -1, 0, 3, 4, -1})))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: boundary")
	assert.Contains(t, string(data), "singular: true")
}
