package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfEdgesSingleTriangle(t *testing.T) {
	h, err := NewHalfEdges(3, []int{0, 1, 2, -1})
	require.NoError(t, err)

	assert.Equal(t, 3, h.NumberOfCorners())
	assert.Equal(t, 1, h.NumberOfFaces())
	assert.Equal(t, 3, h.NumberOfEdges())

	assert.Equal(t, []int{1, 2, 0}, []int{h.Next(0), h.Next(1), h.Next(2)})
	assert.Equal(t, []int{2, 0, 1}, []int{h.Prev(0), h.Prev(1), h.Prev(2)})
	assert.Equal(t, []int{0, 1, 2}, []int{h.Src(0), h.Src(1), h.Src(2)})
	assert.Equal(t, []int{1, 2, 0}, []int{h.Dst(0), h.Dst(1), h.Dst(2)})

	for iC := 0; iC < 3; iC++ {
		assert.Equal(t, 0, h.Face(iC))
		assert.Equal(t, NotFound, h.Twin(iC))
		assert.False(t, h.IsOriented(iC))
	}

	assert.True(t, h.HasBoundaryEdges())
	assert.False(t, h.HasRegularEdges())
	assert.False(t, h.HasSingularEdges())
}

func TestHalfEdgesSentinelPositions(t *testing.T) {
	h, err := NewHalfEdges(5, bowtie)
	require.NoError(t, err)

	assert.False(t, h.IsCorner(3))
	assert.False(t, h.IsCorner(7))
	assert.False(t, h.IsCorner(8))
	assert.True(t, h.IsCorner(4))

	assert.Equal(t, NotFound, h.Face(3))
	assert.Equal(t, NotFound, h.Src(3))
	assert.Equal(t, NotFound, h.Dst(3))
	assert.Equal(t, NotFound, h.Next(3))
	assert.Equal(t, NotFound, h.Prev(3))
	assert.Equal(t, NotFound, h.EdgeOf(3))
	assert.Equal(t, NotFound, h.Twin(3))
	assert.Equal(t, NotFound, h.Face(-1))

	assert.Equal(t, 1, h.Face(4))
	assert.Equal(t, 6, h.Next(5))
	assert.Equal(t, 4, h.Next(6))
	assert.Equal(t, 4, h.FaceFirstCorner(1))
	assert.Equal(t, 3, h.FaceSize(1))
	assert.Equal(t, NotFound, h.FaceFirstCorner(2))
}

func TestHalfEdgesTwinsOnTetrahedron(t *testing.T) {
	h, err := NewHalfEdges(4, tetrahedron)
	require.NoError(t, err)

	assert.False(t, h.HasBoundaryEdges())
	assert.True(t, h.HasRegularEdges())
	assert.False(t, h.HasSingularEdges())

	for iC := 0; iC < len(tetrahedron); iC++ {
		if !h.IsCorner(iC) {
			continue
		}
		iCt := h.Twin(iC)
		require.NotEqual(t, NotFound, iCt, "corner %d", iC)
		assert.Equal(t, iC, h.Twin(iCt))
		assert.NotEqual(t, h.Face(iC), h.Face(iCt))
		assert.Equal(t, h.EdgeOf(iC), h.EdgeOf(iCt))
		assert.True(t, h.IsOriented(iC), "corner %d", iC)
	}
}

func TestHalfEdgesInconsistentPair(t *testing.T) {
	// both faces traverse 0 -> 1
	h, err := NewHalfEdges(4, []int{0, 1, 2, -1, 0, 1, 3, -1})
	require.NoError(t, err)

	iE := h.Edge(0, 1)
	require.Equal(t, 2, h.NumberOfEdgeHalfEdges(iE))
	assert.Equal(t, 0, h.EdgeHalfEdge(iE, 0))
	assert.Equal(t, 4, h.EdgeHalfEdge(iE, 1))
	assert.Equal(t, 4, h.Twin(0))
	assert.False(t, h.IsOriented(0))
	assert.False(t, h.IsOriented(4))
}

func TestHalfEdgesSingularEdge(t *testing.T) {
	h, err := NewHalfEdges(5, fin)
	require.NoError(t, err)

	iE := h.Edge(0, 1)
	assert.True(t, h.IsSingularEdge(iE))
	assert.False(t, h.IsRegularEdge(iE))
	assert.False(t, h.IsBoundaryEdge(iE))
	assert.Equal(t, 3, h.NumberOfEdgeHalfEdges(iE))
	assert.Equal(t, []int{0, 4, 8}, []int{h.EdgeHalfEdge(iE, 0), h.EdgeHalfEdge(iE, 1), h.EdgeHalfEdge(iE, 2)})
	assert.Equal(t, NotFound, h.Twin(0))
	assert.True(t, h.HasSingularEdges())
}

func TestEdgeHalfEdgeOutOfRange(t *testing.T) {
	h, err := NewHalfEdges(4, tetrahedron)
	require.NoError(t, err)

	assert.Equal(t, NotFound, h.EdgeHalfEdge(0, 2))
	assert.Equal(t, NotFound, h.EdgeHalfEdge(0, -1))
	assert.Equal(t, NotFound, h.EdgeHalfEdge(-1, 0))
	assert.Equal(t, NotFound, h.EdgeHalfEdge(6, 0))
	assert.Equal(t, 0, h.NumberOfEdgeHalfEdges(6))
}

func TestEdgeFaces(t *testing.T) {
	h, err := NewHalfEdges(5, fin)
	require.NoError(t, err)

	iE := h.Edge(0, 1)
	assert.Equal(t, 3, h.NumberOfEdgeFaces(iE))
	assert.Equal(t, 1, h.EdgeFace(iE, 1))
	assert.True(t, h.IsEdgeFace(iE, 2))

	iE = h.Edge(1, 2)
	assert.True(t, h.IsEdgeFace(iE, 0))
	assert.False(t, h.IsEdgeFace(iE, 1))
	assert.False(t, h.IsEdgeFace(iE, -1))
	assert.Equal(t, NotFound, h.EdgeFace(iE, 1))
}

func TestHandshake(t *testing.T) {
	nTorus, torusIndex := torus(3, 4)
	meshes := []struct {
		name       string
		nV         int
		coordIndex []int
	}{
		{"tetrahedron", 4, tetrahedron},
		{"bowtie", 5, bowtie},
		{"fin", 5, fin},
		{"mobius", 6, mobius},
		{"torus", nTorus, torusIndex},
		{"degenerate", 3, []int{2, -1, 0, 1, -1}},
	}

	for _, m := range meshes {
		t.Run(m.name, func(t *testing.T) {
			h, err := NewHalfEdges(m.nV, m.coordIndex)
			require.NoError(t, err)

			sum := 0
			for iE := 0; iE < h.NumberOfEdges(); iE++ {
				n := h.NumberOfEdgeHalfEdges(iE)
				assert.GreaterOrEqual(t, n, 1)
				sum += n
			}
			assert.Equal(t, h.NumberOfCorners(), sum)
			assert.Equal(t, len(m.coordIndex)-h.NumberOfFaces(), h.NumberOfCorners())
		})
	}
}

func TestHalfEdgesDegenerateFaces(t *testing.T) {
	h, err := NewHalfEdges(3, []int{2, -1, 0, 1, -1})
	require.NoError(t, err)

	assert.Equal(t, 0, h.Next(0))
	assert.Equal(t, 0, h.Prev(0))
	assert.Equal(t, 2, h.Dst(0))

	assert.Equal(t, 3, h.Next(2))
	assert.Equal(t, 2, h.Next(3))
	// both half-edges of the two vertex face share its only edge
	assert.Equal(t, 3, h.Twin(2))
	assert.True(t, h.IsOriented(2))
}
