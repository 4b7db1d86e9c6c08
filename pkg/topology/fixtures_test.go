package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tetrahedron is closed and consistently oriented
var tetrahedron = []int{
	0, 2, 1, -1,
	0, 1, 3, -1,
	0, 3, 2, -1,
	1, 2, 3, -1,
}

// bowtie is two triangles sharing only vertex 0
var bowtie = []int{
	0, 1, 2, -1,
	0, 3, 4, -1,
}

// fin is three triangles sharing the edge (0, 1)
var fin = []int{
	0, 1, 2, -1,
	1, 0, 3, -1,
	0, 1, 4, -1,
}

// mobius is a strip of three quads closed with a half twist. Its top row
// is 0, 1, 2 and its bottom row 3, 4, 5.
var mobius = []int{
	0, 1, 4, 3, -1,
	1, 2, 5, 4, -1,
	2, 3, 0, 5, -1,
}

// torus builds an n x m grid of quads wrapping around in both directions
func torus(n, m int) (int, []int) {
	vertex := func(i, j int) int {
		return (i%n)*m + j%m
	}
	coordIndex := make([]int, 0, n*m*5)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			coordIndex = append(coordIndex,
				vertex(i, j), vertex(i+1, j), vertex(i+1, j+1), vertex(i, j+1), -1)
		}
	}
	return n * m, coordIndex
}

func mustPolygonMesh(t *testing.T, nV int, coordIndex []int) *PolygonMesh {
	t.Helper()
	pm, err := NewPolygonMesh(nV, coordIndex)
	require.NoError(t, err)
	return pm
}

// invertFace reverses the corners of face iF in a copy of coordIndex
func invertFace(coordIndex []int, iF int) []int {
	out := append([]int(nil), coordIndex...)
	face := 0
	first := 0
	for i, iV := range out {
		if iV >= 0 {
			continue
		}
		if face == iF {
			for a, b := first, i-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
			break
		}
		face++
		first = i + 1
	}
	return out
}
