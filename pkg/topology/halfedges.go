package topology

// HalfEdges extends Edges with one half-edge per corner of the coordinate
// index buffer. Corner ids are positions in the buffer; sentinel positions
// are not corners and answer NotFound to every per-corner query.
type HalfEdges struct {
	*Edges

	coordIndex []int
	face       []int
	next       []int
	prev       []int
	edge       []int
	faceFirst  []int
	faceSize   []int

	// half-edges incident to each edge, in scan order
	edgeHalfEdges [][]int

	nCorners         int
	hasBoundaryEdges bool
	hasRegularEdges  bool
	hasSingularEdges bool
}

// NewHalfEdges builds the edge table and the half-edge structure of a mesh
// with nVertices vertices. The coordIndex slice is retained, not copied.
func NewHalfEdges(nVertices int, coordIndex []int) (*HalfEdges, error) {
	edges, err := BuildEdges(nVertices, coordIndex)
	if err != nil {
		return nil, err
	}

	n := len(coordIndex)
	h := &HalfEdges{
		Edges:         edges,
		coordIndex:    coordIndex,
		face:          make([]int, n),
		next:          make([]int, n),
		prev:          make([]int, n),
		edge:          make([]int, n),
		faceFirst:     make([]int, 0),
		faceSize:      make([]int, 0),
		edgeHalfEdges: make([][]int, edges.NumberOfEdges()),
	}

	iF := 0
	first := 0
	for i, iV := range coordIndex {
		if iV >= 0 {
			continue
		}
		h.face[i] = NotFound
		h.next[i] = NotFound
		h.prev[i] = NotFound
		h.edge[i] = NotFound

		last := i - 1
		for iC := first; iC <= last; iC++ {
			h.face[iC] = iF
			if iC == last {
				h.next[iC] = first
			} else {
				h.next[iC] = iC + 1
			}
			if iC == first {
				h.prev[iC] = last
			} else {
				h.prev[iC] = iC - 1
			}
			iE := edges.Edge(coordIndex[iC], coordIndex[h.next[iC]])
			h.edge[iC] = iE
			h.edgeHalfEdges[iE] = append(h.edgeHalfEdges[iE], iC)
		}

		h.faceFirst = append(h.faceFirst, first)
		h.faceSize = append(h.faceSize, i-first)
		h.nCorners += i - first
		first = i + 1
		iF++
	}

	for _, list := range h.edgeHalfEdges {
		switch {
		case len(list) == 1:
			h.hasBoundaryEdges = true
		case len(list) == 2:
			h.hasRegularEdges = true
		case len(list) > 2:
			h.hasSingularEdges = true
		}
	}

	return h, nil
}

// CoordIndex returns the coordinate index buffer the structure was built on
func (h *HalfEdges) CoordIndex() []int {
	return h.coordIndex
}

// NumberOfCorners returns the number of non-sentinel positions
func (h *HalfEdges) NumberOfCorners() int {
	return h.nCorners
}

// IsCorner reports whether position iC holds a vertex index
func (h *HalfEdges) IsCorner(iC int) bool {
	return iC >= 0 && iC < len(h.coordIndex) && h.coordIndex[iC] >= 0
}

// NumberOfFaces returns the number of sentinels in the buffer
func (h *HalfEdges) NumberOfFaces() int {
	return len(h.faceFirst)
}

// FaceFirstCorner returns the first corner of face iF
func (h *HalfEdges) FaceFirstCorner(iF int) int {
	if iF < 0 || iF >= len(h.faceFirst) {
		return NotFound
	}
	return h.faceFirst[iF]
}

// FaceSize returns the number of corners of face iF
func (h *HalfEdges) FaceSize(iF int) int {
	if iF < 0 || iF >= len(h.faceSize) {
		return 0
	}
	return h.faceSize[iF]
}

// Face returns the face containing corner iC
func (h *HalfEdges) Face(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.face[iC]
}

// Src returns the vertex corner iC points to
func (h *HalfEdges) Src(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.coordIndex[iC]
}

// Dst returns the vertex of the next corner in the same face
func (h *HalfEdges) Dst(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.coordIndex[h.next[iC]]
}

// Next returns the next corner in the same face, wrapping around
func (h *HalfEdges) Next(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.next[iC]
}

// Prev returns the previous corner in the same face, wrapping around
func (h *HalfEdges) Prev(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.prev[iC]
}

// EdgeOf returns the edge of half-edge iC
func (h *HalfEdges) EdgeOf(iC int) int {
	if !h.IsCorner(iC) {
		return NotFound
	}
	return h.edge[iC]
}

// Twin returns the other half-edge of a regular edge. Boundary and singular
// edges have no twin.
func (h *HalfEdges) Twin(iC int) int {
	iE := h.EdgeOf(iC)
	if iE < 0 || len(h.edgeHalfEdges[iE]) != 2 {
		return NotFound
	}
	list := h.edgeHalfEdges[iE]
	if list[0] == iC {
		return list[1]
	}
	return list[0]
}

// IsOriented reports whether half-edge iC and its twin traverse their edge
// in opposite directions. It is false when iC has no twin.
func (h *HalfEdges) IsOriented(iC int) bool {
	iCt := h.Twin(iC)
	if iCt < 0 {
		return false
	}
	return h.Src(iC) == h.Dst(iCt) && h.Dst(iC) == h.Src(iCt)
}

// NumberOfEdgeHalfEdges returns the number of half-edges incident to edge iE
func (h *HalfEdges) NumberOfEdgeHalfEdges(iE int) int {
	if iE < 0 || iE >= len(h.edgeHalfEdges) {
		return 0
	}
	return len(h.edgeHalfEdges[iE])
}

// EdgeHalfEdge returns the j-th half-edge incident to edge iE
func (h *HalfEdges) EdgeHalfEdge(iE, j int) int {
	if iE < 0 || iE >= len(h.edgeHalfEdges) {
		return NotFound
	}
	list := h.edgeHalfEdges[iE]
	if j < 0 || j >= len(list) {
		return NotFound
	}
	return list[j]
}

// NumberOfEdgeFaces returns the number of faces incident to edge iE,
// counted once per half-edge.
func (h *HalfEdges) NumberOfEdgeFaces(iE int) int {
	return h.NumberOfEdgeHalfEdges(iE)
}

// EdgeFace returns the face of the j-th half-edge incident to edge iE
func (h *HalfEdges) EdgeFace(iE, j int) int {
	return h.Face(h.EdgeHalfEdge(iE, j))
}

// IsEdgeFace reports whether face iF is incident to edge iE
func (h *HalfEdges) IsEdgeFace(iE, iF int) bool {
	if iF < 0 {
		return false
	}
	for j := 0; j < h.NumberOfEdgeHalfEdges(iE); j++ {
		if h.EdgeFace(iE, j) == iF {
			return true
		}
	}
	return false
}

// IsBoundaryEdge reports whether edge iE has exactly one half-edge
func (h *HalfEdges) IsBoundaryEdge(iE int) bool {
	return h.NumberOfEdgeHalfEdges(iE) == 1
}

// IsRegularEdge reports whether edge iE has exactly two half-edges
func (h *HalfEdges) IsRegularEdge(iE int) bool {
	return h.NumberOfEdgeHalfEdges(iE) == 2
}

// IsSingularEdge reports whether edge iE has more than two half-edges
func (h *HalfEdges) IsSingularEdge(iE int) bool {
	return h.NumberOfEdgeHalfEdges(iE) > 2
}

func (h *HalfEdges) HasBoundaryEdges() bool {
	return h.hasBoundaryEdges
}

func (h *HalfEdges) HasRegularEdges() bool {
	return h.hasRegularEdges
}

func (h *HalfEdges) HasSingularEdges() bool {
	return h.hasSingularEdges
}
