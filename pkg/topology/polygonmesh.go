package topology

// PolygonMesh adds vertex classification, connected components,
// orientation and manifold conversion on top of HalfEdges.
//
// A PolygonMesh is a snapshot of its coordinate index buffer. Any change to
// the buffer requires building a new PolygonMesh.
type PolygonMesh struct {
	*HalfEdges

	// number of corner partition parts pointing to each vertex;
	// more than one means the vertex is singular
	nPartsVertex     []int
	nCornersVertex   []int
	isBoundaryVertex []bool

	nSingularVertices int
	nIsolatedVertices int
}

// NewPolygonMesh builds the full topology of a mesh with nVertices vertices
func NewPolygonMesh(nVertices int, coordIndex []int) (*PolygonMesh, error) {
	h, err := NewHalfEdges(nVertices, coordIndex)
	if err != nil {
		return nil, err
	}

	nV := h.NumberOfVertices()
	pm := &PolygonMesh{
		HalfEdges:        h,
		nPartsVertex:     make([]int, nV),
		nCornersVertex:   make([]int, nV),
		isBoundaryVertex: make([]bool, nV),
	}

	for iE := 0; iE < h.NumberOfEdges(); iE++ {
		if h.IsBoundaryEdge(iE) {
			pm.isBoundaryVertex[h.Vertex0(iE)] = true
			pm.isBoundaryVertex[h.Vertex1(iE)] = true
		}
	}

	partition := pm.cornerPartition(func(iE int) bool {
		return h.IsRegularEdge(iE)
	})
	for iC, iV := range coordIndex {
		if iV < 0 {
			continue
		}
		pm.nCornersVertex[iV]++
		if partition.Find(iC) == iC {
			pm.nPartsVertex[iV]++
		}
	}

	for iV := 0; iV < nV; iV++ {
		if pm.nPartsVertex[iV] > 1 {
			pm.nSingularVertices++
		}
		if pm.nCornersVertex[iV] == 0 {
			pm.nIsolatedVertices++
		}
	}

	return pm, nil
}

// cornerPartition partitions all positions of the coordinate index buffer.
// For every edge accepted by joinAcross, the first half-edge of the edge is
// joined with each later one: each of its two corners is joined with the
// corner of the other half-edge that points to the same vertex. Sentinel
// positions stay singletons.
func (pm *PolygonMesh) cornerPartition(joinAcross func(iE int) bool) *Partition {
	partition := NewPartition(len(pm.coordIndex))
	for iE := 0; iE < pm.NumberOfEdges(); iE++ {
		if pm.NumberOfEdgeHalfEdges(iE) < 2 || !joinAcross(iE) {
			continue
		}
		hA := pm.EdgeHalfEdge(iE, 0)
		nA := pm.Next(hA)
		for j := 1; j < pm.NumberOfEdgeHalfEdges(iE); j++ {
			hB := pm.EdgeHalfEdge(iE, j)
			nB := pm.Next(hB)
			if pm.Src(hA) == pm.Src(hB) {
				partition.Join(hA, hB)
				partition.Join(nA, nB)
			} else {
				partition.Join(hA, nB)
				partition.Join(nA, hB)
			}
		}
	}
	return partition
}

func (pm *PolygonMesh) validVertex(iV int) bool {
	return iV >= 0 && iV < pm.NumberOfVertices()
}

// IsBoundaryVertex reports whether iV is an end of a boundary edge
func (pm *PolygonMesh) IsBoundaryVertex(iV int) bool {
	return pm.validVertex(iV) && pm.isBoundaryVertex[iV]
}

// IsInternalVertex reports whether iV is not a boundary vertex
func (pm *PolygonMesh) IsInternalVertex(iV int) bool {
	return pm.validVertex(iV) && !pm.isBoundaryVertex[iV]
}

// IsSingularVertex reports whether the corners pointing to iV fall into
// more than one part once corners are joined across regular edges.
func (pm *PolygonMesh) IsSingularVertex(iV int) bool {
	return pm.validVertex(iV) && pm.nPartsVertex[iV] > 1
}

// IsRegularVertex reports whether the corners pointing to iV form one part
func (pm *PolygonMesh) IsRegularVertex(iV int) bool {
	return pm.validVertex(iV) && pm.nPartsVertex[iV] == 1
}

// IsIsolatedVertex reports whether no corner points to iV
func (pm *PolygonMesh) IsIsolatedVertex(iV int) bool {
	return pm.validVertex(iV) && pm.nCornersVertex[iV] == 0
}

// NumberOfVertexParts returns the number of corner parts pointing to iV
func (pm *PolygonMesh) NumberOfVertexParts(iV int) int {
	if !pm.validVertex(iV) {
		return 0
	}
	return pm.nPartsVertex[iV]
}

// NumberOfVertexCorners returns the number of corners pointing to iV
func (pm *PolygonMesh) NumberOfVertexCorners(iV int) int {
	if !pm.validVertex(iV) {
		return 0
	}
	return pm.nCornersVertex[iV]
}

// HasSingularVertices reports whether at least one vertex is singular
func (pm *PolygonMesh) HasSingularVertices() bool {
	return pm.nSingularVertices > 0
}

// IsRegular reports whether the mesh has neither singular edges nor
// singular vertices.
func (pm *PolygonMesh) IsRegular() bool {
	return !pm.HasSingularEdges() && !pm.HasSingularVertices()
}

// HasBoundary reports whether the mesh has at least one boundary edge
func (pm *PolygonMesh) HasBoundary() bool {
	return pm.HasBoundaryEdges()
}
