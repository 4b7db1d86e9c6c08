package topology

// NumberOfIsolatedVertices returns the number of vertices no corner points to
func (pm *PolygonMesh) NumberOfIsolatedVertices() int {
	return pm.nIsolatedVertices
}

// IsolatedVertices returns the isolated vertices in ascending order
func (pm *PolygonMesh) IsolatedVertices() []int {
	isolated := make([]int, 0, pm.nIsolatedVertices)
	for iV, n := range pm.nCornersVertex {
		if n == 0 {
			isolated = append(isolated, iV)
		}
	}
	return isolated
}

// RemoveIsolatedVertices compacts the vertex ids. coordMap holds the input
// vertex of each output vertex in ascending order, and coordIndexOut is the
// coordinate index renumbered accordingly. ok is false, with nil slices,
// when the mesh has no isolated vertices.
func (pm *PolygonMesh) RemoveIsolatedVertices() (coordMap, coordIndexOut []int, ok bool) {
	if pm.nIsolatedVertices == 0 {
		return nil, nil, false
	}

	nV := pm.NumberOfVertices()
	newIndex := make([]int, nV)
	coordMap = make([]int, 0, nV-pm.nIsolatedVertices)
	for iV := 0; iV < nV; iV++ {
		newIndex[iV] = NotFound
		if pm.nCornersVertex[iV] > 0 {
			newIndex[iV] = len(coordMap)
			coordMap = append(coordMap, iV)
		}
	}

	coordIndexOut = make([]int, len(pm.coordIndex))
	for iC, iV := range pm.coordIndex {
		if iV < 0 {
			coordIndexOut[iC] = Sentinel
			continue
		}
		coordIndexOut[iC] = newIndex[iV]
	}
	return coordMap, coordIndexOut, true
}

// CutThroughSingularVertices gives every group of corners that is connected
// across edges its own vertex. Corners are joined across every edge with two
// or more half-edges, so singular vertices are cut while singular edges are
// left as they are. Isolated vertices are removed. Both results are nil
// when the mesh does not change.
func (pm *PolygonMesh) CutThroughSingularVertices() (vIndexMap, coordIndexOut []int) {
	partition := pm.cornerPartition(func(int) bool {
		return true
	})
	return pm.splitVertices(partition)
}

// CutThroughSingularEdges is like CutThroughSingularVertices, but corners are
// only joined across regular edges, whatever their orientation. Singular
// edges are cut so that the result can be oriented whenever each of its
// components is orientable.
func (pm *PolygonMesh) CutThroughSingularEdges() (vIndexMap, coordIndexOut []int) {
	partition := pm.cornerPartition(pm.IsRegularEdge)
	return pm.splitVertices(partition)
}

// ConvertToManifold is like CutThroughSingularVertices, but corners are only
// joined across regular edges that are consistently oriented. Singular
// edges and inconsistently oriented edges are cut. Meshes should be
// oriented first; otherwise the result may gain components or holes.
func (pm *PolygonMesh) ConvertToManifold() (vIndexMap, coordIndexOut []int) {
	partition := pm.cornerPartition(func(iE int) bool {
		return pm.IsRegularEdge(iE) && pm.HalfEdges.IsOriented(pm.EdgeHalfEdge(iE, 0))
	})
	return pm.splitVertices(partition)
}

// splitVertices creates one output vertex per corner part. Sentinels are
// singletons, so the output has parts minus faces vertices. Output ids are
// ordered by input vertex, then by the position of the part's first corner.
func (pm *PolygonMesh) splitVertices(partition *Partition) (vIndexMap, coordIndexOut []int) {
	nVout := partition.NumberOfParts() - pm.NumberOfFaces()

	nV := pm.NumberOfVertices()
	roots := make([][]int, nV)
	seen := make(map[int]bool, nVout)
	for iC, iV := range pm.coordIndex {
		if iV < 0 {
			continue
		}
		if root := partition.Find(iC); !seen[root] {
			seen[root] = true
			roots[iV] = append(roots[iV], root)
		}
	}

	vIndexMap = make([]int, 0, nVout)
	rootVertex := make(map[int]int, nVout)
	for iV := 0; iV < nV; iV++ {
		for _, root := range roots[iV] {
			rootVertex[root] = len(vIndexMap)
			vIndexMap = append(vIndexMap, iV)
		}
	}

	if nVout == nV && isIdentity(vIndexMap) {
		return nil, nil
	}

	coordIndexOut = make([]int, len(pm.coordIndex))
	for iC, iV := range pm.coordIndex {
		if iV < 0 {
			coordIndexOut[iC] = Sentinel
			continue
		}
		coordIndexOut[iC] = rootVertex[partition.Find(iC)]
	}
	return vIndexMap, coordIndexOut
}

func isIdentity(m []int) bool {
	for i, v := range m {
		if i != v {
			return false
		}
	}
	return true
}
