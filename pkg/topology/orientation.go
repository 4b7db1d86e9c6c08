package topology

// IsOriented reports whether every regular edge is consistently oriented.
// A mesh with singular edges is never oriented. Singular vertices play no
// role since cutting through them does not change orientation.
func (pm *PolygonMesh) IsOriented() bool {
	if pm.HasSingularEdges() {
		return false
	}
	for iE := 0; iE < pm.NumberOfEdges(); iE++ {
		if pm.IsRegularEdge(iE) && !pm.HalfEdges.IsOriented(pm.EdgeHalfEdge(iE, 0)) {
			return false
		}
	}
	return true
}

// IsOrientable reports whether some choice of per-face inversions turns the
// mesh into an oriented one. A mesh with singular edges is never
// orientable.
func (pm *PolygonMesh) IsOrientable() bool {
	if pm.HasSingularEdges() {
		return false
	}
	if pm.IsOriented() {
		return true
	}
	_, _, _, ok := pm.traverseDual()
	return ok
}

// Orient partitions the faces into connected components of the dual graph
// and decides which faces must be inverted for the mesh to be oriented. The
// first face of each component keeps its orientation. It returns the number
// of components, the component of each face and the inversion flags, or
// zero and nil slices when the mesh is not orientable.
func (pm *PolygonMesh) Orient() (int, []int, []bool) {
	if pm.HasSingularEdges() {
		return 0, nil, nil
	}
	nCC, ccIndex, invertFace, ok := pm.traverseDual()
	if !ok {
		return 0, nil, nil
	}
	return nCC, ccIndex, invertFace
}

// traverseDual walks the dual graph depth first from the lowest unvisited
// face, propagating for each face whether it has to be inverted to agree
// with the root of its component. It stops with ok == false as soon as a
// face is reached with contradicting flags.
func (pm *PolygonMesh) traverseDual() (nCC int, ccIndex []int, invertFace []bool, ok bool) {
	nF := pm.NumberOfFaces()
	visited := make([]bool, nF)
	invertFace = make([]bool, nF)
	ccIndex = make([]int, nF)
	stack := make([]int, 0)

	pushFace := func(iF int) {
		first := pm.FaceFirstCorner(iF)
		for iC := first + pm.FaceSize(iF) - 1; iC >= first; iC-- {
			stack = append(stack, iC)
		}
	}

	for root := 0; root < nF; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		ccIndex[root] = nCC
		pushFace(root)

		for len(stack) > 0 {
			iC := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			iCt := pm.Twin(iC)
			if iCt < 0 {
				continue
			}
			iF := pm.Face(iC)
			iFt := pm.Face(iCt)
			// crossing a consistently oriented edge keeps the flag,
			// crossing an inconsistent one flips it
			expected := invertFace[iF] != !pm.HalfEdges.IsOriented(iC)

			if visited[iFt] {
				if invertFace[iFt] != expected {
					return 0, nil, nil, false
				}
				continue
			}
			visited[iFt] = true
			invertFace[iFt] = expected
			ccIndex[iFt] = nCC
			pushFace(iFt)
		}
		nCC++
	}
	return nCC, ccIndex, invertFace, true
}
