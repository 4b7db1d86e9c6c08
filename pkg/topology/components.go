package topology

// vertexPartition joins the two ends of every edge of the primal graph
func (pm *PolygonMesh) vertexPartition() *Partition {
	partition := NewPartition(pm.NumberOfVertices())
	for iE := 0; iE < pm.NumberOfEdges(); iE++ {
		partition.Join(pm.Vertex0(iE), pm.Vertex1(iE))
	}
	return partition
}

// VertexComponents labels every vertex with its connected component in the
// primal graph. Components are numbered in ascending order of their lowest
// vertex; isolated vertices are components of their own.
func (pm *PolygonMesh) VertexComponents() (int, []int) {
	partition := pm.vertexPartition()
	return partition.NumberOfParts(), partition.Labels()
}

// ConnectedComponentsPrimal returns the number of connected components of
// the primal graph and labels each face with the component of its first
// vertex.
func (pm *PolygonMesh) ConnectedComponentsPrimal() (int, []int) {
	nCC, vertexLabel := pm.VertexComponents()

	nF := pm.NumberOfFaces()
	faceLabel := make([]int, nF)
	for iF := 0; iF < nF; iF++ {
		faceLabel[iF] = vertexLabel[pm.Src(pm.FaceFirstCorner(iF))]
	}
	return nCC, faceLabel
}

// ConnectedComponentsDual returns the number of connected components of the
// dual graph, where two faces are adjacent when they share a regular edge,
// and labels each face with its component in ascending face order.
func (pm *PolygonMesh) ConnectedComponentsDual() (int, []int) {
	partition := NewPartition(pm.NumberOfFaces())
	for iE := 0; iE < pm.NumberOfEdges(); iE++ {
		if !pm.IsRegularEdge(iE) {
			continue
		}
		partition.Join(pm.EdgeFace(iE, 0), pm.EdgeFace(iE, 1))
	}
	return partition.NumberOfParts(), partition.Labels()
}
