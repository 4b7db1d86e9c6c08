package analysis

import (
	"math"

	"github.com/philipparndt/meshtopo/pkg/geometry"
	"github.com/philipparndt/meshtopo/pkg/topology"
)

// TopologyReport summarizes the connectivity of a polygon mesh
type TopologyReport struct {
	Vertices         int `yaml:"vertices" json:"vertices"`
	Edges            int `yaml:"edges" json:"edges"`
	Faces            int `yaml:"faces" json:"faces"`
	Corners          int `yaml:"corners" json:"corners"`
	BoundaryVertices int `yaml:"boundaryVertices" json:"boundaryVertices"`
	SingularVertices int `yaml:"singularVertices" json:"singularVertices"`
	IsolatedVertices int `yaml:"isolatedVertices" json:"isolatedVertices"`
	BoundaryEdges    int `yaml:"boundaryEdges" json:"boundaryEdges"`
	RegularEdges     int `yaml:"regularEdges" json:"regularEdges"`
	SingularEdges    int `yaml:"singularEdges" json:"singularEdges"`

	IsRegular    bool `yaml:"regular" json:"regular"`
	HasBoundary  bool `yaml:"boundary" json:"boundary"`
	IsOriented   bool `yaml:"oriented" json:"oriented"`
	IsOrientable bool `yaml:"orientable" json:"orientable"`

	PrimalComponents int `yaml:"primalComponents" json:"primalComponents"`
	DualComponents   int `yaml:"dualComponents" json:"dualComponents"`

	// EulerCharacteristic ignores isolated vertices
	EulerCharacteristic int `yaml:"eulerCharacteristic" json:"eulerCharacteristic"`
	// Genus is -1 unless the mesh is closed, regular and orientable
	Genus int `yaml:"genus" json:"genus"`
}

// AnalyzeTopology computes the topology report of a mesh
func AnalyzeTopology(pm *topology.PolygonMesh) *TopologyReport {
	r := &TopologyReport{
		Vertices:         pm.NumberOfVertices(),
		Edges:            pm.NumberOfEdges(),
		Faces:            pm.NumberOfFaces(),
		Corners:          pm.NumberOfCorners(),
		BoundaryVertices: Count(BoundaryVertexSelection(pm)),
		SingularVertices: Count(SingularVertexSelection(pm)),
		IsolatedVertices: pm.NumberOfIsolatedVertices(),
		IsRegular:        pm.IsRegular(),
		HasBoundary:      pm.HasBoundary(),
		IsOriented:       pm.IsOriented(),
		IsOrientable:     pm.IsOrientable(),
		Genus:            -1,
	}
	for _, kind := range ClassifyEdges(pm) {
		switch kind {
		case BoundaryEdge:
			r.BoundaryEdges++
		case RegularEdge:
			r.RegularEdges++
		case SingularEdge:
			r.SingularEdges++
		}
	}
	r.PrimalComponents, _ = pm.ConnectedComponentsPrimal()
	r.DualComponents, _ = pm.ConnectedComponentsDual()

	r.EulerCharacteristic = r.Vertices - r.IsolatedVertices - r.Edges + r.Faces
	if r.Faces > 0 && r.IsRegular && !r.HasBoundary && r.IsOrientable {
		r.Genus = (2*r.DualComponents - r.EulerCharacteristic) / 2
	}
	return r
}

// GeometryReport contains measurements taken on the vertex coordinates
type GeometryReport struct {
	BoundingBox   geometry.BoundingBox `yaml:"boundingBox" json:"boundingBox"`
	Dimensions    geometry.Vector3     `yaml:"dimensions" json:"dimensions"`
	SurfaceArea   float64              `yaml:"surfaceArea" json:"surfaceArea"`
	Volume        float64              `yaml:"volume" json:"volume"`
	MinEdgeLength float64              `yaml:"minEdgeLength" json:"minEdgeLength"`
	MaxEdgeLength float64              `yaml:"maxEdgeLength" json:"maxEdgeLength"`
	AvgEdgeLength float64              `yaml:"avgEdgeLength" json:"avgEdgeLength"`
}

// AnalyzeGeometry measures the mesh with the given coordinates, three per
// vertex. Volume is signed and only meaningful for closed oriented meshes.
func AnalyzeGeometry(pm *topology.PolygonMesh, coord []float32) *GeometryReport {
	r := &GeometryReport{
		BoundingBox: geometry.NewBoundingBox(),
	}
	for iV := 0; iV < pm.NumberOfVertices(); iV++ {
		if !pm.IsIsolatedVertex(iV) {
			r.BoundingBox.Extend(geometry.Vertex(coord, iV))
		}
	}
	if r.BoundingBox.IsEmpty() {
		r.BoundingBox = geometry.BoundingBox{}
	}
	r.Dimensions = r.BoundingBox.Size()

	for iF := 0; iF < pm.NumberOfFaces(); iF++ {
		face := FacePolygon(pm, coord, iF)
		r.SurfaceArea += face.Area()
		r.Volume += face.SignedVolume()
	}

	if pm.NumberOfEdges() == 0 {
		return r
	}
	r.MinEdgeLength = math.MaxFloat64
	total := 0.0
	for iE := 0; iE < pm.NumberOfEdges(); iE++ {
		length := geometry.Vertex(coord, pm.Vertex0(iE)).Distance(geometry.Vertex(coord, pm.Vertex1(iE)))
		total += length
		r.MinEdgeLength = math.Min(r.MinEdgeLength, length)
		r.MaxEdgeLength = math.Max(r.MaxEdgeLength, length)
	}
	r.AvgEdgeLength = total / float64(pm.NumberOfEdges())
	return r
}

// FacePolygon returns the corner positions of face iF
func FacePolygon(pm *topology.PolygonMesh, coord []float32, iF int) geometry.Polygon {
	first := pm.FaceFirstCorner(iF)
	face := make(geometry.Polygon, pm.FaceSize(iF))
	for j := range face {
		face[j] = geometry.Vertex(coord, pm.Src(first+j))
	}
	return face
}
