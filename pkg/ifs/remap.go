package ifs

import "fmt"

// Remap replaces the vertices of the set. vIndexMap holds the input vertex
// of every output vertex and coordIndexOut the new coordinate index, which
// must have the face structure of the current one. Coordinates and
// per-vertex properties are copied through the map; per-face and per-corner
// properties are kept since faces and corners do not move.
func (s *IndexedFaceSet) Remap(vIndexMap, coordIndexOut []int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	nV := s.NumberOfVertices()
	if len(coordIndexOut) != len(s.CoordIndex) {
		return fmt.Errorf("%w: remapped coordinate index has %d positions, want %d", ErrInvalid, len(coordIndexOut), len(s.CoordIndex))
	}
	for iC, iV := range coordIndexOut {
		if (iV < 0) != (s.CoordIndex[iC] < 0) {
			return fmt.Errorf("%w: remapped face separators do not match at position %d", ErrInvalid, iC)
		}
		if iV >= len(vIndexMap) {
			return fmt.Errorf("%w: remapped index %d at position %d out of range", ErrInvalid, iV, iC)
		}
	}
	for iVout, iV := range vIndexMap {
		if iV < 0 || iV >= nV {
			return fmt.Errorf("%w: output vertex %d maps to %d of %d vertices", ErrInvalid, iVout, iV, nV)
		}
	}

	s.Coord = remapValues(s.Coord, vIndexMap, 3)
	if s.Normal.Binding == BindingPerVertex {
		s.Normal.Values = remapValues(s.Normal.Values, vIndexMap, 3)
	}
	if s.Color.Binding == BindingPerVertex {
		s.Color.Values = remapValues(s.Color.Values, vIndexMap, 3)
	}
	if s.TexCoord.Binding == BindingPerVertex {
		s.TexCoord.Values = remapValues(s.TexCoord.Values, vIndexMap, 2)
	}
	s.CoordIndex = coordIndexOut
	s.Invalidate()
	return nil
}

func remapValues(values []float32, vIndexMap []int, dim int) []float32 {
	out := make([]float32, 0, len(vIndexMap)*dim)
	for _, iV := range vIndexMap {
		out = append(out, values[dim*iV:dim*iV+dim]...)
	}
	return out
}

// RemoveIsolatedVertices drops vertices no face uses and returns how many
// were removed.
func (s *IndexedFaceSet) RemoveIsolatedVertices() (int, error) {
	mesh, err := s.Topology()
	if err != nil {
		return 0, err
	}
	coordMap, coordIndexOut, ok := mesh.RemoveIsolatedVertices()
	if !ok {
		return 0, nil
	}
	removed := s.NumberOfVertices() - len(coordMap)
	if err := s.Remap(coordMap, coordIndexOut); err != nil {
		return 0, err
	}
	return removed, nil
}

// CutThroughSingularVertices splits singular vertices and drops isolated
// ones. It returns the change in the number of vertices, and false when
// the mesh was left untouched.
func (s *IndexedFaceSet) CutThroughSingularVertices() (int, bool, error) {
	mesh, err := s.Topology()
	if err != nil {
		return 0, false, err
	}
	return s.applySplit(mesh.CutThroughSingularVertices())
}

// ConvertToManifold cuts through singular vertices, singular edges and
// inconsistently oriented edges. With orient set the faces are oriented
// first so that only singularities are cut; singular edges are cut before
// orienting since they block it. The set is left untouched on error.
func (s *IndexedFaceSet) ConvertToManifold(orient bool) (int, bool, error) {
	if !orient {
		mesh, err := s.Topology()
		if err != nil {
			return 0, false, err
		}
		return s.applySplit(mesh.ConvertToManifold())
	}

	work := s.Clone()
	mesh, err := work.Topology()
	if err != nil {
		return 0, false, err
	}
	nV := work.NumberOfVertices()
	changed := false
	if mesh.HasSingularEdges() {
		if _, changed, err = work.applySplit(mesh.CutThroughSingularEdges()); err != nil {
			return 0, false, err
		}
	}
	if _, _, err := work.Orient(); err != nil {
		return 0, false, err
	}
	if mesh, err = work.Topology(); err != nil {
		return 0, false, err
	}
	_, split, err := work.applySplit(mesh.ConvertToManifold())
	if err != nil {
		return 0, false, err
	}

	*s = *work
	return s.NumberOfVertices() - nV, changed || split, nil
}

func (s *IndexedFaceSet) applySplit(vIndexMap, coordIndexOut []int) (int, bool, error) {
	if vIndexMap == nil {
		return 0, false, nil
	}
	delta := len(vIndexMap) - s.NumberOfVertices()
	if err := s.Remap(vIndexMap, coordIndexOut); err != nil {
		return 0, false, err
	}
	return delta, true, nil
}
