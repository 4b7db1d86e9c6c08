package ifs

import "fmt"

// InvertFaces reverses the corner order of every face with invert[iF] set.
// Per-corner property indices are reversed with their corners, per-face
// normals are negated. It returns the number of inverted faces.
func (s *IndexedFaceSet) InvertFaces(invert []bool) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	nF := s.NumberOfFaces()
	if len(invert) != nF {
		return 0, fmt.Errorf("%w: %d inversion flags for %d faces", ErrInvalid, len(invert), nF)
	}

	inverted := 0
	iF := 0
	first := 0
	for i, iV := range s.CoordIndex {
		if iV >= 0 {
			continue
		}
		if invert[iF] {
			reverseRun(s.CoordIndex, first, i)
			for _, p := range []*Property{&s.Normal, &s.Color, &s.TexCoord} {
				if p.Binding == BindingPerCorner {
					reverseRun(p.Index, first, i)
				}
			}
			s.invertFaceNormal(iF)
			inverted++
		}
		first = i + 1
		iF++
	}

	if inverted > 0 {
		s.Invalidate()
	}
	return inverted, nil
}

// reverseRun reverses run[first:end]
func reverseRun(run []int, first, end int) {
	for a, b := first, end-1; a < b; a, b = a+1, b-1 {
		run[a], run[b] = run[b], run[a]
	}
}

func (s *IndexedFaceSet) invertFaceNormal(iF int) {
	switch s.Normal.Binding {
	case BindingPerFace:
		for k := 3 * iF; k < 3*iF+3; k++ {
			s.Normal.Values[k] = -s.Normal.Values[k]
		}
	case BindingPerFaceIndexed:
		// the normal may be shared with faces that keep their orientation
		i := s.Normal.Index[iF]
		n := s.Normal.Values[3*i : 3*i+3]
		s.Normal.Index[iF] = len(s.Normal.Values) / 3
		s.Normal.Values = append(s.Normal.Values, -n[0], -n[1], -n[2])
	}
}

// Orient inverts the faces needed to make the mesh oriented, keeping the
// first face of every connected component. It returns the number of
// connected components of the dual graph and the number of inverted faces.
func (s *IndexedFaceSet) Orient() (nCC, inverted int, err error) {
	mesh, err := s.Topology()
	if err != nil {
		return 0, 0, err
	}
	nCC, _, invert := mesh.Orient()
	if nCC == 0 {
		if mesh.NumberOfFaces() == 0 {
			return 0, 0, nil
		}
		return 0, 0, ErrNotOrientable
	}
	inverted, err = s.InvertFaces(invert)
	if err != nil {
		return 0, 0, err
	}
	return nCC, inverted, nil
}
