// Package ifs holds indexed face sets: vertex coordinates, a face-separated
// coordinate index and optional normal, color and texture coordinate
// properties. It applies the orientation and manifold rewrites computed by
// the topology package to the whole set, properties included.
package ifs

import (
	"errors"
	"fmt"

	"github.com/philipparndt/meshtopo/pkg/topology"
)

var (
	// ErrInvalid is returned when an indexed face set is inconsistent
	ErrInvalid = errors.New("invalid indexed face set")
	// ErrNotOrientable is returned when no choice of face orientations
	// makes the mesh oriented
	ErrNotOrientable = errors.New("mesh is not orientable")
)

// Property is a normal, color or texture coordinate attribute
type Property struct {
	Binding Binding   `yaml:"binding,omitempty" json:"binding,omitempty"`
	Values  []float32 `yaml:"values,omitempty" json:"values,omitempty"`
	Index   []int     `yaml:"index,omitempty" json:"index,omitempty"`
}

// IndexedFaceSet is a polygon mesh with optional per-vertex, per-face or
// per-corner properties.
type IndexedFaceSet struct {
	Name       string    `yaml:"name,omitempty" json:"name,omitempty"`
	Coord      []float32 `yaml:"coord" json:"coord"`
	CoordIndex []int     `yaml:"coordIndex" json:"coordIndex"`
	Normal     Property  `yaml:"normal,omitempty" json:"normal,omitempty"`
	Color      Property  `yaml:"color,omitempty" json:"color,omitempty"`
	TexCoord   Property  `yaml:"texCoord,omitempty" json:"texCoord,omitempty"`

	mesh *topology.PolygonMesh
}

// New creates an indexed face set without properties
func New(name string, coord []float32, coordIndex []int) *IndexedFaceSet {
	return &IndexedFaceSet{
		Name:       name,
		Coord:      coord,
		CoordIndex: coordIndex,
	}
}

// NumberOfVertices returns the number of coordinate triples
func (s *IndexedFaceSet) NumberOfVertices() int {
	return len(s.Coord) / 3
}

// NumberOfFaces returns the number of face separators
func (s *IndexedFaceSet) NumberOfFaces() int {
	nF := 0
	for _, iV := range s.CoordIndex {
		if iV < 0 {
			nF++
		}
	}
	return nF
}

// NumberOfCorners returns the number of non-separator positions
func (s *IndexedFaceSet) NumberOfCorners() int {
	return len(s.CoordIndex) - s.NumberOfFaces()
}

// IsTriangleMesh reports whether every face has exactly three corners
func (s *IndexedFaceSet) IsTriangleMesh() bool {
	size := 0
	for _, iV := range s.CoordIndex {
		if iV >= 0 {
			size++
			continue
		}
		if size != 3 {
			return false
		}
		size = 0
	}
	return size == 0
}

// Validate checks the coordinate index against the coordinates and every
// property against its binding.
func (s *IndexedFaceSet) Validate() error {
	if len(s.Coord)%3 != 0 {
		return fmt.Errorf("%w: %d coordinate values is not a multiple of 3", ErrInvalid, len(s.Coord))
	}
	if err := topology.ValidateCoordIndex(s.NumberOfVertices(), s.CoordIndex); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := s.validateProperty("normal", s.Normal, 3); err != nil {
		return err
	}
	if err := s.validateProperty("color", s.Color, 3); err != nil {
		return err
	}
	if err := s.validateProperty("texCoord", s.TexCoord, 2); err != nil {
		return err
	}
	return nil
}

func (s *IndexedFaceSet) validateProperty(name string, p Property, dim int) error {
	if len(p.Values)%dim != 0 {
		return fmt.Errorf("%w: %s has %d values, not a multiple of %d", ErrInvalid, name, len(p.Values), dim)
	}
	nValues := len(p.Values) / dim

	switch p.Binding {
	case BindingNone:
		return nil
	case BindingPerVertex:
		if nValues != s.NumberOfVertices() {
			return fmt.Errorf("%w: %s has %d values for %d vertices", ErrInvalid, name, nValues, s.NumberOfVertices())
		}
	case BindingPerFace:
		if nValues != s.NumberOfFaces() {
			return fmt.Errorf("%w: %s has %d values for %d faces", ErrInvalid, name, nValues, s.NumberOfFaces())
		}
	case BindingPerFaceIndexed:
		if len(p.Index) != s.NumberOfFaces() {
			return fmt.Errorf("%w: %s has %d indices for %d faces", ErrInvalid, name, len(p.Index), s.NumberOfFaces())
		}
		for iF, i := range p.Index {
			if i < 0 || i >= nValues {
				return fmt.Errorf("%w: %s index %d of face %d out of range", ErrInvalid, name, i, iF)
			}
		}
	case BindingPerCorner:
		if len(p.Index) != len(s.CoordIndex) {
			return fmt.Errorf("%w: %s has %d indices for %d corners", ErrInvalid, name, len(p.Index), len(s.CoordIndex))
		}
		for iC, i := range p.Index {
			if (s.CoordIndex[iC] < 0) != (i < 0) {
				return fmt.Errorf("%w: %s face separators do not match at position %d", ErrInvalid, name, iC)
			}
			if i >= nValues {
				return fmt.Errorf("%w: %s index %d at position %d out of range", ErrInvalid, name, i, iC)
			}
		}
	default:
		return fmt.Errorf("%w: %s has unknown binding %v", ErrInvalid, name, p.Binding)
	}
	return nil
}

// Topology returns the polygon mesh of the coordinate index. It is built on
// first use and kept until the set is modified through one of its methods
// or Invalidate is called. The mesh owns a copy of the coordinate index, so
// a mesh obtained earlier keeps describing the faces it was built from.
func (s *IndexedFaceSet) Topology() (*topology.PolygonMesh, error) {
	if s.mesh != nil {
		return s.mesh, nil
	}
	coordIndex := append([]int(nil), s.CoordIndex...)
	mesh, err := topology.NewPolygonMesh(s.NumberOfVertices(), coordIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to build topology: %w", err)
	}
	s.mesh = mesh
	return mesh, nil
}

// Invalidate drops the cached topology. Call it after modifying Coord or
// CoordIndex directly.
func (s *IndexedFaceSet) Invalidate() {
	s.mesh = nil
}

// Clone returns a deep copy without the cached topology
func (s *IndexedFaceSet) Clone() *IndexedFaceSet {
	return &IndexedFaceSet{
		Name:       s.Name,
		Coord:      append([]float32(nil), s.Coord...),
		CoordIndex: append([]int(nil), s.CoordIndex...),
		Normal:     s.Normal.clone(),
		Color:      s.Color.clone(),
		TexCoord:   s.TexCoord.clone(),
	}
}

func (p Property) clone() Property {
	return Property{
		Binding: p.Binding,
		Values:  append([]float32(nil), p.Values...),
		Index:   append([]int(nil), p.Index...),
	}
}
