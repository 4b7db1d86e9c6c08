// Package topology builds edges, half-edges and vertex/edge classification
// on top of an indexed face set, and implements the connected component,
// orientation and manifold conversion algorithms that depend on them.
package topology

import (
	"errors"
	"fmt"
)

// NotFound is returned by index lookups that have no answer
const NotFound = -1

// Sentinel terminates every face run in a coordinate index buffer
const Sentinel = -1

var (
	// ErrInvalidIndex is returned when a coordinate index is out of range
	ErrInvalidIndex = errors.New("invalid vertex index")
	// ErrEmptyFace is returned for a face run without vertices
	ErrEmptyFace = errors.New("empty face")
	// ErrUnterminatedFace is returned when the buffer does not end with a sentinel
	ErrUnterminatedFace = errors.New("unterminated face")
)

type vertexPair struct {
	v0, v1 int
}

func canonicalPair(v0, v1 int) vertexPair {
	if v1 < v0 {
		v0, v1 = v1, v0
	}
	return vertexPair{v0: v0, v1: v1}
}

// Edges is the undirected edge set of a mesh. Each distinct unordered
// vertex pair gets an id in first-encounter order.
type Edges struct {
	nVertices int
	vertex0   []int
	vertex1   []int
	index     map[vertexPair]int
}

// NewEdges creates an empty edge table for nVertices vertices
func NewEdges(nVertices int) *Edges {
	if nVertices < 0 {
		nVertices = 0
	}
	return &Edges{
		nVertices: nVertices,
		vertex0:   make([]int, 0),
		vertex1:   make([]int, 0),
		index:     make(map[vertexPair]int),
	}
}

// BuildEdges validates coordIndex and inserts one edge per consecutive
// vertex pair of every face, including the pair closing the face.
func BuildEdges(nVertices int, coordIndex []int) (*Edges, error) {
	if err := ValidateCoordIndex(nVertices, coordIndex); err != nil {
		return nil, err
	}

	edges := NewEdges(nVertices)
	first := 0
	for i, iV := range coordIndex {
		if iV >= 0 {
			continue
		}
		for j := first; j < i; j++ {
			next := j + 1
			if next == i {
				next = first
			}
			edges.Insert(coordIndex[j], coordIndex[next])
		}
		first = i + 1
	}
	return edges, nil
}

// ValidateCoordIndex checks that every index is a vertex of the mesh or a
// sentinel, that no face is empty and that the last face is terminated.
func ValidateCoordIndex(nVertices int, coordIndex []int) error {
	faceSize := 0
	face := 0
	for i, iV := range coordIndex {
		switch {
		case iV == Sentinel:
			if faceSize == 0 {
				return fmt.Errorf("face %d at position %d: %w", face, i, ErrEmptyFace)
			}
			faceSize = 0
			face++
		case iV < Sentinel || iV >= nVertices:
			return fmt.Errorf("index %d at position %d (%d vertices): %w", iV, i, nVertices, ErrInvalidIndex)
		default:
			faceSize++
		}
	}
	if faceSize > 0 {
		return fmt.Errorf("face %d: %w", face, ErrUnterminatedFace)
	}
	return nil
}

// Insert returns the id of the edge joining v0 and v1, creating it if
// needed. It returns NotFound if either vertex is out of range.
func (e *Edges) Insert(v0, v1 int) int {
	if v0 < 0 || v0 >= e.nVertices || v1 < 0 || v1 >= e.nVertices {
		return NotFound
	}
	key := canonicalPair(v0, v1)
	if iE, ok := e.index[key]; ok {
		return iE
	}
	iE := len(e.vertex0)
	e.vertex0 = append(e.vertex0, key.v0)
	e.vertex1 = append(e.vertex1, key.v1)
	e.index[key] = iE
	return iE
}

// Edge returns the id of the edge joining v0 and v1, or NotFound
func (e *Edges) Edge(v0, v1 int) int {
	if iE, ok := e.index[canonicalPair(v0, v1)]; ok {
		return iE
	}
	return NotFound
}

// Vertex0 returns the smaller endpoint of edge iE
func (e *Edges) Vertex0(iE int) int {
	if iE < 0 || iE >= len(e.vertex0) {
		return NotFound
	}
	return e.vertex0[iE]
}

// Vertex1 returns the larger endpoint of edge iE
func (e *Edges) Vertex1(iE int) int {
	if iE < 0 || iE >= len(e.vertex1) {
		return NotFound
	}
	return e.vertex1[iE]
}

// NumberOfVertices returns the number of vertices the table was built for
func (e *Edges) NumberOfVertices() int {
	return e.nVertices
}

// NumberOfEdges returns the number of distinct edges
func (e *Edges) NumberOfEdges() int {
	return len(e.vertex0)
}
