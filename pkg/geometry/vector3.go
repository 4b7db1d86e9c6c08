package geometry

import "math"

// Vector3 is a mesh vertex position or a direction
type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vertex reads vertex iV from a flat x, y, z coordinate array as stored by
// indexed face sets.
func Vertex(coord []float32, iV int) Vector3 {
	p := coord[3*iV : 3*iV+3]
	return NewVector3(float64(p[0]), float64(p[1]), float64(p[2]))
}

// zip applies f to the matching components of v and w
func (v Vector3) zip(w Vector3, f func(a, b float64) float64) Vector3 {
	return NewVector3(f(v.X, w.X), f(v.Y, w.Y), f(v.Z, w.Z))
}

func (v Vector3) Add(w Vector3) Vector3 {
	return v.zip(w, func(a, b float64) float64 { return a + b })
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return v.zip(w, func(a, b float64) float64 { return a - b })
}

// Min and Max are component-wise
func (v Vector3) Min(w Vector3) Vector3 { return v.zip(w, math.Min) }

func (v Vector3) Max(w Vector3) Vector3 { return v.zip(w, math.Max) }

// Mul scales the vector
func (v Vector3) Mul(s float64) Vector3 {
	return NewVector3(v.X*s, v.Y*s, v.Z*s)
}

func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross follows the right-hand rule, so the cross product of two edges of a
// counterclockwise face points out of its front side.
func (v Vector3) Cross(w Vector3) Vector3 {
	return NewVector3(
		v.Y*w.Z-v.Z*w.Y,
		v.Z*w.X-v.X*w.Z,
		v.X*w.Y-v.Y*w.X,
	)
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance is the length of the edge from v to w
func (v Vector3) Distance(w Vector3) float64 {
	return w.Sub(v).Length()
}

// Normalize returns the unit vector of v, or the zero vector for degenerate
// faces and edges.
func (v Vector3) Normalize() Vector3 {
	if l := v.Length(); l > 0 {
		return v.Mul(1 / l)
	}
	return Vector3{}
}
