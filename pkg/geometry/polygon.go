package geometry

// Polygon is a planar or near-planar face given by its corner positions
type Polygon []Vector3

// AreaVector returns the Newell vector of the polygon: its direction is the
// face normal following the right-hand rule and its length is twice the area.
func (p Polygon) AreaVector() Vector3 {
	var n Vector3
	for i, a := range p {
		b := p[(i+1)%len(p)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Normal returns the unit face normal
func (p Polygon) Normal() Vector3 {
	return p.AreaVector().Normalize()
}

// Area returns the area of the polygon
func (p Polygon) Area() float64 {
	return p.AreaVector().Length() / 2.0
}

// Perimeter returns the total length of all edges
func (p Polygon) Perimeter() float64 {
	perimeter := 0.0
	for i, a := range p {
		perimeter += a.Distance(p[(i+1)%len(p)])
	}
	return perimeter
}

// Center returns the average of the corners
func (p Polygon) Center() Vector3 {
	if len(p) == 0 {
		return Vector3{}
	}
	var c Vector3
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Mul(1.0 / float64(len(p)))
}

// SignedVolume returns the volume of the cone from the origin to the
// polygon, fanned from its first corner. Summed over a closed oriented
// surface it gives the enclosed volume, negative when faces point inward.
func (p Polygon) SignedVolume() float64 {
	volume := 0.0
	for i := 1; i+1 < len(p); i++ {
		volume += p[0].Dot(p[i].Cross(p[i+1]))
	}
	return volume / 6.0
}
