package physics

import "math"

// minArea is the smallest polygon area treated as a real outline.
const minArea = 1e-9

// Shape is a collision hull in arena space.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect
	valid() bool
}

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	Min, Max Vec
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the middle of the box.
func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Overlaps reports whether the interiors of two boxes overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Max.X > o.Min.X && o.Max.X > r.Min.X &&
		r.Max.Y > o.Min.Y && o.Max.Y > r.Min.Y
}

// Polygon is a convex outline. Vertices are listed in order around the hull;
// either winding works.
type Polygon []Vec

// Bounds returns the axis-aligned bounding box of the polygon.
// An empty polygon has a zero box.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}

// Area returns the unsigned area of the polygon (shoelace formula).
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	for i, v := range p {
		sum += v.Cross(p[(i+1)%len(p)])
	}
	return math.Abs(sum) / 2
}

func (p Polygon) valid() bool {
	if len(p) < 3 {
		return false
	}
	for _, v := range p {
		if !v.Finite() {
			return false
		}
	}
	return p.Area() > minArea
}

// Circle is a round hull.
type Circle struct {
	Center Vec
	Radius float64
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Vec{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Vec{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

func (c Circle) valid() bool {
	return c.Center.Finite() && isFinite(c.Radius) && c.Radius > 0
}

// Transform maps a hull authored in local, unrotated coordinates into arena
// space: each vertex is rotated by angle (degrees) about pivot, then
// translated by pos.
func Transform(local Polygon, pivot Vec, angle float64, pos Vec) Polygon {
	out := make(Polygon, len(local))
	sin, cos := math.Sincos(Radians(angle))
	for i, v := range local {
		d := v.Sub(pivot)
		out[i] = Vec{
			X: pivot.X + d.X*cos - d.Y*sin + pos.X,
			Y: pivot.Y + d.X*sin + d.Y*cos + pos.Y,
		}
	}
	return out
}

// Intersects reports whether the interiors of two hulls overlap.
// Shapes that only touch along an edge or at a point do not intersect.
// Degenerate shapes never intersect anything. The test is symmetric.
func Intersects(a, b Shape) bool {
	if a == nil || b == nil || !a.valid() || !b.valid() {
		return false
	}
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}

	switch sa := a.(type) {
	case Polygon:
		switch sb := b.(type) {
		case Polygon:
			return polygonsOverlap(sa, sb)
		case Circle:
			return polygonCircleOverlap(sa, sb)
		}
	case Circle:
		switch sb := b.(type) {
		case Polygon:
			return polygonCircleOverlap(sb, sa)
		case Circle:
			return CirclesOverlap(sa.Center.X, sa.Center.Y, sa.Radius, sb.Center.X, sb.Center.Y, sb.Radius)
		}
	}
	return false
}

// polygonsOverlap applies the separating axis theorem using the edge normals
// of both polygons.
func polygonsOverlap(a, b Polygon) bool {
	return !hasSeparatingEdge(a, b) && !hasSeparatingEdge(b, a)
}

func hasSeparatingEdge(edges, other Polygon) bool {
	for i, v := range edges {
		axis := edges[(i+1)%len(edges)].Sub(v).Perp()
		if axis.X == 0 && axis.Y == 0 {
			continue
		}
		aMin, aMax := projectPolygon(edges, axis)
		bMin, bMax := projectPolygon(other, axis)
		if aMax <= bMin || bMax <= aMin {
			return true
		}
	}
	return false
}

// polygonCircleOverlap tests the polygon edge normals plus the axis from the
// circle centre to the nearest polygon vertex.
func polygonCircleOverlap(p Polygon, c Circle) bool {
	for i, v := range p {
		axis := p[(i+1)%len(p)].Sub(v).Perp()
		if separatedOnAxis(p, c, axis) {
			return false
		}
	}

	nearest := p[0]
	best := math.Inf(1)
	for _, v := range p {
		d := DistanceSquared(v.X, v.Y, c.Center.X, c.Center.Y)
		if d < best {
			best = d
			nearest = v
		}
	}
	return !separatedOnAxis(p, c, nearest.Sub(c.Center))
}

func separatedOnAxis(p Polygon, c Circle, axis Vec) bool {
	length := math.Hypot(axis.X, axis.Y)
	if length == 0 {
		return false
	}
	pMin, pMax := projectPolygon(p, axis)
	center := c.Center.Dot(axis)
	reach := c.Radius * length
	return pMax <= center-reach || center+reach <= pMin
}

func projectPolygon(p Polygon, axis Vec) (lo, hi float64) {
	lo = p[0].Dot(axis)
	hi = lo
	for _, v := range p[1:] {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
