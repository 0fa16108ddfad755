// Package physics provides the geometry used for motion and collision:
// vectors, convex hulls, circles and the pairwise intersection test.
package physics

import "math"

// Vec is a point or direction in arena space (pixels).
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns v rotated by 90 degrees.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading returns the unit vector for an angle in degrees.
// 0 points right and angles grow clockwise on screen (y grows downward).
func Heading(deg float64) Vec {
	rad := Radians(deg)
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Advance moves (x, y) by speed along the angle (degrees).
// Every mobile entity integrates with this rule once per tick.
func Advance(x, y, angle, speed float64) (float64, float64) {
	h := Heading(angle)
	return x + h.X*speed, y + h.Y*speed
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
