// Package geom provides the minimal 2D affine algebra the diagram core
// depends on: points, vectors, affine transforms, and the split transform
// used to track freeze boundaries.
package geom

import "math"

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Vec is a displacement or direction in 2D space.
type Vec struct {
	X, Y float64
}

// Origin is the canonical zero point.
var Origin = Point{}

// Add displaces the point by v.
func (p Point) Add(v Vec) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{p.X - q.X, p.Y - q.Y}
}

// Vec returns the displacement from the origin to p.
func (p Point) Vec() Vec {
	return Vec(p)
}

// Add returns the vector sum v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
