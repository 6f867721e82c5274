package geom

import "math"

// Transform is an invertible affine transformation of the plane, stored as a
// 2x2 linear part plus a translation:
//
//	| XX XY |         | OX |
//	| YX YY | * p  +  | OY |
type Transform struct {
	XX, XY float64
	YX, YY float64
	OX, OY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{XX: 1, YY: 1}
}

// Translate returns a translation by v.
func Translate(v Vec) Transform {
	return Transform{XX: 1, YY: 1, OX: v.X, OY: v.Y}
}

// Scale returns a uniform scale about the origin.
func Scale(s float64) Transform {
	return Transform{XX: s, YY: s}
}

// ScaleXY returns an axis-aligned scale about the origin.
func ScaleXY(sx, sy float64) Transform {
	return Transform{XX: sx, YY: sy}
}

// Rotate returns a counterclockwise rotation about the origin, in radians.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{XX: cos, XY: -sin, YX: sin, YY: cos}
}

// Mul composes two transforms. The result applies u first, then t:
// t.Mul(u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		XX: t.XX*u.XX + t.XY*u.YX,
		XY: t.XX*u.XY + t.XY*u.YY,
		YX: t.YX*u.XX + t.YY*u.YX,
		YY: t.YX*u.XY + t.YY*u.YY,
		OX: t.XX*u.OX + t.XY*u.OY + t.OX,
		OY: t.YX*u.OX + t.YY*u.OY + t.OY,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.XX*p.X + t.XY*p.Y + t.OX,
		Y: t.YX*p.X + t.YY*p.Y + t.OY,
	}
}

// ApplyVec transforms a vector by the linear part only (no translation).
func (t Transform) ApplyVec(v Vec) Vec {
	return Vec{
		X: t.XX*v.X + t.XY*v.Y,
		Y: t.YX*v.X + t.YY*v.Y,
	}
}

// TransposeVec applies the transpose of the linear part to v. Envelope and
// trace transformation need the adjoint rather than the inverse.
func (t Transform) TransposeVec(v Vec) Vec {
	return Vec{
		X: t.XX*v.X + t.YX*v.Y,
		Y: t.XY*v.X + t.YY*v.Y,
	}
}

// Offset returns the translation component.
func (t Transform) Offset() Vec {
	return Vec{t.OX, t.OY}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.XX*t.YY - t.XY*t.YX
}

// AvgScale returns the average scaling factor of the linear part, the factor
// by which scale-dependent attribute magnitudes (e.g. stroke width) grow.
func (t Transform) AvgScale() float64 {
	return math.Sqrt(math.Abs(t.Det()))
}

// Inverse returns the inverse transform. Inverting a singular transform is a
// caller defect; the linear part degenerates to identity in that case so the
// operation stays total.
func (t Transform) Inverse() Transform {
	det := t.Det()
	if det == 0 {
		return Transform{XX: 1, YY: 1, OX: -t.OX, OY: -t.OY}
	}
	inv := Transform{
		XX: t.YY / det,
		XY: -t.XY / det,
		YX: -t.YX / det,
		YY: t.XX / det,
	}
	o := inv.ApplyVec(Vec{t.OX, t.OY})
	inv.OX = -o.X
	inv.OY = -o.Y
	return inv
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
