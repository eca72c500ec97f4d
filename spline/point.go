package spline

import (
	"fmt"
	"math"
)

// Point is a control point or curve sample in 3D space. Curves imported from
// 2D data leave Z at zero; nothing in the evaluation kernel treats the axes
// differently.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, 0).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Splat returns the point's coordinates.
func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

// Translate translates the point by the vector o.
func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points. It returns pt exactly at
// t = 0 and o exactly at t = 1; every curve evaluation in this package is
// built from repeated calls to it.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X*(1-t) + o.X*t,
		Y: pt.Y*(1-t) + o.Y*t,
		Z: pt.Z*(1-t) + o.Z*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// Project projects pt onto the segment from a to b. It returns the distance
// from pt to the closest point on the segment and the parameter of that point,
// clamped to [0, 1]. Positions before a or past b clamp to the endpoints.
//
// ok is false when the segment is degenerate (a == b); dist is then the
// distance to a and t is 0.
func (pt Point) Project(a, b Point) (dist, t float64, ok bool) {
	v := b.Sub(a)
	vv := v.Hypot2()
	if vv == 0 {
		return pt.Distance(a), 0, false
	}
	t = clamp01(pt.Sub(a).Dot(v) / vv)
	p := a.Translate(v.Mul(t))
	return p.Distance(pt), t, true
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
