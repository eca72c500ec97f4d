package spline

import (
	"fmt"
	"math"
	"slices"
)

// Bezier is a Bézier curve of implicit degree len(ControlPoints)−1.
//
// The ControlPoints slice may be read and individual points repositioned by
// the caller; structural changes go through [Bezier.InsertPoint] so that the
// implicit degree stays meaningful.
type Bezier struct {
	ControlPoints []Point
}

// NewBezier returns a Bézier curve interpolating the control points. At least
// one control point is required.
func NewBezier(controlPoints []Point) (*Bezier, error) {
	if len(controlPoints) == 0 {
		return nil, fmt.Errorf("%w: got 0, need at least 1", ErrTooFewPoints)
	}
	return &Bezier{ControlPoints: controlPoints}, nil
}

// Degree returns the curve degree, len(ControlPoints)−1.
func (b *Bezier) Degree() int {
	return len(b.ControlPoints) - 1
}

// Point computes a point on the curve at t. The parameter must be in the
// inclusive range [0, 1]; values outside it panic.
//
// The computation is de Casteljau's algorithm, run bottom-up over a working
// copy of the control points: each level blends adjacent entries with
// [Point.Lerp] until one point remains.
func (b *Bezier) Point(t float64) Point {
	if t < 0 || t > 1 || math.IsNaN(t) {
		panic(fmt.Sprintf("spline: Bézier parameter t=%g outside [0, 1]", t))
	}
	tmp := slices.Clone(b.ControlPoints)
	for lvl := len(tmp) - 1; lvl > 0; lvl-- {
		for j := 0; j < lvl; j++ {
			tmp[j] = tmp[j].Lerp(tmp[j+1], t)
		}
	}
	return tmp[0]
}

// InsertPoint inserts p next to the nearest segment of the control polygon
// and returns the index it was inserted at.
func (b *Bezier) InsertPoint(p Point) int {
	idx := insertNearest(&b.ControlPoints, p)
	return idx
}

// insertNearest places p into the control polygon next to the segment it
// projects closest onto and returns the insertion index. With fewer than two
// points p is appended. A projection parameter of exactly 0 on the first
// segment prepends, exactly 1 on the last segment appends; everything else
// inserts after the nearest segment's start.
func insertNearest(points *[]Point, p Point) int {
	pts := *points
	if len(pts) < 2 {
		*points = append(pts, p)
		return len(pts)
	}
	nearestSeg, nearestT := -1, 0.0
	nearestDist := math.MaxFloat64
	for i := 0; i+1 < len(pts); i++ {
		d, t, ok := p.Project(pts[i], pts[i+1])
		if !ok {
			// Zero-length segment from coincident control points; it cannot
			// win the scan.
			continue
		}
		if d < nearestDist {
			nearestSeg, nearestT, nearestDist = i, t, d
		}
	}
	if nearestSeg == -1 {
		*points = append(pts, p)
		return len(pts)
	}
	tracer().Debugf("nearest segment %d, t=%g, distance %g", nearestSeg, nearestT, nearestDist)
	var idx int
	switch {
	case nearestSeg == 0 && nearestT == 0.0:
		idx = 0
	case nearestSeg == len(pts)-2 && nearestT == 1.0:
		idx = len(pts)
	default:
		idx = nearestSeg + 1
	}
	*points = slices.Insert(pts, idx, p)
	return idx
}
