package spline

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// BSpline is a B-spline curve of the given degree interpolating between its
// control points over a knot vector.
//
// The structural invariants are len(ControlPoints) > degree and
// len(knots) == len(ControlPoints) + degree + 1, with the knots sorted in
// non-decreasing order. A curve may also carry an empty placeholder state
// with no control points and no knots, awaiting points from user input; such
// a curve is not evaluable until enough points have been inserted.
//
// The ControlPoints slice may be read and individual points repositioned by
// the caller; structural changes (insertion, removal, degree and clamp
// changes) go through the methods so the knot vector stays consistent.
type BSpline struct {
	ControlPoints []Point
	degree        int
	knots         []float64
	clampedLeft   bool
	clampedRight  bool
}

// NewBSpline returns a curve of the desired degree interpolating the control
// points using the knots. The knots are sorted into non-decreasing order
// before use. If knots is empty, a clamped uniform knot vector is generated.
//
// A curve needs more control points than its degree, and the number of knots
// must be len(controlPoints) + degree + 1.
func NewBSpline(degree int, controlPoints []Point, knots []float64) (*BSpline, error) {
	if len(controlPoints) <= degree {
		return nil, fmt.Errorf("%w: degree %d needs more than %d control points",
			ErrTooFewPoints, degree, degree)
	}
	if len(knots) == 0 {
		knots = generateKnots(true, true, len(controlPoints)+degree+1, degree)
	} else if len(knots) != len(controlPoints)+degree+1 {
		return nil, fmt.Errorf("%w: got %d, expected %d",
			ErrKnotCount, len(knots), len(controlPoints)+degree+1)
	}
	sort.Float64s(knots)
	return &BSpline{
		ControlPoints: controlPoints,
		degree:        degree,
		knots:         knots,
		clampedLeft:   isClampedLeft(knots, degree),
		clampedRight:  isClampedRight(knots, degree),
	}, nil
}

// NewEmpty returns a placeholder curve of the desired degree with no control
// points yet. Points are added with [BSpline.InsertPoint]; the knot vector
// appears once the curve has more points than its degree.
func NewEmpty(degree int) *BSpline {
	return &BSpline{
		degree:       degree,
		clampedLeft:  true,
		clampedRight: true,
	}
}

// Degree returns the curve degree.
func (s *BSpline) Degree() int {
	return s.degree
}

// MaxPossibleDegree returns the highest degree the current number of control
// points can support.
func (s *BSpline) MaxPossibleDegree() int {
	if len(s.ControlPoints) == 0 {
		return 0
	}
	return len(s.ControlPoints) - 1
}

// Knots returns the knot vector, or nil for a placeholder curve. The returned
// slice is shared with the curve and must be treated as read-only.
func (s *BSpline) Knots() []float64 {
	return s.knots
}

// KnotDomain returns the min and max knot values delimiting the range of t
// over which the curve is defined. The curve is only defined over the
// inclusive range [min, max].
func (s *BSpline) KnotDomain() (float64, float64) {
	return s.knots[s.degree], s.knots[len(s.knots)-1-s.degree]
}

// DomainKnots returns an iterator over the knot values inside the knot
// domain, the curve's break points.
func (s *BSpline) DomainKnots() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, k := range s.knots[s.degree : len(s.knots)-s.degree] {
			if !yield(k) {
				return
			}
		}
	}
}

// Evaluable reports whether the curve satisfies the structural invariants
// required for evaluation, i.e. it is not a placeholder.
func (s *BSpline) Evaluable() bool {
	return len(s.ControlPoints) > s.degree
}

// Point computes a point on the curve at t. The parameter must be within the
// inclusive range returned by [BSpline.KnotDomain]; values outside it panic,
// as does evaluating a placeholder curve.
func (s *BSpline) Point(t float64) Point {
	if !s.Evaluable() {
		panic(fmt.Sprintf("spline: evaluating curve with %d control points at degree %d",
			len(s.ControlPoints), s.degree))
	}
	lo, hi := s.KnotDomain()
	if t < lo || t > hi || math.IsNaN(t) {
		panic(fmt.Sprintf("spline: curve parameter t=%g outside knot domain [%g, %g]", t, lo, hi))
	}
	// Find i such that knots[i] <= t < knots[i+1], clamped to the domain
	// boundaries.
	i := upperBound(s.knots, t)
	switch {
	case i == 0:
		i = s.degree
	case i >= len(s.knots)-s.degree-1:
		i = len(s.knots) - s.degree - 1
	}
	return s.deBoor(t, i)
}

// deBoor computes the recursive de Boor algorithm tree bottom-up. At each
// level the results from the previous one overwrite the working-array entries
// that are no longer needed.
func (s *BSpline) deBoor(t float64, iStart int) Point {
	tmp := make([]Point, s.degree+1)
	for j := range tmp {
		tmp[j] = s.ControlPoints[j+iStart-s.degree-1]
	}
	for lvl := 0; lvl < s.degree; lvl++ {
		k := lvl + 1
		for j := 0; j < s.degree-lvl; j++ {
			i := j + k + iStart - s.degree
			alpha := (t - s.knots[i-1]) / (s.knots[i+s.degree-k] - s.knots[i-1])
			if math.IsNaN(alpha) {
				// A zero-length span here means the knot vector violates the
				// multiplicity limits for this degree.
				panic(fmt.Sprintf("spline: defective knot vector, zero-length span at knot %d", i-1))
			}
			tmp[j] = tmp[j].Lerp(tmp[j+1], alpha)
		}
	}
	return tmp[0]
}

// InsertPoint inserts p next to the nearest segment of the control polygon,
// regenerates the knot vector, and returns the index the point was inserted
// at.
func (s *BSpline) InsertPoint(p Point) int {
	idx := insertNearest(&s.ControlPoints, p)
	s.regenerateKnots()
	return idx
}

// RemovePoint removes the control point at index i. If the remaining points
// no longer support the curve degree, the degree is reduced by one. The knot
// vector is regenerated.
func (s *BSpline) RemovePoint(i int) {
	if i < 0 || i >= len(s.ControlPoints) {
		panic(fmt.Sprintf("spline: removing control point %d of %d", i, len(s.ControlPoints)))
	}
	s.ControlPoints = slices.Delete(s.ControlPoints, i, i+1)
	if len(s.ControlPoints) <= s.degree && s.degree > 0 {
		s.degree--
	}
	s.regenerateKnots()
}

// SetDegree changes the curve degree and regenerates the knot vector,
// preserving the clamp state of each end. The new degree must be supported by
// the current number of control points; see [BSpline.MaxPossibleDegree].
func (s *BSpline) SetDegree(degree int) {
	if degree < 1 || degree > s.MaxPossibleDegree() {
		panic(fmt.Sprintf("spline: degree %d not in [1, %d]", degree, s.MaxPossibleDegree()))
	}
	s.degree = degree
	s.regenerateKnots()
}

// IsClamped reports whether the curve starts and ends exactly at its first
// and last control points: the first degree+1 knots all equal the minimum
// knot value and the last degree+1 all equal the maximum.
func (s *BSpline) IsClamped() bool {
	if len(s.knots) == 0 {
		return s.clampedLeft && s.clampedRight
	}
	return isClampedLeft(s.knots, s.degree) && isClampedRight(s.knots, s.degree)
}

// SetClamped regenerates the knot vector with the requested clamp state on
// both ends.
func (s *BSpline) SetClamped(clamped bool) {
	s.clampedLeft = clamped
	s.clampedRight = clamped
	s.regenerateKnots()
}

// regenerateKnots replaces the knot vector with a fresh one for the current
// number of points and degree, keeping the clamp state of each end. A curve
// without enough points for its degree carries no knots.
func (s *BSpline) regenerateKnots() {
	if len(s.ControlPoints) <= s.degree {
		s.knots = nil
		return
	}
	s.knots = generateKnots(s.clampedLeft, s.clampedRight,
		len(s.ControlPoints)+s.degree+1, s.degree)
}
