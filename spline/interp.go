package spline

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// InterpolateCurves fits a B-spline surface through a family of input curves.
// The curves must share one degree and one knot vector; each becomes one row
// of the surface's control mesh after solving.
//
// A synthetic degree-1 clamped uniform basis spans the across-curve axis, one
// basis function per input curve, so interpolation across the family is
// always linear regardless of the input curve degree. For every control-point
// column, the N×N system F·x = r is solved per coordinate axis, where
// F[i][j] is the j-th across-curve basis function at the i-th Greville
// abscissa. F is factored once and reused for all right-hand sides.
//
// The resulting surface runs the across-curve basis along u and the shared
// input basis along v: evaluating [Surface.IsolineV] at the i-th Greville
// abscissa of u reproduces the i-th input curve.
//
// A singular F (for instance from duplicate Greville abscissae) returns an
// error wrapping [ErrSingular].
func InterpolateCurves(curves []*BSpline) (*Surface, error) {
	if len(curves) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCurves, len(curves))
	}
	first := curves[0]
	if !first.Evaluable() {
		return nil, fmt.Errorf("%w: curve 0 is a placeholder", ErrTooFewPoints)
	}
	for i, c := range curves[1:] {
		if c.Degree() != first.Degree() {
			return nil, fmt.Errorf("%w: curve %d has degree %d, curve 0 has %d",
				ErrDegreeMismatch, i+1, c.Degree(), first.Degree())
		}
		if !slices.Equal(c.Knots(), first.Knots()) {
			return nil, fmt.Errorf("%w: curve %d differs from curve 0", ErrKnotMismatch, i+1)
		}
	}

	n := len(curves)
	numPoints := len(first.ControlPoints)
	basisU, err := NewBasis(first.Degree(), slices.Clone(first.Knots()))
	if err != nil {
		return nil, err
	}
	basisV := ClampedUniform(1, n)
	greville := basisV.GrevilleAbscissae()
	if len(greville) != n {
		return nil, fmt.Errorf("across-curve basis yields %d Greville abscissae for %d curves",
			len(greville), n)
	}
	tracer().Debugf("interpolating %d curves of degree %d with %d control points each",
		n, basisU.Degree(), numPoints)

	f := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f.Set(i, j, basisV.Eval(greville[i], j))
		}
	}
	var lu mat.LU
	lu.Factorize(f)

	coords := [3]func(Point) float64{
		func(p Point) float64 { return p.X },
		func(p Point) float64 { return p.Y },
		func(p Point) float64 { return p.Z },
	}
	var solved [3]*mat.Dense
	for axis, coord := range coords {
		rhs := mat.NewDense(n, numPoints, nil)
		for i, c := range curves {
			for j, p := range c.ControlPoints {
				rhs.Set(i, j, coord(p))
			}
		}
		x := mat.NewDense(n, numPoints, nil)
		if err := lu.SolveTo(x, false, rhs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		solved[axis] = x
	}

	mesh := make([][]Point, n)
	for i := range mesh {
		row := make([]Point, numPoints)
		for j := range row {
			row[j] = Pt3(solved[0].At(i, j), solved[1].At(i, j), solved[2].At(i, j))
		}
		mesh[i] = row
	}
	return NewSurface(basisV.Degree(), basisU.Degree(),
		slices.Clone(basisV.Knots()), slices.Clone(basisU.Knots()), mesh)
}
