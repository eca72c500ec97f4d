package spline

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineCurve returns a degree-2 clamped curve whose control points lie on a
// straight line at height y.
func lineCurve(t *testing.T, y float64) *BSpline {
	t.Helper()
	pts := []Point{Pt(0, y), Pt(1, y), Pt(2, y), Pt(3, y)}
	s, err := NewBSpline(2, pts, nil)
	require.NoError(t, err)
	return s
}

func TestInterpolateCurvesReproducesInputs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// A family of identical straight lines stacked at distinct offsets. The
	// solved surface's isolines at the across-curve Greville abscissae must
	// reproduce the input curves' control points.
	curves := []*BSpline{lineCurve(t, 0), lineCurve(t, 1), lineCurve(t, 2.5)}
	surf, err := InterpolateCurves(curves)
	require.NoError(t, err)

	greville := surf.GrevilleAbscissaeU()
	require.Len(t, greville, len(curves))
	for i, c := range curves {
		iso, err := surf.IsolineV(greville[i])
		require.NoError(t, err)
		require.Len(t, iso.ControlPoints, len(c.ControlPoints))
		for j, want := range c.ControlPoints {
			got := iso.ControlPoints[j]
			assert.InDelta(t, want.X, got.X, 1e-9, "curve %d, point %d", i, j)
			assert.InDelta(t, want.Y, got.Y, 1e-9, "curve %d, point %d", i, j)
			assert.InDelta(t, want.Z, got.Z, 1e-9, "curve %d, point %d", i, j)
		}
	}
}

func TestInterpolateCurvesSurfaceShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	curves := []*BSpline{lineCurve(t, 0), lineCurve(t, 1)}
	surf, err := InterpolateCurves(curves)
	require.NoError(t, err)

	// The across-curve axis is u with the degree-1 synthetic basis; the
	// along-curve axis keeps the shared input basis.
	assert.Equal(t, 1, surf.DegreeU())
	assert.Equal(t, curves[0].Degree(), surf.DegreeV())
	assert.Equal(t, curves[0].Knots(), surf.KnotsV())
	assert.Len(t, surf.Mesh, len(curves))
	assert.Len(t, surf.Mesh[0], len(curves[0].ControlPoints))

	// Between the input rows the surface interpolates linearly.
	iso, err := surf.IsolineV(0.5)
	require.NoError(t, err)
	lo, hi := iso.KnotDomain()
	assert.InDelta(t, 0.5, iso.Point(lo).Y, 1e-9)
	assert.InDelta(t, 0.5, iso.Point(hi).Y, 1e-9)
}

func TestInterpolateCurvesValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	_, err := InterpolateCurves([]*BSpline{lineCurve(t, 0)})
	assert.ErrorIs(t, err, ErrTooFewCurves)

	cubic, err := NewBSpline(3, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}, nil)
	require.NoError(t, err)
	_, err = InterpolateCurves([]*BSpline{lineCurve(t, 0), cubic})
	assert.ErrorIs(t, err, ErrDegreeMismatch)

	shifted, err := NewBSpline(2, []Point{Pt(0, 1), Pt(1, 1), Pt(2, 1), Pt(3, 1)},
		[]float64{0, 0, 1, 2, 3, 4, 4})
	require.NoError(t, err)
	_, err = InterpolateCurves([]*BSpline{lineCurve(t, 0), shifted})
	assert.ErrorIs(t, err, ErrKnotMismatch)
}

func TestInterpolateCurvesKeepsInputsIntact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	c0, c1 := lineCurve(t, 0), lineCurve(t, 2)
	knotsBefore := slices.Clone(c0.Knots())
	pointsBefore := slices.Clone(c0.ControlPoints)
	_, err := InterpolateCurves([]*BSpline{c0, c1})
	require.NoError(t, err)
	assert.Equal(t, knotsBefore, c0.Knots())
	assert.Equal(t, pointsBefore, c0.ControlPoints)
}
