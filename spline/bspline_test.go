package spline

import (
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBSplineInvariants(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	if _, err := NewBSpline(3, slices.Clone(pts), nil); err == nil {
		t.Error("expected an error for degree 3 with 3 control points")
	}
	if _, err := NewBSpline(2, slices.Clone(pts), []float64{0, 1, 2}); err == nil {
		t.Error("expected an error for a knot count mismatch")
	}
	s, err := NewBSpline(2, slices.Clone(pts), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Knots()) != len(pts)+s.Degree()+1 {
		t.Errorf("generated %d knots, want %d", len(s.Knots()), len(pts)+s.Degree()+1)
	}
}

func TestBSplineSortsKnots(t *testing.T) {
	s, err := NewBSpline(1, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, []float64{2, 0, 1, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.IsSorted(s.Knots()) {
		t.Errorf("knots %v are not sorted", s.Knots())
	}
}

func TestBSplineClampedEndpoints(t *testing.T) {
	// A clamped curve starts and ends exactly at its first and last control
	// points.
	pts := []Point{Pt(-1.5, -1.5), Pt(-0.5, 1.5), Pt(0.5, -1.5), Pt(1.5, 1.5)}
	s, err := NewBSpline(3, slices.Clone(pts), []float64{0, 0, 0, 0, 2, 2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(-1.5, -1.5), s.Point(0))
	diff(t, Pt(1.5, 1.5), s.Point(2))
}

func TestBSplineDomainEndpointsWellDefined(t *testing.T) {
	for _, tt := range []struct {
		degree int
		points []Point
		knots  []float64
	}{
		{1, []Point{Pt(0, 0), Pt(1, 1)}, nil},
		{2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}, nil},
		{3, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}, nil},
		// Open uniform knots.
		{2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, []float64{0, 1, 2, 3, 4, 5}},
		// Repeated interior knot.
		{2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}, []float64{0, 0, 0, 1, 1, 2, 2, 2}},
	} {
		s, err := NewBSpline(tt.degree, slices.Clone(tt.points), slices.Clone(tt.knots))
		if err != nil {
			t.Fatal(err)
		}
		lo, hi := s.KnotDomain()
		if p := s.Point(lo); p.IsNaN() {
			t.Errorf("degree %d: Point(%g) = %v", tt.degree, lo, p)
		}
		if p := s.Point(hi); p.IsNaN() {
			t.Errorf("degree %d: Point(%g) = %v", tt.degree, hi, p)
		}
	}
}

func TestBSplinePointContract(t *testing.T) {
	s, err := NewBSpline(2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := s.KnotDomain()
	mustPanic(t, func() { s.Point(lo - 0.1) })
	mustPanic(t, func() { s.Point(hi + 0.1) })
	mustPanic(t, func() { s.Point(math.NaN()) })
	mustPanic(t, func() { NewEmpty(2).Point(0) })
}

func TestBSplineSetClamped(t *testing.T) {
	s, err := NewBSpline(2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsClamped() {
		t.Fatal("generated knot vector should be clamped")
	}
	s.SetClamped(false)
	if s.IsClamped() {
		t.Error("IsClamped() = true immediately after SetClamped(false)")
	}
	if !slices.IsSorted(s.Knots()) || len(s.Knots()) != len(s.ControlPoints)+s.Degree()+1 {
		t.Errorf("regenerated knot vector %v is structurally invalid", s.Knots())
	}
	s.SetClamped(true)
	if !s.IsClamped() {
		t.Error("IsClamped() = false immediately after SetClamped(true)")
	}
	diff(t, s.ControlPoints[0], s.Point(mustDomain(s, 0)))
}

func TestBSplineRemovePointReducesDegree(t *testing.T) {
	// Four points at degree 3 is the minimum; removal must drop to degree 2
	// and keep the knot count invariant.
	s, err := NewBSpline(3, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.RemovePoint(1)
	if s.Degree() != 2 {
		t.Errorf("got degree %d, want 2", s.Degree())
	}
	if len(s.Knots()) != len(s.ControlPoints)+s.Degree()+1 {
		t.Errorf("got %d knots for %d points at degree %d",
			len(s.Knots()), len(s.ControlPoints), s.Degree())
	}
	mustPanic(t, func() { s.RemovePoint(3) })
}

func TestBSplineInsertPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s, err := NewBSpline(2, []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	idx := s.InsertPoint(Pt(1, 1))
	if idx != 1 {
		t.Errorf("got insertion index %d, want 1", idx)
	}
	if len(s.Knots()) != len(s.ControlPoints)+s.Degree()+1 {
		t.Errorf("got %d knots for %d points at degree %d",
			len(s.Knots()), len(s.ControlPoints), s.Degree())
	}
	if !s.IsClamped() {
		t.Error("insertion must preserve the clamp state")
	}
}

func TestBSplinePlaceholderGrows(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewEmpty(2)
	if s.Evaluable() {
		t.Fatal("placeholder must not be evaluable")
	}
	s.InsertPoint(Pt(0, 0))
	s.InsertPoint(Pt(1, 1))
	if s.Evaluable() || s.Knots() != nil {
		t.Fatal("two points do not support degree 2 yet")
	}
	s.InsertPoint(Pt(2, 0))
	if !s.Evaluable() {
		t.Fatal("three points at degree 2 should be evaluable")
	}
	if len(s.Knots()) != 6 {
		t.Errorf("got %d knots, want 6", len(s.Knots()))
	}
	lo, _ := s.KnotDomain()
	diff(t, Pt(0, 0), s.Point(lo))
}

func TestBSplineSetDegreeRoundTrip(t *testing.T) {
	// Changing the degree and changing it back must reproduce the original
	// shape at matching domain fractions, though the knots themselves are
	// regenerated.
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 3), Pt(4, 0)}
	s, err := NewBSpline(3, slices.Clone(pts), nil)
	if err != nil {
		t.Fatal(err)
	}
	const n = 24
	want := make([]Point, n+1)
	for i := range want {
		want[i] = s.Point(mustDomain(s, float64(i)/n))
	}
	s.SetDegree(2)
	s.SetDegree(3)
	for i := range want {
		got := s.Point(mustDomain(s, float64(i)/n))
		if got.Distance(want[i]) > 1e-9 {
			t.Errorf("fraction %d/%d: got %v, want %v", i, n, got, want[i])
		}
	}
}

func TestBSplineSetDegreePreservesOpenState(t *testing.T) {
	s, err := NewBSpline(2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.SetClamped(false)
	s.SetDegree(3)
	if s.IsClamped() {
		t.Error("degree change must preserve the open state")
	}
	mustPanic(t, func() { s.SetDegree(4) })
}

func TestBSplineDomainKnots(t *testing.T) {
	s, err := NewBSpline(2, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got []float64
	for k := range s.DomainKnots() {
		got = append(got, k)
	}
	// Knots are [0,0,0,1,2,3,3,3]; the domain spans indices 2 through 5.
	diff(t, []float64{0, 1, 2, 3}, got)
}

// mustDomain maps a fraction in [0, 1] to the curve's knot domain.
func mustDomain(s *BSpline, frac float64) float64 {
	lo, hi := s.KnotDomain()
	return lo + (hi-lo)*frac
}
