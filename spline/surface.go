package spline

import (
	"fmt"
	"iter"
	"slices"
)

// Surface is a tensor-product B-spline surface: the product of a degreeU,
// knotsU B-spline along the mesh rows and a degreeV, knotsV B-spline along
// the mesh columns.
//
// Mesh is indexed Mesh[row][column]; the row count must be consistent with
// knotsU and degreeU, the column count with knotsV and degreeV. Beyond the
// mesh being rectangular and non-empty this is the caller's responsibility;
// inconsistencies surface as errors when an isoline is extracted.
type Surface struct {
	degreeU int
	degreeV int
	knotsU  []float64
	knotsV  []float64
	Mesh    [][]Point
}

// NewSurface returns a tensor product B-spline surface over the control mesh.
func NewSurface(degreeU, degreeV int, knotsU, knotsV []float64, mesh [][]Point) (*Surface, error) {
	if len(mesh) == 0 || len(mesh[0]) == 0 {
		return nil, ErrEmptyMesh
	}
	for i, row := range mesh {
		if len(row) != len(mesh[0]) {
			return nil, fmt.Errorf("%w: row %d has %d points, row 0 has %d",
				ErrRaggedMesh, i, len(row), len(mesh[0]))
		}
	}
	tracer().Debugf("surface control mesh %d×%d, degree (%d, %d)",
		len(mesh), len(mesh[0]), degreeU, degreeV)
	return &Surface{
		degreeU: degreeU,
		degreeV: degreeV,
		knotsU:  knotsU,
		knotsV:  knotsV,
		Mesh:    mesh,
	}, nil
}

// DegreeU returns the curve degree along u.
func (s *Surface) DegreeU() int {
	return s.degreeU
}

// DegreeV returns the curve degree along v.
func (s *Surface) DegreeV() int {
	return s.degreeV
}

// KnotsU returns the knot vector along u, shared with the surface and to be
// treated as read-only.
func (s *Surface) KnotsU() []float64 {
	return s.knotsU
}

// KnotsV returns the knot vector along v, shared with the surface and to be
// treated as read-only.
func (s *Surface) KnotsV() []float64 {
	return s.knotsV
}

// KnotDomainU returns the min and max knot values delimiting the valid u
// parameter range.
func (s *Surface) KnotDomainU() (float64, float64) {
	return s.knotsU[s.degreeU], s.knotsU[len(s.knotsU)-1-s.degreeU]
}

// KnotDomainV returns the min and max knot values delimiting the valid v
// parameter range.
func (s *Surface) KnotDomainV() (float64, float64) {
	return s.knotsV[s.degreeV], s.knotsV[len(s.knotsV)-1-s.degreeV]
}

// DomainKnotsU returns an iterator over the u knot values inside the u knot
// domain.
func (s *Surface) DomainKnotsU() iter.Seq[float64] {
	return domainKnots(s.knotsU, s.degreeU)
}

// DomainKnotsV returns an iterator over the v knot values inside the v knot
// domain.
func (s *Surface) DomainKnotsV() iter.Seq[float64] {
	return domainKnots(s.knotsV, s.degreeV)
}

func domainKnots(knots []float64, degree int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, k := range knots[degree : len(knots)-degree] {
			if !yield(k) {
				return
			}
		}
	}
}

// GrevilleAbscissaeU returns the Greville abscissae of the u axis basis.
func (s *Surface) GrevilleAbscissaeU() []float64 {
	return grevilleAbscissae(s.degreeU, s.knotsU)
}

// GrevilleAbscissaeV returns the Greville abscissae of the v axis basis.
func (s *Surface) GrevilleAbscissaeV() []float64 {
	return grevilleAbscissae(s.degreeV, s.knotsV)
}

// IsolineV extracts the isoline along v for a fixed value of u. Each mesh
// column is evaluated at u as a u-axis B-spline; the resulting points form
// the control polygon of a v-axis curve.
func (s *Surface) IsolineV(u float64) (*BSpline, error) {
	controlPoints := make([]Point, 0, len(s.Mesh[0]))
	for j := range s.Mesh[0] {
		column := make([]Point, 0, len(s.Mesh))
		for i := range s.Mesh {
			column = append(column, s.Mesh[i][j])
		}
		c, err := NewBSpline(s.degreeU, column, slices.Clone(s.knotsU))
		if err != nil {
			return nil, fmt.Errorf("u curve for mesh column %d: %w", j, err)
		}
		controlPoints = append(controlPoints, c.Point(u))
	}
	tracer().Debugf("isoline at u=%g has control polygon of %d points", u, len(controlPoints))
	return NewBSpline(s.degreeV, controlPoints, slices.Clone(s.knotsV))
}

// IsolineU extracts the isoline along u for a fixed value of v. Each mesh row
// is evaluated at v as a v-axis B-spline; the resulting points form the
// control polygon of a u-axis curve.
func (s *Surface) IsolineU(v float64) (*BSpline, error) {
	controlPoints := make([]Point, 0, len(s.Mesh))
	for i := range s.Mesh {
		c, err := NewBSpline(s.degreeV, slices.Clone(s.Mesh[i]), slices.Clone(s.knotsV))
		if err != nil {
			return nil, fmt.Errorf("v curve for mesh row %d: %w", i, err)
		}
		controlPoints = append(controlPoints, c.Point(v))
	}
	tracer().Debugf("isoline at v=%g has control polygon of %d points", v, len(controlPoints))
	return NewBSpline(s.degreeU, controlPoints, slices.Clone(s.knotsU))
}
