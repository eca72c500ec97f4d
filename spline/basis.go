package spline

import (
	"fmt"
	"math"
	"sort"
)

// Basis evaluates the basis functions of a B-spline in isolation, without any
// associated control points.
type Basis struct {
	degree int
	knots  []float64
	// Index of the last knot i with knots[i] < knots[i+1]. The basis function
	// starting there keeps the value 1 at the right edge of the knot domain,
	// where the unmodified Cox–de Boor base case would drop to 0.
	modifiedKnot int
}

// NewBasis returns a basis of the given degree over the knot vector. The
// knots are sorted into non-decreasing order before use. The knot vector must
// be long enough to delimit a knot domain, len(knots) >= degree+2.
func NewBasis(degree int, knots []float64) (*Basis, error) {
	if len(knots) < degree+2 {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrKnotCount, len(knots), degree+2)
	}
	sort.Float64s(knots)
	return &Basis{
		degree:       degree,
		knots:        knots,
		modifiedKnot: lastDistinctKnot(knots),
	}, nil
}

// ClampedUniform returns the basis of the given degree over a generated
// clamped uniform integer knot vector sized for numPoints control points.
func ClampedUniform(degree, numPoints int) *Basis {
	knots := generateKnots(true, true, numPoints+degree+1, degree)
	return &Basis{
		degree:       degree,
		knots:        knots,
		modifiedKnot: lastDistinctKnot(knots),
	}
}

func lastDistinctKnot(knots []float64) int {
	modified := 0
	for i := 0; i < len(knots)-1; i++ {
		if knots[i] < knots[i+1] {
			modified = i
		}
	}
	return modified
}

// Degree returns the basis degree.
func (b *Basis) Degree() int {
	return b.degree
}

// Knots returns the knot vector. The returned slice is shared with the basis
// and must be treated as read-only.
func (b *Basis) Knots() []float64 {
	return b.knots
}

// KnotDomain returns the min and max knot values delimiting the range of t
// over which the basis functions are defined.
func (b *Basis) KnotDomain() (float64, float64) {
	return b.knots[b.degree], b.knots[len(b.knots)-1-b.degree]
}

// Eval evaluates the i-th basis function at t. The parameter must lie within
// the knot domain; values outside it panic.
func (b *Basis) Eval(t float64, i int) float64 {
	lo, hi := b.KnotDomain()
	if t < lo || t > hi || math.IsNaN(t) {
		panic(fmt.Sprintf("spline: basis parameter t=%g outside knot domain [%g, %g]", t, lo, hi))
	}
	return b.evaluateBasis(t, i, b.degree)
}

// evaluateBasis is the Cox–de Boor recursion for the i-th basis function of
// degree k. Interpolation weights whose knot span is zero-length (repeated
// knots) are replaced by 0, and the base-case interval is right-inclusive at
// the modified knot so that the last basis function stays 1 at the domain's
// right endpoint.
func (b *Basis) evaluateBasis(t float64, i, k int) float64 {
	if k == 0 {
		switch {
		case t < b.knots[i]:
			return 0
		case i == b.modifiedKnot && t <= b.knots[i+1]:
			return 1
		case t < b.knots[i+1]:
			return 1
		default:
			return 0
		}
	}
	if t < b.knots[i] || t > b.knots[i+k+1] {
		return 0
	}
	a := (t - b.knots[i]) / (b.knots[i+k] - b.knots[i])
	c := (b.knots[i+k+1] - t) / (b.knots[i+k+1] - b.knots[i+1])
	if !isFinite(a) {
		a = 0
	}
	if !isFinite(c) {
		c = 0
	}
	return a*b.evaluateBasis(t, i, k-1) + c*b.evaluateBasis(t, i+1, k-1)
}

// GrevilleAbscissae returns the Greville abscissa of every basis function:
// the average of the degree knots following its index. Results that fall
// outside the knot domain are dropped. The basis degree must be at least 1.
func (b *Basis) GrevilleAbscissae() []float64 {
	return grevilleAbscissae(b.degree, b.knots)
}

func grevilleAbscissae(degree int, knots []float64) []float64 {
	if degree < 1 {
		panic("spline: Greville abscissae are undefined for degree 0")
	}
	num := len(knots) - degree - 1
	lo, hi := knots[degree], knots[len(knots)-1-degree]
	abscissae := make([]float64, 0, num)
	for i := 0; i < num; i++ {
		sum := 0.0
		for j := i + 1; j <= i+degree; j++ {
			sum += knots[j]
		}
		g := sum / float64(degree)
		if g >= lo && g <= hi {
			abscissae = append(abscissae, g)
		}
	}
	return abscissae
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
