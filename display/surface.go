package display

import (
	"github.com/Twinklebear/spline-viewer/spline"
)

// SurfOptions are the per-view drawing toggles and colors for a surface.
type SurfOptions struct {
	DrawSurf          bool
	DrawGreville      bool
	DrawKnots         bool
	DrawControlPoints bool
	CurveColor        Color
	GrevilleColor     Color
	KnotColor         Color
	ControlColor      Color
}

// DefaultSurfOptions returns the options a freshly added surface view starts
// with.
func DefaultSurfOptions() SurfOptions {
	return SurfOptions{
		DrawSurf:          true,
		DrawGreville:      false,
		DrawKnots:         false,
		DrawControlPoints: true,
		CurveColor:        Color{0.8, 0.8, 0.1},
		GrevilleColor:     Color{0.1, 0.8, 0.8},
		KnotColor:         Color{0.8, 0.1, 0.8},
		ControlColor:      Color{0.8, 0.8, 0.8},
	}
}

// Surf manages the displayed geometry for one B-spline surface: families of
// sampled isolines along each axis (a regular grid, one isoline per Greville
// abscissa, one per domain knot) plus the flattened control mesh.
type Surf struct {
	Surf *spline.Surface

	// Isolines of the regular parameter grid. IsolinesU[i] is sampled along
	// u at the i-th fixed v, IsolinesV[i] along v at the i-th fixed u.
	IsolinesU [][]spline.Point
	IsolinesV [][]spline.Point
	// Isolines at every Greville abscissa of the opposite axis.
	GrevilleU [][]spline.Point
	GrevilleV [][]spline.Point
	// Isolines at every domain knot of the opposite axis.
	KnotsU [][]spline.Point
	KnotsV [][]spline.Point

	ControlPoints []spline.Point
	Options       SurfOptions
}

// NewSurf wraps a surface for display and samples all isoline families.
func NewSurf(s *spline.Surface) (*Surf, error) {
	d := &Surf{
		Surf:    s,
		Options: DefaultSurfOptions(),
	}
	if err := d.Resample(); err != nil {
		return nil, err
	}
	return d, nil
}

// Resample regenerates every sampled isoline family and the flattened
// control point list.
//
// Sample positions are the union of the regular step grid, the Greville
// abscissae, and the in-domain knots of each axis, so that wherever two
// isoline families cross they share the crossing point instead of straddling
// it.
func (d *Surf) Resample() error {
	loU, hiU := d.Surf.KnotDomainU()
	loV, hiV := d.Surf.KnotDomainV()

	abscissaeU := d.Surf.GrevilleAbscissaeU()
	abscissaeV := d.Surf.GrevilleAbscissaeV()
	domainKnotsU := collect(d.Surf.DomainKnotsU())
	domainKnotsV := collect(d.Surf.DomainKnotsV())

	// Fixed parameter values with an isoline on them, per axis.
	isoAtU := sampleValues(loU, hiU, isolineStepSize, append(abscissaeU, domainKnotsU...))
	isoAtV := sampleValues(loV, hiV, isolineStepSize, append(abscissaeV, domainKnotsV...))

	// Sample positions along an isoline, per axis.
	alongU := sampleValues(loU, hiU, stepSize, isoAtU)
	alongV := sampleValues(loV, hiV, stepSize, isoAtV)

	tracer().Debugf("resampling surface: %d+%d grid isolines, %d+%d Greville, %d+%d knot",
		len(isoAtU), len(isoAtV), len(abscissaeU), len(abscissaeV),
		len(domainKnotsU), len(domainKnotsV))

	var err error
	if d.IsolinesV, err = d.sampleIsolinesV(isoAtU, alongV); err != nil {
		return err
	}
	if d.IsolinesU, err = d.sampleIsolinesU(isoAtV, alongU); err != nil {
		return err
	}
	if d.GrevilleV, err = d.sampleIsolinesV(abscissaeU, alongV); err != nil {
		return err
	}
	if d.GrevilleU, err = d.sampleIsolinesU(abscissaeV, alongU); err != nil {
		return err
	}
	if d.KnotsV, err = d.sampleIsolinesV(domainKnotsU, alongV); err != nil {
		return err
	}
	if d.KnotsU, err = d.sampleIsolinesU(domainKnotsV, alongU); err != nil {
		return err
	}

	d.ControlPoints = d.ControlPoints[:0]
	for _, row := range d.Surf.Mesh {
		d.ControlPoints = append(d.ControlPoints, row...)
	}
	return nil
}

// sampleIsolinesV extracts one v isoline per fixed u value and samples each
// at the given v positions.
func (d *Surf) sampleIsolinesV(atU, alongV []float64) ([][]spline.Point, error) {
	isolines := make([][]spline.Point, 0, len(atU))
	for _, u := range atU {
		iso, err := d.Surf.IsolineV(u)
		if err != nil {
			return nil, err
		}
		points := make([]spline.Point, 0, len(alongV))
		for _, v := range alongV {
			points = append(points, iso.Point(v))
		}
		isolines = append(isolines, points)
	}
	return isolines, nil
}

// sampleIsolinesU extracts one u isoline per fixed v value and samples each
// at the given u positions.
func (d *Surf) sampleIsolinesU(atV, alongU []float64) ([][]spline.Point, error) {
	isolines := make([][]spline.Point, 0, len(atV))
	for _, v := range atV {
		iso, err := d.Surf.IsolineU(v)
		if err != nil {
			return nil, err
		}
		points := make([]spline.Point, 0, len(alongU))
		for _, u := range alongU {
			points = append(points, iso.Point(u))
		}
		isolines = append(isolines, points)
	}
	return isolines, nil
}

func collect(seq func(yield func(float64) bool)) []float64 {
	var vals []float64
	seq(func(v float64) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}
