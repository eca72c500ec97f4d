package display

import (
	"github.com/Twinklebear/spline-viewer/spline"
)

// BezierCurve displays a Bézier curve: the sampled curve plus its control
// polygon.
type BezierCurve struct {
	Curve       *spline.Bezier
	CurvePoints []spline.Point
	Options     CurveOptions
}

// NewBezier wraps a Bézier curve for display and samples it.
func NewBezier(c *spline.Bezier) *BezierCurve {
	d := &BezierCurve{
		Curve:   c,
		Options: DefaultCurveOptions(),
	}
	d.Resample()
	return d
}

// Resample regenerates the sampled curve points.
func (d *BezierCurve) Resample() {
	tvals := sampleValues(0, 1, stepSize, nil)
	d.CurvePoints = d.CurvePoints[:0]
	for _, t := range tvals {
		d.CurvePoints = append(d.CurvePoints, d.Curve.Point(t))
	}
}
