package display

import (
	"github.com/Twinklebear/spline-viewer/spline"
)

// SurfInterpolation manages the display of a nodal surface interpolation: the
// family of input curves and the surface solved through them.
type SurfInterpolation struct {
	InputCurves []*spline.BSpline
	// InputSamples[i] is the sampled polyline of InputCurves[i].
	InputSamples [][]spline.Point
	// Surf displays the solved interpolating surface.
	Surf *Surf

	DrawInputCurves bool
	InputColor      Color
}

// NewSurfInterpolation solves for the surface interpolating the input curves
// and samples both the inputs and the solution for display.
func NewSurfInterpolation(curves []*spline.BSpline) (*SurfInterpolation, error) {
	surf, err := spline.InterpolateCurves(curves)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("solved interpolating surface through %d curves", len(curves))
	surfView, err := NewSurf(surf)
	if err != nil {
		return nil, err
	}
	d := &SurfInterpolation{
		InputCurves:     curves,
		Surf:            surfView,
		DrawInputCurves: true,
		InputColor:      Color{0.1, 0.8, 0.1},
	}
	d.InputSamples = make([][]spline.Point, 0, len(curves))
	for _, c := range curves {
		d.InputSamples = append(d.InputSamples, sampleCurve(c))
	}
	return d, nil
}
