package display

import (
	"github.com/Twinklebear/spline-viewer/spline"
)

// CurveOptions are the per-view drawing toggles and colors for a curve.
type CurveOptions struct {
	DrawCurve          bool
	DrawControlPolygon bool
	DrawControlPoints  bool
	DrawBreakPoints    bool
	CurveColor         Color
	ControlColor       Color
	BreakPointColor    Color
}

// DefaultCurveOptions returns the options a freshly added curve view starts
// with.
func DefaultCurveOptions() CurveOptions {
	return CurveOptions{
		DrawCurve:          true,
		DrawControlPolygon: true,
		DrawControlPoints:  true,
		DrawBreakPoints:    true,
		CurveColor:         Color{0.8, 0.8, 0.1},
		ControlColor:       Color{0.8, 0.8, 0.8},
		BreakPointColor:    Color{0.1, 0.8, 0.8},
	}
}

// Curve manages the displayed geometry and interaction state for one B-spline
// curve in the scene. CurvePoints and BreakPoints hold the flat sample
// sequences the rendering layer draws; both are regenerated after every edit.
type Curve struct {
	Curve       *spline.BSpline
	CurvePoints []spline.Point
	BreakPoints []spline.Point
	Options     CurveOptions

	// Index of the control point being dragged, or -1.
	movingPoint int
}

// NewCurve wraps a curve for display and samples it.
func NewCurve(c *spline.BSpline) *Curve {
	d := &Curve{
		Curve:       c,
		Options:     DefaultCurveOptions(),
		movingPoint: -1,
	}
	d.Resample()
	return d
}

// Resample regenerates the displayed curve samples and break points. A curve
// without enough control points for its degree clears the samples instead.
func (d *Curve) Resample() {
	if !d.Curve.Evaluable() {
		d.CurvePoints = nil
		d.BreakPoints = nil
		return
	}
	d.CurvePoints = sampleCurve(d.Curve)
	d.BreakPoints = d.BreakPoints[:0]
	for b := range d.Curve.DomainKnots() {
		d.BreakPoints = append(d.BreakPoints, d.Curve.Point(b))
	}
}

// HandleClick processes a click or drag-frame at pos. A click near a control
// point grabs it for dragging (or removes it when shift is down); any other
// click inserts a new point next to the nearest segment and starts dragging
// it. zoomFactor scales the pick radius so that picking tracks the on-screen
// point size.
func (d *Curve) HandleClick(pos spline.Point, shiftDown bool, zoomFactor float64) {
	nearest, nearestDist := nearestControlPoint(d.Curve.ControlPoints, pos)
	pointSize := 12.0 / (100.0 * zoomFactor)
	switch {
	case shiftDown:
		d.movingPoint = -1
		if nearest != -1 && nearestDist < pointSize {
			tracer().Debugf("removing control point %d", nearest)
			d.Curve.RemovePoint(nearest)
		}
	case d.movingPoint != -1:
		d.Curve.ControlPoints[d.movingPoint] = pos
	case nearest != -1 && nearestDist < pointSize:
		d.movingPoint = nearest
		d.Curve.ControlPoints[nearest] = pos
	default:
		d.movingPoint = d.Curve.InsertPoint(pos)
	}
	d.Resample()
}

// ReleasePoint releases any held point that was being dragged.
func (d *Curve) ReleasePoint() {
	d.movingPoint = -1
}

// SetClamped toggles the clamp state of the curve and resamples.
func (d *Curve) SetClamped(clamped bool) {
	d.Curve.SetClamped(clamped)
	d.Resample()
}

// SetDegree changes the curve degree and resamples. Degrees outside
// [1, MaxPossibleDegree] are ignored, matching the bounds of the degree
// slider this backs.
func (d *Curve) SetDegree(degree int) {
	if degree < 1 || degree > d.Curve.MaxPossibleDegree() {
		return
	}
	d.Curve.SetDegree(degree)
	d.Resample()
}
