package display

import (
	"github.com/Twinklebear/spline-viewer/spline"
)

// Polyline displays an imported list of points as-is, without any curve
// fitted through them.
type Polyline struct {
	Points     []spline.Point
	DrawLines  bool
	DrawPoints bool
	Color      Color
}

// NewPolyline wraps a point list for display.
func NewPolyline(points []spline.Point) *Polyline {
	return &Polyline{
		Points:     points,
		DrawLines:  true,
		DrawPoints: true,
		Color:      Color{0.8, 0.8, 0.8},
	}
}
