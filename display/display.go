// Package display maintains the flat point sequences a rendering layer draws
// for curves, surfaces, and interpolated surface families. It owns no GPU or
// windowing resources: every view is a plain struct of sampled geometry and
// per-view options, recomputed eagerly and synchronously after each
// structural edit.
package display

import (
	"math"
	"slices"
	"sort"

	"github.com/npillmayer/schuko/tracing"

	"github.com/Twinklebear/spline-viewer/spline"
)

// tracer writes to trace with key 'display'
func tracer() tracing.Trace {
	return tracing.Select("display")
}

// stepSize is the parameter increment used to sample curves for drawing.
const stepSize = 0.01

// isolineStepSize is the parameter increment between neighboring surface
// isolines.
const isolineStepSize = 0.1

// Color is an RGB triple in [0, 1] per channel.
type Color [3]float32

// Attenuate scales the color towards black, used to dim unselected views.
func (c Color) Attenuate(f float32) Color {
	return Color{f * c[0], f * c[1], f * c[2]}
}

// sampleCurve evaluates the curve at stepSize increments across its knot
// domain, including any extra parameter values, which are merged in sorted
// order so that shared values land on shared samples.
func sampleCurve(c *spline.BSpline, extra ...float64) []spline.Point {
	lo, hi := c.KnotDomain()
	tvals := sampleValues(lo, hi, stepSize, extra)
	points := make([]spline.Point, 0, len(tvals))
	for _, t := range tvals {
		points = append(points, c.Point(t))
	}
	return points
}

// sampleValues returns the sorted, deduplicated union of a regular step grid
// over [lo, hi] and the extra values that fall within it.
func sampleValues(lo, hi, step float64, extra []float64) []float64 {
	steps := int((hi - lo) / step)
	tvals := make([]float64, 0, steps+1+len(extra))
	for s := 0; s <= steps; s++ {
		t := lo + step*float64(s)
		if t > hi {
			// Accumulated rounding can push the last step past the domain.
			break
		}
		tvals = append(tvals, t)
	}
	for _, t := range extra {
		if t >= lo && t <= hi {
			tvals = append(tvals, t)
		}
	}
	sort.Float64s(tvals)
	return slices.Compact(tvals)
}

// nearestControlPoint returns the index of the control point closest to pos
// and its distance, or (-1, +Inf) if there are no points.
func nearestControlPoint(points []spline.Point, pos spline.Point) (int, float64) {
	nearest, nearestDist := -1, math.Inf(1)
	for i, p := range points {
		if d := p.Distance(pos); d < nearestDist {
			nearest, nearestDist = i, d
		}
	}
	return nearest, nearestDist
}
