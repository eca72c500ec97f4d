package spline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

var (
	// ErrTooFewPoints indicates a curve has too few control points for its degree.
	ErrTooFewPoints = errors.New("too few control points for curve")
	// ErrKnotCount indicates a knot vector length inconsistent with the control
	// point count and degree.
	ErrKnotCount = errors.New("invalid number of knots")
	// ErrEmptyMesh indicates a surface control mesh with no rows or no columns.
	ErrEmptyMesh = errors.New("surface control mesh must not be empty")
	// ErrRaggedMesh indicates surface control mesh rows of unequal length.
	ErrRaggedMesh = errors.New("surface control mesh rows must have equal length")
	// ErrTooFewCurves indicates an interpolation input with fewer than two curves.
	ErrTooFewCurves = errors.New("interpolation needs at least two input curves")
	// ErrDegreeMismatch indicates interpolation input curves of unequal degree.
	ErrDegreeMismatch = errors.New("input curves must share one degree")
	// ErrKnotMismatch indicates interpolation input curves with unequal knot vectors.
	ErrKnotMismatch = errors.New("input curves must share one knot vector")
	// ErrSingular indicates a singular Greville interpolation matrix.
	ErrSingular = errors.New("interpolation matrix is singular")
)
