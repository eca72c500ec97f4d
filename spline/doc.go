// Package spline implements the evaluation kernel for an interactive editor
// of parametric curves and tensor-product surfaces built from piecewise
// polynomial bases.
//
// # Curves
//
// [Bezier] is a fixed-degree curve (degree = number of control points − 1)
// evaluated by de Casteljau's algorithm over t ∈ [0, 1]. [BSpline] is a
// (degree, control points, knot vector) triple evaluated by the iterative
// de Boor algorithm over its knot domain. Both support inserting a point next
// to the nearest segment of the control polygon; B-splines additionally
// support removing points, changing degree, and toggling between clamped and
// open knot vectors, each of which regenerates the knot vector while
// preserving the clamp state of either end.
//
// [Basis] evaluates B-spline basis functions in isolation, without control
// points, via the Cox–de Boor recursion, and computes Greville abscissae.
// It exists for callers that work with the basis directly, such as the nodal
// interpolation solver.
//
// # Surfaces
//
// [Surface] is a tensor product of two B-spline bases over a rectangular
// control mesh. Evaluation collapses one axis at a time: an isoline extracted
// at a fixed parameter on one axis is itself a full [BSpline] on the other
// axis.
//
// [InterpolateCurves] fits a surface through a family of input curves by
// solving one linear system per coordinate axis, such that the surface's
// isolines at the Greville abscissae of the curve-family axis reproduce the
// input curves.
//
// # Contracts
//
// Constructors return errors for structural invariant violations; a caller
// never receives a usable object together with a non-nil error. Evaluation
// parameters outside the valid domain are a contract breach and panic with a
// diagnostic, in release builds as much as anywhere else. Degenerate numeric
// situations (singular interpolation matrices, zero-length knot spans where
// they are not permitted) fail loudly rather than propagating NaN into
// geometry.
package spline
