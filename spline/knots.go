package spline

import "sort"

// generateKnots builds a fresh knot vector of the given length for a curve of
// the given degree: an increasing integer sequence starting at zero, with the
// first degree+1 values held at the start value when the left end is clamped
// and the last degree+1 values held at the end value when the right end is.
func generateKnots(clampedLeft, clampedRight bool, count, degree int) []float64 {
	knots := make([]float64, 0, count)
	x := 0.0
	for i := 0; i < count; i++ {
		knots = append(knots, x)
		if (clampedLeft && i < degree) || (clampedRight && i >= count-1-degree) {
			continue
		}
		x++
	}
	return knots
}

// isClampedLeft reports whether the first degree+1 knots are all equal.
func isClampedLeft(knots []float64, degree int) bool {
	if len(knots) < degree+1 {
		return false
	}
	for _, k := range knots[1 : degree+1] {
		if k != knots[0] {
			return false
		}
	}
	return true
}

// isClampedRight reports whether the last degree+1 knots are all equal.
func isClampedRight(knots []float64, degree int) bool {
	if len(knots) < degree+1 {
		return false
	}
	last := knots[len(knots)-1]
	for _, k := range knots[len(knots)-degree-1 : len(knots)-1] {
		if k != last {
			return false
		}
	}
	return true
}

// upperBound returns the index of the first knot strictly greater than t, or
// len(knots) if no knot is greater. The knots must be sorted.
func upperBound(knots []float64, t float64) int {
	return sort.Search(len(knots), func(i int) bool {
		return knots[i] > t
	})
}
