// SPDX-License-Identifier: EPL-2.0

package utils

// Lerp linearly interpolates between a and b.
// x is the fractional position (0 <= x <= 1).
func Lerp(a, b, x float32) float32 {
	return a + (b-a)*x
}

// CubicInterpolate evaluates a Catmull-Rom spline through four
// consecutive samples. x is the fractional position between y1 and y2
// (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	c1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c2 := -0.5*y0 + 0.5*y2

	return ((c0*x+c1)*x+c2)*x + y1
}
