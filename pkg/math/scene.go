package math

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapPhase keeps an accumulating angle below one turn. A phase advances by
// a small step per frame, so one subtraction is enough.
func WrapPhase(phase float64) float64 {
	if phase > Tau {
		phase -= Tau
	}
	return phase
}

// NormalizeRange maps value from [min, max] onto [0, 1].
// Callers must ensure max != min.
func NormalizeRange(value, min, max float64) float64 {
	return (value - min) / (max - min)
}

// Polar returns the ground-plane point at radius r and angle theta.
// theta = 0 points along +Z and increases towards +X.
func Polar(r, theta float64) Vec3 {
	s, c := math.Sincos(theta)
	return Vec3{float32(r * s), 0, float32(r * c)}
}

// PlanarShadow returns the matrix that flattens geometry onto plane as seen
// from light. A light with w = 0 is directional.
//
//	M[row][col] = δ(row,col)·(plane·light) − light[row]·plane[col]
func PlanarShadow(light, plane Vec4) Mat4 {
	dot := plane.Dot(light)

	var m Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			v := -light[row] * plane[col]
			if row == col {
				v += dot
			}
			m[col*4+row] = v
		}
	}
	return m
}
