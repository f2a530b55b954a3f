package common

import "math"

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees folds an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	if deg >= 0 && deg < 360 {
		return deg
	}
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
