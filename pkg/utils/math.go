package utils

import "math"

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// RoundToInt rounds half to even, so 2.5 -> 2 and -50.5 -> -50.
func RoundToInt(v float64) int {
	return int(math.RoundToEven(v))
}
