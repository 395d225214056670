package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// AlmostEqual compara floats com tolerância relativa, para somas acumuladas
func AlmostEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= tolerance
	}

	return diff <= tolerance*scale
}
