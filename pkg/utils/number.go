package utils

import "math"

// RoundWithTwoDecimalPlace rounds half away from zero, matching how the
// dashboard displays percent changes.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
