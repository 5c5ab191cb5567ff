package utils

import "math"

// RoundWithOneDecimalPlace arredonda na fronteira de apresentação.
// NaN é preservado: "sem taxa" nunca vira 0 ao formatar.
func RoundWithOneDecimalPlace(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}

	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}

	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
