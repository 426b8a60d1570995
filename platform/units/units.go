// Package units converts between the API's decimal representation
// (currency amounts, meters) and the integer storage representation
// (cents, millimeters). All arithmetic in services happens on the
// integer side; floats exist only at the transport boundary.
package units

import "math"

// MillimetersPerMeter is the length scale factor.
const MillimetersPerMeter = 1000

// CentsPerUnit is the currency scale factor.
const CentsPerUnit = 100

// CentsFromFloat converts a currency amount to cents, rounding half away from zero.
func CentsFromFloat(amount float64) int64 {
	return int64(math.Round(amount * CentsPerUnit))
}

// FloatFromCents converts cents back to a currency amount.
func FloatFromCents(cents int64) float64 {
	return float64(cents) / CentsPerUnit
}

// MillimetersFromMeters converts a length in meters to whole millimeters,
// rounding half away from zero.
func MillimetersFromMeters(meters float64) int64 {
	return int64(math.Round(meters * MillimetersPerMeter))
}

// MetersFromMillimeters converts millimeters back to meters.
func MetersFromMillimeters(mm int64) float64 {
	return float64(mm) / MillimetersPerMeter
}
