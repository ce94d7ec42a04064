// Package thermistor implements the Beta parameter model (simplified
// Steinhart-Hart) for NTC thermistors.
package thermistor

import "math"

const (
	// zeroCelsius is 0 degrees Celsius expressed in kelvins.
	zeroCelsius = 273.15
	// referenceKelvin is the fixed 25 degrees Celsius reference point of the
	// Beta model.
	referenceKelvin = zeroCelsius + 25
)

// NTC describes a Negative Temperature Coefficient thermistor by its
// datasheet constants.
type NTC struct {
	// Beta is the material constant in kelvins (the B25/100 datasheet value).
	Beta float64
	// R25 is the resistance at 25 degrees Celsius, in ohms.
	R25 float64
}

// Celsius returns the temperature corresponding to the given thermistor
// resistance in ohms.
//
// The model requires resistance > 0 for the logarithm to be defined. A zero
// resistance yields -Inf from the logarithm and an infinite resistance yields
// +Inf; both drive the result to -273.15 in the limit. Such values are
// propagated, never substituted.
func (n NTC) Celsius(resistance float64) float64 {
	kelvin := 1 / (math.Log(resistance/n.R25)/n.Beta + 1/referenceKelvin)
	return kelvin - zeroCelsius
}

// Resistance is the inverse of Celsius: the resistance the thermistor
// exhibits at the given temperature.
func (n NTC) Resistance(celsius float64) float64 {
	kelvin := celsius + zeroCelsius
	return n.R25 * math.Exp(n.Beta*(1/kelvin-1/referenceKelvin))
}
