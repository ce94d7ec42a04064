package divider

import "fmt"

// Circuit identifies which leg of the voltage divider the thermistor
// occupies.
type Circuit int

const (
	// ResistorThenNTC is circuit variant 1: the fixed resistor sits on the
	// Vcc side and the thermistor on the ground side.
	ResistorThenNTC Circuit = 1
	// NTCThenResistor is circuit variant 2: the thermistor sits on the Vcc
	// side and the fixed resistor on the ground side.
	NTCThenResistor Circuit = 2
)

// Valid reports whether c is one of the two supported wirings.
func (c Circuit) Valid() bool {
	return c == ResistorThenNTC || c == NTCThenResistor
}

func (c Circuit) String() string {
	switch c {
	case ResistorThenNTC:
		return "resistor-then-NTC"
	case NTCThenResistor:
		return "NTC-then-resistor"
	default:
		return fmt.Sprintf("Circuit(%d)", int(c))
	}
}

// OutputVoltage converts an ADC code to the divider output voltage, assuming
// an ideal linear ADC transfer function. Code 0 maps to 0V and code
// resolution-1 maps exactly to vcc.
func OutputVoltage(vcc float64, resolution, code int) float64 {
	// The maximum reachable ADC code is resolution-1.
	return vcc * float64(code) / float64(resolution-1)
}

// ThermistorResistance inverts the divider equation for the wiring c and
// returns the thermistor resistance corresponding to the output voltage vout.
//
// At the boundary of the linear model the divisor reaches zero (vout == vcc
// for ResistorThenNTC, vout == 0 for NTCThenResistor) and the result is +Inf.
// That is a property of the circuit, not an error; callers must let it
// propagate through the row.
func (c Circuit) ThermistorResistance(vcc, vout, bridge float64) float64 {
	switch c {
	case NTCThenResistor:
		return highSideResistance(vcc, vout, bridge)
	default:
		return lowSideResistance(vcc, vout, bridge)
	}
}

// DividerVoltage is the forward divider equation: the output voltage produced
// by a thermistor of the given resistance in the wiring c.
func (c Circuit) DividerVoltage(vcc, resistance, bridge float64) float64 {
	if c == NTCThenResistor {
		return vcc * bridge / (resistance + bridge)
	}
	return vcc * resistance / (resistance + bridge)
}

// lowSideResistance solves for the ground-side resistor:
// R = Vout * Rbridge / (Vcc - Vout)
func lowSideResistance(vcc, vout, bridge float64) float64 {
	return vout * bridge / (vcc - vout)
}

// highSideResistance solves for the Vcc-side resistor:
// R = Vcc * Rbridge / Vout - Rbridge
func highSideResistance(vcc, vout, bridge float64) float64 {
	return vcc*bridge/vout - bridge
}
