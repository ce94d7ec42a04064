// Package table generates the ADC lookup table and renders it in several
// output formats.
package table

import (
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/config"
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/divider"
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/thermistor"
)

// Row holds all computed values for a single ADC code.
type Row struct {
	Code        int     // ADC code in [0, resolution-1]
	Voltage     float64 // divider output voltage (V)
	Resistance  float64 // thermistor resistance (ohm)
	Temperature float64 // thermistor temperature (Celsius)
}

// Generate computes one Row per ADC code, in ascending code order. The
// returned slice is sized exactly to the configured resolution.
//
// Boundary codes produce infinite resistances (see divider package); those
// rows are kept as computed, never skipped or clamped.
func Generate(cfg *config.Config) []Row {
	ntc := thermistor.NTC{Beta: cfg.Beta, R25: cfg.R25}

	rows := make([]Row, cfg.Resolution)
	for code := range rows {
		voltage := divider.OutputVoltage(cfg.VCC, cfg.Resolution, code)
		resistance := cfg.Circuit.ThermistorResistance(cfg.VCC, voltage, cfg.BridgeResistor)

		rows[code] = Row{
			Code:        code,
			Voltage:     voltage,
			Resistance:  resistance,
			Temperature: ntc.Celsius(resistance),
		}
	}

	return rows
}
