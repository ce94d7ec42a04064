package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/config"
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/divider"
)

// valuesPerLine controls the layout of the generated array literal.
const valuesPerLine = 8

// WriteTinyGo emits a Go source file holding the Celsius lookup table as a
// [resolution]float32 array, ready to drop into a TinyGo firmware.
//
// The whole pipeline is recomputed in float32 via math32 rather than
// truncating the float64 rows, so the generated constants are exactly the
// values an MCU doing single-precision math would reach.
func WriteTinyGo(w io.Writer, cfg *config.Config) error {
	values := generateFloat32(cfg)

	needsMath := false
	for _, v := range values {
		if math32.IsInf(v, 0) || math32.IsNaN(v) {
			needsMath = true
			break
		}
	}

	var b strings.Builder
	b.WriteString("// Code generated by Thermistor-Calculator. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//\n// NTC lookup table, index = ADC code, value = temperature (Celsius).\n")
	fmt.Fprintf(&b, "// Circuit variant %d, Beta=%gK, R25=%gohm, bridge=%gohm, Vcc=%gV.\n\n",
		int(cfg.Circuit), cfg.Beta, cfg.R25, cfg.BridgeResistor, cfg.VCC)
	b.WriteString("package main\n\n")
	if needsMath {
		b.WriteString("import \"math\"\n\n")
	}
	fmt.Fprintf(&b, "var thermistorTable = [%d]float32{\n", len(values))
	for i, v := range values {
		if i%valuesPerLine == 0 {
			b.WriteString("\t")
		}
		b.WriteString(float32Literal(v))
		b.WriteString(",")
		if i%valuesPerLine == valuesPerLine-1 || i == len(values)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateFloat32 runs the voltage, resistance and temperature stages in
// single precision.
func generateFloat32(cfg *config.Config) []float32 {
	vcc := float32(cfg.VCC)
	bridge := float32(cfg.BridgeResistor)
	beta := float32(cfg.Beta)
	r25 := float32(cfg.R25)
	maxCode := float32(cfg.Resolution - 1)

	const (
		zeroCelsius     float32 = 273.15
		referenceKelvin float32 = 273.15 + 25
	)

	values := make([]float32, cfg.Resolution)
	for code := range values {
		voltage := vcc * float32(code) / maxCode

		var resistance float32
		if cfg.Circuit == divider.NTCThenResistor {
			resistance = vcc*bridge/voltage - bridge
		} else {
			resistance = voltage * bridge / (vcc - voltage)
		}

		kelvin := 1 / (math32.Log(resistance/r25)/beta + 1/referenceKelvin)
		values[code] = kelvin - zeroCelsius
	}

	return values
}

// float32Literal renders v as a Go expression. Infinities and NaN have no
// literal form, so they come out as math calls; the generated file then
// imports math.
func float32Literal(v float32) string {
	switch {
	case math32.IsInf(v, 1):
		return "float32(math.Inf(1))"
	case math32.IsInf(v, -1):
		return "float32(math.Inf(-1))"
	case math32.IsNaN(v):
		return "float32(math.NaN())"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
