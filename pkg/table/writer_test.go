package table

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/config"
)

func TestWriteTable(t *testing.T) {
	rows := Generate(config.Default())

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 257) // header + one line per ADC code

	assert.Equal(t,
		"ADC value\tThermistor voltage (V)\tThermistor resistance (ohm)\tThermistor temperature (Celsius)",
		lines[0])
	assert.Equal(t, "0\t0.000000\t0.000000\t-273.150000", lines[1])

	// The boundary row is present and carries the infinity.
	assert.True(t, strings.HasPrefix(lines[256], "255\t"))
	assert.Contains(t, lines[256], "+Inf")
}

func TestWriteCSV(t *testing.T) {
	rows := Generate(config.Default())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 257)

	assert.Equal(t, []string{"adc_value", "voltage_v", "resistance_ohm", "temperature_celsius"}, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "128", records[129][0])
	assert.Equal(t, "+Inf", records[256][2])
}

func TestWritePretty(t *testing.T) {
	rows := Generate(config.Default())

	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, rows))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 257)

	assert.Contains(t, out, "°C")
	assert.Contains(t, out, "Ω")

	// Non-finite resistances bypass the physic rendering.
	assert.Contains(t, lines[256], "+Inf")
}
