package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"periph.io/x/conn/v3/physic"
)

// Supported output formats.
const (
	FormatTable  = "table"  // tab-separated columns, the historical format
	FormatCSV    = "csv"    // RFC 4180 rows
	FormatPretty = "pretty" // aligned columns with physical units
	FormatTinyGo = "tinygo" // generated Go source for MCU firmware
)

// Formats lists the recognized output format names.
func Formats() []string {
	return []string{FormatTable, FormatCSV, FormatPretty, FormatTinyGo}
}

// WriteTable renders the rows tab-separated, one line per ADC code, preceded
// by a header line.
func WriteTable(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "ADC value\tThermistor voltage (V)\tThermistor resistance (ohm)\tThermistor temperature (Celsius)"); err != nil {
		return err
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%d\t%f\t%f\t%f\n", row.Code, row.Voltage, row.Resistance, row.Temperature)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders the rows as CSV with a header record. Floats use the
// shortest representation that round-trips; infinities appear as +Inf/-Inf.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	header := []string{"adc_value", "voltage_v", "resistance_ohm", "temperature_celsius"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Code),
			strconv.FormatFloat(row.Voltage, 'g', -1, 64),
			strconv.FormatFloat(row.Resistance, 'g', -1, 64),
			strconv.FormatFloat(row.Temperature, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePretty renders the rows in aligned columns with unit suffixes
// (e.g. 1.656V, 10.079kΩ, 24.838°C).
func WritePretty(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ADC\tVoltage\tResistance\tTemperature")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			row.Code,
			prettyVoltage(row.Voltage),
			prettyResistance(row.Resistance),
			prettyTemperature(row.Temperature))
	}

	return tw.Flush()
}

// The physic types are fixed-point integers and cannot hold IEEE-754 special
// values, so non-finite readings are printed literally.

func prettyVoltage(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return physic.ElectricPotential(v * float64(physic.Volt)).String()
}

func prettyResistance(r float64) string {
	if s, ok := nonFinite(r); ok {
		return s
	}
	return physic.ElectricResistance(r * float64(physic.Ohm)).String()
}

func prettyTemperature(t float64) string {
	if s, ok := nonFinite(t); ok {
		return s
	}
	return (physic.ZeroCelsius + physic.Temperature(t*float64(physic.Kelvin))).String()
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsInf(v, 1):
		return "+Inf", true
	case math.IsInf(v, -1):
		return "-Inf", true
	case math.IsNaN(v):
		return "NaN", true
	}
	return "", false
}
