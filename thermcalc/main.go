// Command thermcalc computes the ADC lookup table (containing Celsius
// temperatures) corresponding to a specific thermistor voltage, taking into
// account the voltage divider the thermistor is connected to. Only Negative
// Temperature Coefficient thermistors are supported.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/config"
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/divider"
	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/table"
)

const circuitDiagrams = `Here are the two voltage divider circuits that are supported by the program:

Circuit variant 1        Circuit variant 2
-----------------        -----------------

      Vcc                      Vcc
       |                        |
      +-+                      +-+
      | | Resistor             | | NTC
      +-+                      +-+
       |                        |
       |--- Vntc                |--- Vntc
       |                        |
      +-+                      +-+
      | | NTC                  | | Resistor
      +-+                      +-+
       |                        |
      GND                      GND
`

func main() {
	def := config.Default()

	fs := pflag.NewFlagSet("thermcalc", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { usage(os.Stderr, fs) }

	circuitFlag := fs.IntP("circuit", "c", int(def.Circuit), "circuit variant, 1 or 2 (see the diagrams above)")
	betaFlag := fs.Float64P("beta", "B", def.Beta, "thermistor Beta coefficient in kelvins (the B25/100 datasheet value)")
	r25Flag := fs.Float64P("r25", "R", def.R25, "thermistor resistance at 25 Celsius degrees, in ohms")
	resistorFlag := fs.Float64P("resistor", "r", def.BridgeResistor, "voltage divider bridge resistor value, in ohms")
	vccFlag := fs.Float64P("vcc", "v", def.VCC, "Vcc voltage, in volts")
	resolutionFlag := fs.IntP("resolution", "a", def.Resolution, "ADC resolution (how many values the lookup table holds)")
	configFlag := fs.StringP("config", "f", "", "optional YAML configuration file; explicit flags override it")
	formatFlag := fs.StringP("format", "F", table.FormatTable,
		fmt.Sprintf("output format, one of: %s", strings.Join(table.Formats(), ", ")))
	helpFlag := fs.BoolP("help", "h", false, "display this help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fail(fs, err)
	}
	if *helpFlag {
		usage(os.Stdout, fs)
		return
	}

	// Resolution order: defaults, then the config file, then explicit flags.
	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fail(fs, err)
		}
		cfg = loaded
	}
	if fs.Changed("circuit") {
		cfg.Circuit = divider.Circuit(*circuitFlag)
	}
	if fs.Changed("beta") {
		cfg.Beta = *betaFlag
	}
	if fs.Changed("r25") {
		cfg.R25 = *r25Flag
	}
	if fs.Changed("resistor") {
		cfg.BridgeResistor = *resistorFlag
	}
	if fs.Changed("vcc") {
		cfg.VCC = *vccFlag
	}
	if fs.Changed("resolution") {
		cfg.Resolution = *resolutionFlag
	}

	if err := cfg.Validate(); err != nil {
		fail(fs, err)
	}

	var err error
	switch *formatFlag {
	case table.FormatTable:
		err = table.WriteTable(os.Stdout, table.Generate(cfg))
	case table.FormatCSV:
		err = table.WriteCSV(os.Stdout, table.Generate(cfg))
	case table.FormatPretty:
		err = table.WritePretty(os.Stdout, table.Generate(cfg))
	case table.FormatTinyGo:
		err = table.WriteTinyGo(os.Stdout, cfg)
	default:
		fail(fs, fmt.Errorf("unknown output format %q", *formatFlag))
	}
	if err != nil {
		log.Fatalf("Failed to write lookup table: %v", err)
	}
}

// usage prints the program description, the supported circuit diagrams and
// the flag help.
func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Compute the ADC lookup table (containing Celsius temperatures) corresponding to a")
	fmt.Fprintln(w, "specific thermistor voltage, taking into account the voltage divider the")
	fmt.Fprintln(w, "thermistor is connected to.")
	fmt.Fprintln(w, "For now, only Negative Temperature Coefficient thermistors are supported.")
	fmt.Fprintln(w)
	fmt.Fprint(w, circuitDiagrams, "\n")
	fmt.Fprintf(w, "Usage: %s [flags]\n\n", fs.Name())
	fmt.Fprint(w, fs.FlagUsages())
}

// fail reports a configuration error together with the usage text and exits
// non-zero. No table output has been produced at this point.
func fail(fs *pflag.FlagSet, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	usage(os.Stderr, fs)
	os.Exit(1)
}
