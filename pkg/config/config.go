package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/divider"
)

const (
	// MinResolution is the smallest usable ADC resolution; the voltage stage
	// divides by resolution-1.
	MinResolution = 2
	// MaxResolution corresponds to a 16-bit ADC.
	MaxResolution = 65536
)

// Config holds the resolved circuit and thermistor parameters. It is
// immutable once Validate has accepted it.
type Config struct {
	Circuit        divider.Circuit `yaml:"circuit"`         // 1 or 2
	Beta           float64         `yaml:"beta"`            // kelvins
	R25            float64         `yaml:"r25"`             // ohms
	BridgeResistor float64         `yaml:"bridge_resistor"` // ohms
	VCC            float64         `yaml:"vcc"`             // volts
	Resolution     int             `yaml:"adc_resolution"`  // number of ADC codes
}

// Default returns the configuration for the common 10k NTC on a 3.3V 8-bit
// ADC, circuit variant 1.
func Default() *Config {
	return &Config{
		Circuit:        divider.ResistorThenNTC,
		Beta:           4300,
		R25:            10000,
		BridgeResistor: 10000,
		VCC:            3.3,
		Resolution:     256,
	}
}

// Load loads configuration from a YAML file, using default values for any
// missing fields. The result is not validated; callers overlay CLI flags
// first and then call Validate.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every parameter and returns a descriptive error for the
// first offending one. No partial computation happens after a failure.
func (c *Config) Validate() error {
	if !c.Circuit.Valid() {
		return fmt.Errorf("circuit variant must be 1 or 2, got %d", int(c.Circuit))
	}
	if err := positive("thermistor Beta coefficient", c.Beta); err != nil {
		return err
	}
	if err := positive("thermistor reference resistance (R25)", c.R25); err != nil {
		return err
	}
	if err := positive("voltage divider bridge resistor", c.BridgeResistor); err != nil {
		return err
	}
	if err := positive("Vcc voltage", c.VCC); err != nil {
		return err
	}
	if c.Resolution < MinResolution || c.Resolution > MaxResolution {
		return fmt.Errorf("ADC resolution must be between %d and %d, got %d",
			MinResolution, MaxResolution, c.Resolution)
	}
	return nil
}

// ensureDefaults fills unset (zero) fields with default values. None of the
// parameters admits zero as a valid value, so a zero field always means the
// file omitted it.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Circuit == 0 {
		c.Circuit = def.Circuit
	}
	if c.Beta == 0 {
		c.Beta = def.Beta
	}
	if c.R25 == 0 {
		c.R25 = def.R25
	}
	if c.BridgeResistor == 0 {
		c.BridgeResistor = def.BridgeResistor
	}
	if c.VCC == 0 {
		c.VCC = def.VCC
	}
	if c.Resolution == 0 {
		c.Resolution = def.Resolution
	}
}

func positive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%s must be a positive finite number, got %g", name, value)
	}
	return nil
}
