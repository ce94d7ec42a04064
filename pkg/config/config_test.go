package config

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RICCIARDI-Adrien/Thermistor-Calculator/pkg/divider"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, divider.ResistorThenNTC, cfg.Circuit)
	assert.Equal(t, float64(4300), cfg.Beta)
	assert.Equal(t, float64(10000), cfg.R25)
	assert.Equal(t, float64(10000), cfg.BridgeResistor)
	assert.Equal(t, float64(3.3), cfg.VCC)
	assert.Equal(t, 256, cfg.Resolution)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
circuit: 2
beta: 3950
r25: 100000
bridge_resistor: 47000
vcc: 5.0
adc_resolution: 1024
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, divider.NTCThenResistor, cfg.Circuit)
	assert.Equal(t, float64(3950), cfg.Beta)
	assert.Equal(t, float64(100000), cfg.R25)
	assert.Equal(t, float64(47000), cfg.BridgeResistor)
	assert.Equal(t, float64(5.0), cfg.VCC)
	assert.Equal(t, 1024, cfg.Resolution)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
beta: 3435
adc_resolution: 4096
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, float64(3435), cfg.Beta)
	assert.Equal(t, 4096, cfg.Resolution)

	// Should use defaults for missing fields
	assert.Equal(t, divider.ResistorThenNTC, cfg.Circuit)
	assert.Equal(t, float64(10000), cfg.R25)
	assert.Equal(t, float64(3.3), cfg.VCC)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid default", func(c *Config) {}, ""},
		{"circuit variant 3", func(c *Config) { c.Circuit = 3 }, "circuit variant must be 1 or 2"},
		{"circuit variant 0", func(c *Config) { c.Circuit = 0 }, "circuit variant must be 1 or 2"},
		{"negative beta", func(c *Config) { c.Beta = -4300 }, "Beta coefficient"},
		{"NaN beta", func(c *Config) { c.Beta = math.NaN() }, "Beta coefficient"},
		{"zero R25", func(c *Config) { c.R25 = 0 }, "reference resistance"},
		{"infinite bridge resistor", func(c *Config) { c.BridgeResistor = math.Inf(1) }, "bridge resistor"},
		{"zero Vcc", func(c *Config) { c.VCC = 0 }, "Vcc voltage"},
		{"resolution too small", func(c *Config) { c.Resolution = 1 }, "ADC resolution must be between 2 and 65536"},
		{"resolution above 16-bit", func(c *Config) { c.Resolution = 100000 }, "ADC resolution must be between 2 and 65536"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Circuit = divider.NTCThenResistor
	cfg.Resolution = 4096

	tmpfile, err := os.CreateTemp("", "test_save_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	err = cfg.Save(tmpfile.Name())
	require.NoError(t, err)

	// Load it back and verify
	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, divider.NTCThenResistor, loaded.Circuit)
	assert.Equal(t, 4096, loaded.Resolution)
}
