package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Device)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, uint8(35), cfg.Alert.MaxC)
	assert.Equal(t, 1000, cfg.Sim.TickHz)
	assert.Equal(t, uint32(20), cfg.Sim.SamplePeriodMs)
	assert.Equal(t, 5, cfg.Sim.Window)
	assert.Equal(t, uint32(4096), cfg.Sim.FullScale)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tempmon.yaml")
	data := `
serial:
  device: /dev/ttyUSB3
alert:
  max_c: 30
sim:
  sample_period_ms: 40
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB3", cfg.Serial.Device)
	assert.Equal(t, uint8(30), cfg.Alert.MaxC)
	assert.Equal(t, uint32(40), cfg.Sim.SamplePeriodMs)

	// Untouched fields fall back to defaults.
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, uint32(500), cfg.Sim.ReportPeriodMs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serial: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
