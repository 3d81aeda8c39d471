package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ":2560", config.Listen)
	assert.Equal(t, uint(1), config.StackID)
	assert.NoError(t, validateConfig(config))

	bc := config.bridgeConfig()
	assert.Equal(t, version.Default, bc.Version)
	assert.Equal(t, wire.IndexWidth8, bc.IndexWidth)
	assert.NoError(t, bc.Validate())
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
listen: "127.0.0.1:3000"
stack_id: 3
index_width: 2
nv_path: /tmp/nv.img
advertise: true
release: "2.4.1"
fragment:
  max_message_size: 1024
  ack_timeout: 250ms
`)

	config, err := parseConfig([]string{"-config", path, "-stack-id", "5"})
	require.NoError(t, err)
	require.NoError(t, validateConfig(config))

	assert.Equal(t, "127.0.0.1:3000", config.Listen)
	assert.Equal(t, uint(5), config.StackID, "flag wins over file")
	assert.True(t, config.Advertise)

	bc := config.bridgeConfig()
	assert.Equal(t, uint8(5), bc.StackID)
	assert.Equal(t, wire.IndexWidth16, bc.IndexWidth)
	assert.Equal(t, version.Record{Transport: 2, Product: 1, Major: 2, Minor: 4, Maint: 1}, bc.Version)
	assert.Equal(t, 1024, bc.Fragment.MaxMessageSize)
	assert.Equal(t, 250*time.Millisecond, bc.Fragment.AckTimeout)
	assert.NotZero(t, bc.Fragment.MaxResends, "unset file keys keep defaults")
}

func TestParseConfigFileErrors(t *testing.T) {
	_, err := parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = parseConfig([]string{"-config", writeConfig(t, "stack_id: [1")})
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"stack id", func(c *Config) { c.StackID = 8 }},
		{"index width", func(c *Config) { c.IndexWidth = 3 }},
		{"product", func(c *Config) { c.Product = 256 }},
		{"release", func(c *Config) { c.Release = "1.2" }},
		{"ext addr", func(c *Config) { c.ExtAddr = "00:11" }},
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig()
			tt.mutate(&config)
			assert.Error(t, validateConfig(config))
		})
	}
}

func TestEngineConfig(t *testing.T) {
	config := defaultConfig()
	config.ExtAddr = "00:12:4b:00:00:00:00:02"
	config.ConfirmDelay = 10 * time.Millisecond

	mc := config.engineConfig()
	assert.Equal(t, wire.ExtAddr{0x02, 0, 0, 0, 0, 0x4B, 0x12, 0x00}, mc.ExtAddr)
	assert.Equal(t, 10*time.Millisecond, mc.ConfirmDelay)
}
