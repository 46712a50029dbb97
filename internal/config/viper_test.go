package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, DefaultFilename, cfg.Export.Filename)
	assert.Equal(t, "IDR", cfg.Export.DefaultCurrency)
	assert.Equal(t, 4, cfg.Export.SkipRows)
	assert.Equal(t, 9, cfg.Export.MinColumns)
	assert.Equal(t, 5, cfg.Export.PreviewLimit)
	assert.Equal(t, 3, cfg.Export.Columns.HotelID)
	assert.Equal(t, 7, cfg.Export.Columns.Currency)
	assert.Equal(t, 8, cfg.Export.Columns.Amount)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("DEPOSIT_EXPORT_DEFAULT_CURRENCY", "USD")
	t.Setenv("DEPOSIT_LOG_LEVEL", "debug")

	cfg := defaultConfig(t)

	assert.Equal(t, "USD", cfg.Export.DefaultCurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"Defaults are valid", func(c *Config) {}, true},
		{"Bad log level", func(c *Config) { c.Log.Level = "verbose" }, false},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"Empty filename", func(c *Config) { c.Export.Filename = "" }, false},
		{"Negative skip rows", func(c *Config) { c.Export.SkipRows = -1 }, false},
		{"Empty default currency", func(c *Config) { c.Export.DefaultCurrency = "" }, false},
		{"Negative preview limit", func(c *Config) { c.Export.PreviewLimit = -1 }, false},
		{"Negative column index", func(c *Config) { c.Export.Columns.Amount = -1 }, false},
		{"Column outside minimum width", func(c *Config) { c.Export.Columns.Amount = 9 }, false},
		{"Wider schema is valid", func(c *Config) {
			c.Export.MinColumns = 12
			c.Export.Columns.Amount = 11
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSchemaFromConfig(t *testing.T) {
	cfg := defaultConfig(t)
	schema := cfg.Schema()

	assert.Equal(t, cfg.Export.SkipRows, schema.SkipRows)
	assert.Equal(t, cfg.Export.MinColumns, schema.MinColumns)
	assert.Equal(t, cfg.Export.Columns.HotelID, schema.HotelIDColumn)
	assert.Equal(t, cfg.Export.Columns.Currency, schema.CurrencyColumn)
	assert.Equal(t, cfg.Export.Columns.Amount, schema.AmountColumn)
	assert.Equal(t, cfg.Export.DefaultCurrency, schema.DefaultCurrency)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
