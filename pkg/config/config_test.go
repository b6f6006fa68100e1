package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_PRETTY", "INITIAL_CASH", "PRICES_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.InitialCash.Equal(decimal.NewFromInt(10000)))
	assert.Empty(t, cfg.PricesFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("INITIAL_CASH", "2500.50")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Pretty)
	assert.True(t, cfg.InitialCash.Equal(decimal.NewFromFloat(2500.50)))
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "garbage initial cash", key: "INITIAL_CASH", value: "lots"},
		{name: "negative initial cash", key: "INITIAL_CASH", value: "-100"},
		{name: "port out of range", key: "PORT", value: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadPrices(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		path := writePrices(t, "AAPL: 150.0\ntsla: 700\n")

		prices, err := LoadPrices(path)

		require.NoError(t, err)
		require.Len(t, prices, 2)
		assert.True(t, prices["AAPL"].Equal(decimal.NewFromFloat(150.0)))
		assert.True(t, prices["tsla"].Equal(decimal.NewFromInt(700)))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPrices(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		path := writePrices(t, "")
		_, err := LoadPrices(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writePrices(t, "AAPL: [this is not a price\n")
		_, err := LoadPrices(path)
		assert.Error(t, err)
	})
}

func TestPrices(t *testing.T) {
	t.Run("built-in table by default", func(t *testing.T) {
		cfg := &Config{}

		prices, err := cfg.Prices()

		require.NoError(t, err)
		assert.Contains(t, prices, "AAPL")
		assert.Len(t, prices, 8)
	})

	t.Run("file overrides built-in table", func(t *testing.T) {
		cfg := &Config{PricesFile: writePrices(t, "ACME: 42.0\n")}

		prices, err := cfg.Prices()

		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.True(t, prices["ACME"].Equal(decimal.NewFromFloat(42.0)))
	})
}

func writePrices(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
