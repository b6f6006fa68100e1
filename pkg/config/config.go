package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vignesh-goutham/papertrade/pkg/pricefeed"
)

// Config holds application configuration
type Config struct {
	Port        int
	LogLevel    string
	Pretty      bool
	InitialCash decimal.Decimal
	PricesFile  string
}

// Load reads configuration from environment variables. A .env file in
// the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	initialCash, err := decimal.NewFromString(getEnv("INITIAL_CASH", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_CASH: %w", err)
	}

	cfg := &Config{
		Port:        getEnvAsInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Pretty:      getEnvAsBool("LOG_PRETTY", true),
		InitialCash: initialCash,
		PricesFile:  getEnv("PRICES_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.InitialCash.IsNegative() {
		return fmt.Errorf("initial cash must not be negative, got %s", c.InitialCash)
	}

	return nil
}

// Prices returns the price table to trade against: the YAML file named
// by PricesFile when set, otherwise the built-in table.
func (c *Config) Prices() (map[string]decimal.Decimal, error) {
	if c.PricesFile == "" {
		return pricefeed.DefaultPrices(), nil
	}

	return LoadPrices(c.PricesFile)
}

// LoadPrices reads a symbol -> price mapping from a YAML file.
func LoadPrices(path string) (map[string]decimal.Decimal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading price table: %w", err)
	}

	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing price table %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("price table %s is empty", path)
	}

	prices := make(map[string]decimal.Decimal, len(raw))
	for symbol, value := range raw {
		prices[symbol] = decimal.NewFromFloat(value)
	}

	return prices, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
