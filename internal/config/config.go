package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	API         APIConfig
	Store       StoreConfig
	Checkout    CheckoutConfig
	Catalog     CatalogConfig
}

// APIConfig points at the spreadsheet-backed script endpoint that
// serves both the product list and order creation
type APIConfig struct {
	URL string // API_URL: required
}

// StoreConfig locates the local key-value store standing in for
// browser localStorage
type StoreConfig struct {
	DataDir string
}

type CheckoutConfig struct {
	SubmitTimeout time.Duration
	// AllowUnconfirmedOrders issues a local order id when the order
	// endpoint response cannot be read (degraded success)
	AllowUnconfirmedOrders bool
}

type CatalogConfig struct {
	// EnableSampleProducts serves the built-in sample set when both
	// the live API and the cache are unavailable
	EnableSampleProducts bool
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ORDER_TIMEOUT_SECONDS", "15")
	viper.SetDefault("ALLOW_UNCONFIRMED_ORDERS", "true")
	viper.SetDefault("ENABLE_SAMPLE_PRODUCTS", "true")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		API: APIConfig{
			URL: strings.TrimSpace(getEnvOrViper("API_URL", "")),
		},
		Store: StoreConfig{
			DataDir: getEnvOrViper("DATA_DIR", "./data"),
		},
		Checkout: CheckoutConfig{
			SubmitTimeout:          time.Duration(viper.GetInt("ORDER_TIMEOUT_SECONDS")) * time.Second,
			AllowUnconfirmedOrders: viper.GetBool("ALLOW_UNCONFIRMED_ORDERS"),
		},
		Catalog: CatalogConfig{
			EnableSampleProducts: viper.GetBool("ENABLE_SAMPLE_PRODUCTS"),
		},
	}

	if cfg.Checkout.SubmitTimeout <= 0 {
		cfg.Checkout.SubmitTimeout = 15 * time.Second
	}

	// Validate required fields
	if cfg.API.URL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
