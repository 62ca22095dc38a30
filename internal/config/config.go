package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/quickmart/checkout-api/pkg/logger"
)

type Config struct {
	App       AppConfig
	Catalog   CatalogConfig
	Receipt   ReceiptConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// CatalogConfig selects where the catalog and discount card directory are
// loaded from. Backend is "csv" (default) or "postgres"; the CSV paths also
// feed the postgres seeder.
type CatalogConfig struct {
	Backend      string
	ProductsPath string
	CardsPath    string
}

// ReceiptConfig holds receipt rendering settings.
type ReceiptConfig struct {
	CurrencyMarker string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// DSN builds the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn().Err(err).Msg(".env file not found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "checkout-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CATALOG_BACKEND", "csv")
	viper.SetDefault("CATALOG_PRODUCTS_PATH", "./data/products.csv")
	viper.SetDefault("CATALOG_CARDS_PATH", "./data/discountCards.csv")
	viper.SetDefault("RECEIPT_CURRENCY_MARKER", "$")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "checkout")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_RPS", 25.0)
	viper.SetDefault("RATE_LIMIT_BURST", 50)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Catalog: CatalogConfig{
			Backend:      viper.GetString("CATALOG_BACKEND"),
			ProductsPath: viper.GetString("CATALOG_PRODUCTS_PATH"),
			CardsPath:    viper.GetString("CATALOG_CARDS_PATH"),
		},
		Receipt: ReceiptConfig{
			CurrencyMarker: viper.GetString("RECEIPT_CURRENCY_MARKER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
	}
}
