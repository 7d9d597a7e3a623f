package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the payroll defaults that were previously hard-coded:
// the policy applied to workers with no configured salary settings and the
// deduction rates used when the tax-rate table has no row for an employment
// type. Externalized so deployments can override them without a code change.
type PayrollConfig struct {
	DefaultHourlyRate int64
	FallbackRates     FallbackRates
}

// FallbackRates are percentages applied to gross pay.
type FallbackRates struct {
	IncomeTax           decimal.Decimal
	NationalPension     decimal.Decimal
	HealthInsurance     decimal.Decimal
	EmploymentInsurance decimal.Decimal
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "inopnc_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Payroll defaults
	defaultHourlyRate, err := strconv.ParseInt(getEnv("PAYROLL_DEFAULT_HOURLY_RATE", "15000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_HOURLY_RATE: %w", err)
	}

	fallbackRates, err := loadFallbackRates()
	if err != nil {
		return nil, err
	}

	config.Payroll = PayrollConfig{
		DefaultHourlyRate: defaultHourlyRate,
		FallbackRates:     fallbackRates,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadFallbackRates() (FallbackRates, error) {
	rates := FallbackRates{}

	for _, entry := range []struct {
		key      string
		fallback string
		dest     *decimal.Decimal
	}{
		{"PAYROLL_FALLBACK_INCOME_TAX_RATE", "8", &rates.IncomeTax},
		{"PAYROLL_FALLBACK_NATIONAL_PENSION_RATE", "4.5", &rates.NationalPension},
		{"PAYROLL_FALLBACK_HEALTH_INSURANCE_RATE", "3.43", &rates.HealthInsurance},
		{"PAYROLL_FALLBACK_EMPLOYMENT_INSURANCE_RATE", "0.9", &rates.EmploymentInsurance},
	} {
		value, err := decimal.NewFromString(getEnv(entry.key, entry.fallback))
		if err != nil {
			return FallbackRates{}, fmt.Errorf("invalid %s: %w", entry.key, err)
		}
		*entry.dest = value
	}

	return rates, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Payroll.DefaultHourlyRate <= 0 {
		return fmt.Errorf("PAYROLL_DEFAULT_HOURLY_RATE must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
