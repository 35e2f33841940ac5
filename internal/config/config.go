package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Wage     WageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// WageConfig holds the calendar divisors and shift multipliers used by the
// wage rate deriver and the earnings calculator. The divisors are validated
// at startup; call sites never re-check them.
type WageConfig struct {
	DaysPerMonth                int
	HoursPerDay                 int
	OvertimeMultiplier          decimal.Decimal
	LatePenaltyMultiplier       decimal.Decimal
	EarlyLeavePenaltyMultiplier decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "restaurant_tracking"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	daysPerMonth, err := strconv.Atoi(getEnv("WAGE_DAYS_PER_MONTH", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAGE_DAYS_PER_MONTH: %w", err)
	}
	hoursPerDay, err := strconv.Atoi(getEnv("WAGE_HOURS_PER_DAY", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAGE_HOURS_PER_DAY: %w", err)
	}
	overtimeMult, err := decimal.NewFromString(getEnv("OVERTIME_MULTIPLIER", "1.5"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_MULTIPLIER: %w", err)
	}
	lateMult, err := decimal.NewFromString(getEnv("LATE_PENALTY_MULTIPLIER", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_PENALTY_MULTIPLIER: %w", err)
	}
	earlyMult, err := decimal.NewFromString(getEnv("EARLY_LEAVE_PENALTY_MULTIPLIER", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_LEAVE_PENALTY_MULTIPLIER: %w", err)
	}

	config.Wage = WageConfig{
		DaysPerMonth:                daysPerMonth,
		HoursPerDay:                 hoursPerDay,
		OvertimeMultiplier:          overtimeMult,
		LatePenaltyMultiplier:       lateMult,
		EarlyLeavePenaltyMultiplier: earlyMult,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Wage.DaysPerMonth <= 0 {
		return fmt.Errorf("WAGE_DAYS_PER_MONTH must be positive")
	}
	if c.Wage.HoursPerDay <= 0 {
		return fmt.Errorf("WAGE_HOURS_PER_DAY must be positive")
	}
	if !c.Wage.OvertimeMultiplier.IsPositive() {
		return fmt.Errorf("OVERTIME_MULTIPLIER must be positive")
	}
	if c.Wage.LatePenaltyMultiplier.IsNegative() {
		return fmt.Errorf("LATE_PENALTY_MULTIPLIER must not be negative")
	}
	if c.Wage.EarlyLeavePenaltyMultiplier.IsNegative() {
		return fmt.Errorf("EARLY_LEAVE_PENALTY_MULTIPLIER must not be negative")
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
