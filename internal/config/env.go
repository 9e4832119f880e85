package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// ServerConfig holds the settings of the HTTP API, read from the environment
type ServerConfig struct {
	Port                 string
	IncomeCeiling        decimal.Decimal
	MaxVisibleMonths     int
	InitialVisibleMonths int
	AllowedOrigins       []string
	LogLevel             string
}

// LoadServerConfig reads the server settings. Values from an optional .env
// file (envFile, empty to skip) never override variables already set.
func LoadServerConfig(envFile string) (*ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	ceiling, err := ceilingFromEnv(getEnv("ELTERNGELD_INCOME_CEILING", "legacy"))
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		Port:                 getEnv("PORT", "8080"),
		IncomeCeiling:        ceiling,
		MaxVisibleMonths:     getEnvInt("ELTERNGELD_MAX_VISIBLE_MONTHS", domain.DefaultMaxVisibleMonths),
		InitialVisibleMonths: getEnvInt("ELTERNGELD_INITIAL_VISIBLE_MONTHS", domain.DefaultInitialVisibleMonths),
		AllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
	return cfg, cfg.Validate()
}

// Validate validates the configuration and returns an error if invalid
func (c *ServerConfig) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if !c.IncomeCeiling.IsPositive() {
		problems = append(problems, "income ceiling must be positive")
	}
	if c.MaxVisibleMonths < 1 || c.MaxVisibleMonths > domain.DefaultMaxVisibleMonths {
		problems = append(problems, fmt.Sprintf("max visible months %d: must be between 1 and %d", c.MaxVisibleMonths, domain.DefaultMaxVisibleMonths))
	}
	if c.InitialVisibleMonths < 1 || c.InitialVisibleMonths > c.MaxVisibleMonths {
		problems = append(problems, fmt.Sprintf("initial visible months %d: must be between 1 and %d", c.InitialVisibleMonths, c.MaxVisibleMonths))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// ceilingFromEnv accepts a preset name or an explicit amount
func ceilingFromEnv(v string) (decimal.Decimal, error) {
	if d, err := decimal.NewFromString(v); err == nil {
		return d, nil
	}
	ceiling, err := domain.CeilingForPreset(strings.ToLower(v))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: ELTERNGELD_INCOME_CEILING: %v", ErrInvalidConfiguration, err)
	}
	return ceiling, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
