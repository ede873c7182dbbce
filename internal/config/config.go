package config

import (
	"os"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port              string
	JWTSecret         string
	ServiceChargeRate decimal.Decimal
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8081"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		ServiceChargeRate: getRate("SERVICE_CHARGE_RATE", "0.15"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getRate parses a decimal rate from the environment, falling back to the
// default on any parse failure rather than refusing to start.
func getRate(key, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
