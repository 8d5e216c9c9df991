package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	RulesFile string
	Test      bool
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load(".env")

	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		Env:       os.Getenv("ENV"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RulesFile: os.Getenv("RULES_FILE"),
		Test:      os.Getenv("TEST") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
