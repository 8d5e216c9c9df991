package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("should use defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("ENV", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("RULES_FILE", "")
		t.Setenv("TEST", "")

		assert.Equal(t, Config{
			Port:     "8080",
			LogLevel: "info",
		}, FromEnv())
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ENV", "production")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("RULES_FILE", "/etc/pricer/rules.yaml")
		t.Setenv("TEST", "true")

		c := FromEnv()
		assert.Equal(t, Config{
			Port:      "9090",
			Env:       "production",
			LogLevel:  "debug",
			RulesFile: "/etc/pricer/rules.yaml",
			Test:      true,
		}, c)
		assert.True(t, c.IsProduction())
	})
}
