package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		SessionSecret: "test-secret",
		LLM:           LLMConfig{Provider: "openai", Model: "gpt-4o-mini"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingSessionSecret(t *testing.T) {
	cfg := validConfig()
	cfg.SessionSecret = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate_BadProvider(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Provider = "bard"

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
}

func TestDatabaseConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "reeltaste",
		Password: "pw",
		Database: "reeltaste",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=reeltaste password=pw dbname=reeltaste sslmode=disable",
		cfg.ConnectionString())
}
