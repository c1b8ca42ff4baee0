package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
}
