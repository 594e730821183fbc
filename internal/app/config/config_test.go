package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/quotes")
	t.Setenv("INTERNAL_TOKEN", "secret")

	cfg := MustLoad()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "R$", cfg.CurrencySymbol)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAIBaseURL)
	assert.Equal(t, "postgres://localhost/quotes", cfg.DatabaseURL)
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/quotes")
	t.Setenv("INTERNAL_TOKEN", "secret")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOCALE", "en")
	t.Setenv("CURRENCY_SYMBOL", "$")

	cfg := MustLoad()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "$", cfg.CurrencySymbol)
}
