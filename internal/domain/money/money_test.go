package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBrazilianLocale(t *testing.T) {
	f := NewFormatter("pt-BR", "R$")

	for _, tc := range []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "1900", "R$ 1.900,00"},
		{"rounds to two places", "4842.105263157894", "R$ 4.842,11"},
		{"negative tolerated", "-50", "R$ -50,00"},
		{"cents", "0.5", "R$ 0,50"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Format(decimal.RequireFromString(tc.value))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatEnglishLocale(t *testing.T) {
	f := NewFormatter("en", "$")
	got := f.Format(decimal.RequireFromString("1234.5"))
	assert.Equal(t, "$ 1,234.50", got)
}

func TestFormatUnknownLocaleFallsBack(t *testing.T) {
	f := NewFormatter("no-such-locale!", "R$")
	got := f.Format(decimal.RequireFromString("1000"))
	assert.Equal(t, "R$ 1.000,00", got)
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "R$", NewFormatter("pt-BR", "R$").Symbol())
}
