package pricing_test

import (
	"testing"

	"bitbucket.org/crgw/availability-pricer/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSellingPrice(t *testing.T) {
	tests := []struct {
		name     string
		net      string
		markup   string
		expected string
	}{
		{
			name:     "default net price and markup",
			net:      "132.42",
			markup:   "3.2",
			expected: "136.66",
		},
		{
			name:     "no markup",
			net:      "100",
			markup:   "0",
			expected: "100",
		},
		{
			name:     "rounds half away from zero",
			net:      "10.05",
			markup:   "10",
			expected: "11.06",
		},
		{
			name:     "zero net price",
			net:      "0",
			markup:   "3.2",
			expected: "0",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			price := pricing.SellingPrice(decimal.RequireFromString(test.net), decimal.RequireFromString(test.markup))
			assert.True(t, decimal.RequireFromString(test.expected).Equal(price), "got %s", price)
		})
	}
}

func TestExchangeRate(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("1.0"),
		"USD": decimal.RequireFromString("1.1"),
		"GBP": decimal.RequireFromString("0.9"),
	}
	table := pricing.NewTable(rates)

	t.Run("should return the configured rate", func(t *testing.T) {
		assert.Equal(t, "0.9", table.ExchangeRate("GBP").String())
		assert.Equal(t, "1.1", table.ExchangeRate("USD").String())
	})

	t.Run("should fall back to 1 for unknown currencies", func(t *testing.T) {
		assert.True(t, table.ExchangeRate("XYZ").Equal(decimal.NewFromInt(1)))
	})

	t.Run("should not be affected by later changes to the source map", func(t *testing.T) {
		rates["GBP"] = decimal.NewFromInt(5)
		assert.Equal(t, "0.9", table.ExchangeRate("GBP").String())
	})
}
