package pricing

import (
	"github.com/shopspring/decimal"
)

const pricePrecision = 2

var (
	hundred = decimal.NewFromInt(100)

	// Used for currencies missing from the table.
	DefaultExchangeRate = decimal.NewFromInt(1)
)

// SellingPrice applies a percentage markup to the net price and rounds to cents.
func SellingPrice(net decimal.Decimal, markupPercentage decimal.Decimal) decimal.Decimal {
	multiplier := decimal.NewFromInt(1).Add(markupPercentage.Div(hundred))
	return net.Mul(multiplier).Round(pricePrecision)
}

// Table is a read-only exchange rate table keyed by ISO currency code.
type Table struct {
	rates map[string]decimal.Decimal
}

func NewTable(rates map[string]decimal.Decimal) Table {
	copied := make(map[string]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		copied[currency] = rate
	}

	return Table{rates: copied}
}

func (t Table) ExchangeRate(currency string) decimal.Decimal {
	rate, ok := t.rates[currency]
	if !ok {
		return DefaultExchangeRate
	}

	return rate
}
