package schema

import (
	"github.com/shopspring/decimal"
)

// Amount is a money value, always rendered with two decimals.
type Amount decimal.Decimal

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*a = Amount(d)
	return nil
}

// Ratio is a rate or percentage, rendered with at least one decimal (1 -> 1.0).
type Ratio decimal.Decimal

func (r Ratio) Decimal() decimal.Decimal {
	return decimal.Decimal(r)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	d := decimal.Decimal(r)
	if d.Equal(d.Truncate(0)) {
		return []byte(d.StringFixed(1)), nil
	}

	return []byte(d.String()), nil
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*r = Ratio(d)
	return nil
}
