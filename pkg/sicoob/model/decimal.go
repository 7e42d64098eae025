package model

import "github.com/shopspring/decimal"

// Decimal is a monetary amount serialized as a bare JSON number, as the boleto API expects.
type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{value: decimal.NewFromFloat(f)}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

func (d Decimal) IsPositive() bool {
	return d.value.IsPositive()
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) Equal(o Decimal) bool {
	return d.value.Equal(o.value)
}

// IsPositiveAmount reports whether s parses as a decimal greater than zero.
func IsPositiveAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}
