package equity

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in the projection's currency. The engine is currency
// agnostic: the currency is only attached when formatting.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }
func (m Money) Decimal() decimal.Decimal        { return m.value }

// String returns the exact value, with all its digits.
func (m Money) String() string { return m.value.String() }

// Grow returns the amount compounded once at rate r.
func (m Money) Grow(r Rate) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(1).Add(r.value))}
}

// Gap returns how much m is above the reference price, or zero.
func (m Money) Gap(reference Money) Money {
	d := m.value.Sub(reference.value)
	if d.IsNegative() {
		return Money{}
	}
	return Money{value: d}
}

// Thousands returns the amount expressed in thousands, rounded half away from zero.
func (m Money) Thousands() int64 {
	return m.value.Shift(-3).Round(0).IntPart()
}

// Format returns the amount formatted in the currency's conventions, e.g. "£1,234.56".
// Unknown currencies fall back to the plain amount followed by the code.
func (m Money) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.value.StringFixed(2) + " " + currency
	}
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// FormatWhole is like Format but drops the minor units, e.g. "£1,235".
func (m Money) FormatWhole(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.value.StringFixed(0) + " " + currency
	}
	// go-money formats minor units, so a zero-fraction copy of the currency is used.
	whole := *cur
	whole.Fraction = 0
	return whole.Formatter().Format(m.value.Round(0).IntPart())
}

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
