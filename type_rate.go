package equity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is a fraction, 0.05 for 5%.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// Percent returns a rate from a percentage, Percent(5) is 5%.
func Percent[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value).Shift(-2)}
}

// ParseRate parses either a fraction ("0.05") or a percentage ("5%").
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	if percent {
		d = d.Shift(-2)
	}
	return Rate{value: d}, nil
}

// ParseRates parses a comma separated list of rates.
func ParseRates(s string) ([]Rate, error) {
	var rates []Rate
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		r, err := ParseRate(f)
		if err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	return rates, nil
}

func (r Rate) Equal(p Rate) bool        { return r.value.Equal(p.value) }
func (r Rate) IsZero() bool             { return r.value.IsZero() }
func (r Rate) IsNegative() bool         { return r.value.IsNegative() }
func (r Rate) Decimal() decimal.Decimal { return r.value }

// inUnitInterval reports whether 0 <= r <= 1.
func (r Rate) inUnitInterval() bool {
	return !r.value.IsNegative() && r.value.LessThanOrEqual(decimal.NewFromInt(1))
}

// String returns the rate as a percentage, "5%" or "12.5%".
func (r Rate) String() string {
	return r.value.Shift(2).String() + "%"
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}
