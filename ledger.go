package equity

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// YearRecord is the state of one track at the end of a year.
type YearRecord struct {
	SharePrice                Money
	VestedShares              Quantity // cumulative vested shares.
	VestedUnsoldShares        Quantity // vested shares not redeemed yet, never negative.
	SharesRedeemed            Quantity // redeemed during the year.
	CumulativeRedeemed        Quantity
	UnsoldShares              Quantity // total shares minus cumulative redeemed, may be negative.
	RedemptionValue           Money    // proceeds of the year's redemption.
	CumulativeRedemptionValue Money
	UnsoldValue               Money
	TotalValue                Money // cumulative redemption value plus unsold value.
}

// Value returns the record's field f.
func (r YearRecord) Value(f Field) decimal.Decimal {
	switch f {
	case SharePrice:
		return r.SharePrice.value
	case VestedShares:
		return r.VestedShares.value
	case VestedUnsoldShares:
		return r.VestedUnsoldShares.value
	case SharesRedeemed:
		return r.SharesRedeemed.value
	case CumulativeRedeemed:
		return r.CumulativeRedeemed.value
	case UnsoldShares:
		return r.UnsoldShares.value
	case RedemptionValue:
		return r.RedemptionValue.value
	case CumulativeRedemptionValue:
		return r.CumulativeRedemptionValue.value
	case UnsoldValue:
		return r.UnsoldValue.value
	case TotalValue:
		return r.TotalValue.value
	}
	return decimal.Zero
}

// Year is one ledger row: both tracks and their combined value.
type Year struct {
	Year               int
	Options            YearRecord
	Common             YearRecord
	CombinedTotalValue Money
}

// Record returns the record for track t. The Combined track only carries the
// share price and the total value.
func (y Year) Record(t Track) YearRecord {
	switch t {
	case Options:
		return y.Options
	case Common:
		return y.Common
	default:
		return YearRecord{SharePrice: y.Options.SharePrice, TotalValue: y.CombinedTotalValue}
	}
}

// Value returns the value at column c.
func (y Year) Value(c Column) decimal.Decimal { return y.Record(c.Track).Value(c.Field) }

// Ledger is the result of a projection, one row per projection year. A Ledger
// is never modified once returned by Project.
type Ledger struct {
	params Params
	years  []Year
}

// Params returns the parameters the ledger was projected from.
func (l *Ledger) Params() Params { return l.params }

// Len returns the number of years in the ledger, epoch included.
func (l *Ledger) Len() int { return len(l.years) }

// Rows returns a copy of all rows, epoch first.
func (l *Ledger) Rows() []Year { return slices.Clone(l.years) }

// All iterates over the rows from the first year after the epoch, the years
// reports display.
func (l *Ledger) All() iter.Seq2[int, Year] {
	return func(yield func(int, Year) bool) {
		for i := 1; i < len(l.years); i++ {
			if !yield(l.years[i].Year, l.years[i]) {
				return
			}
		}
	}
}

// At returns the row for year.
func (l *Ledger) At(year int) (Year, bool) {
	if len(l.years) == 0 {
		return Year{}, false
	}
	i := year - l.years[0].Year
	if i < 0 || i >= len(l.years) {
		return Year{}, false
	}
	return l.years[i], true
}

// Final returns the last row.
func (l *Ledger) Final() Year {
	if len(l.years) == 0 {
		return Year{}
	}
	return l.years[len(l.years)-1]
}

// Series returns the values of column c for every year after the epoch.
func (l *Ledger) Series(c Column) []decimal.Decimal {
	var values []decimal.Decimal
	for _, y := range l.All() {
		values = append(values, y.Value(c))
	}
	return values
}

// OverRedemptions lists the years where a track redeemed more than its total
// shares.
func (l *Ledger) OverRedemptions() []OverRedemptionCondition {
	var conditions []OverRedemptionCondition
	for _, y := range l.years {
		for _, t := range []Track{Options, Common} {
			if r := y.Record(t); r.UnsoldShares.IsNegative() {
				conditions = append(conditions, OverRedemptionCondition{Track: t, Year: y.Year, UnsoldShares: r.UnsoldShares})
			}
		}
	}
	return conditions
}
