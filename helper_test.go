package equity

import (
	"testing"

	"github.com/shopspring/decimal"
)

// scenarioA returns the reference parameters: a 10,000 share grant struck at
// 6.00, vesting 6000..10000 from 2025, 15% growth and 5% redemption, plus
// 10,000 common shares bought at 2.00, over 2024..2035.
func scenarioA() Params {
	years := YearRange(2024, 2035)
	vesting := map[int]int64{2025: 6000, 2026: 7000, 2027: 8000, 2028: 9000, 2029: 10000}
	return Params{
		BaseSharePrice:       M(6),
		GrowthRate:           Percent(15),
		OptionStrikePrice:    M(6),
		TotalGrantShares:     10000,
		OptionRedemptionRate: Percent(5),
		Vesting:              NewVestingSchedule(vesting).Fill(years, CarryForward{}),
		CommonSharesTotal:    10000,
		CommonPurchasePrice:  M(2),
		CommonRedemptionRate: Percent(5),
		Years:                years,
	}
}

// dec parses a decimal constant.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// checkDecimal fails when got != want exactly.
func checkDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(t, want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

// mustYear returns the ledger row for year or fails.
func mustYear(t *testing.T, l *Ledger, year int) Year {
	t.Helper()
	y, ok := l.At(year)
	if !ok {
		t.Fatalf("ledger has no year %d", year)
	}
	return y
}
