package equity

import (
	"errors"
	"fmt"
	"strings"
)

// Basis selects which option quantity carries the unsold valuation.
type Basis int

const (
	// BasisVested values vested shares only: VestedShares the first year after
	// the epoch, VestedUnsoldShares afterwards.
	BasisVested Basis = iota
	// BasisGranted values the whole unredeemed grant, vested or not. It gives
	// the valuation of projections that ignore vesting, such as 9000 for the
	// first year of a 10,000 option grant struck at 6.00 with the price at 6.90.
	BasisGranted
)

func (b Basis) String() string {
	switch b {
	case BasisVested:
		return "vested"
	case BasisGranted:
		return "granted"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

// ParseBasis parses "vested" or "granted". The empty string is BasisVested.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vested":
		return BasisVested, nil
	case "granted":
		return BasisGranted, nil
	default:
		return 0, fmt.Errorf("unknown basis %q, must be vested or granted", s)
	}
}

// Params holds every input of a projection. Params are values: a sweep variant
// is a modified copy.
type Params struct {
	BaseSharePrice       Money // share price at the epoch year.
	GrowthRate           Rate  // annual compounding growth of the share price.
	OptionStrikePrice    Money
	TotalGrantShares     int64
	OptionRedemptionRate Rate // fraction of last year's vested unsold options redeemed each year.
	Vesting              VestingSchedule
	OptionBasis          Basis

	CommonSharesTotal    int64
	CommonPurchasePrice  Money
	CommonRedemptionRate Rate // fraction of last year's unsold common shares redeemed each year.

	// Years are consecutive, the first one is the epoch.
	Years []int
}

// YearRange returns the consecutive years from..to, both included.
func YearRange(from, to int) []int {
	if to < from {
		return nil
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// Epoch returns the first projection year.
func (p Params) Epoch() int {
	if len(p.Years) == 0 {
		return 0
	}
	return p.Years[0]
}

// Final returns the last projection year.
func (p Params) Final() int {
	if len(p.Years) == 0 {
		return 0
	}
	return p.Years[len(p.Years)-1]
}

// Validate checks p and returns all the InvalidParameterError found, joined.
func (p Params) Validate() error {
	var errs []error
	positive := func(field string, m Money) {
		if !m.IsPositive() {
			errs = append(errs, invalid(field, m, "must be greater than 0"))
		}
	}
	unit := func(field string, r Rate) {
		if !r.inUnitInterval() {
			errs = append(errs, invalid(field, r.value, "must be between 0 and 1"))
		}
	}
	count := func(field string, n int64) {
		if n < 0 {
			errs = append(errs, invalid(field, n, "must not be negative"))
		}
	}

	positive("base_share_price", p.BaseSharePrice)
	if p.GrowthRate.IsNegative() {
		errs = append(errs, invalid("growth_rate", p.GrowthRate.value, "must not be negative"))
	}
	positive("option_strike_price", p.OptionStrikePrice)
	count("total_grant_shares", p.TotalGrantShares)
	unit("option_redemption_rate", p.OptionRedemptionRate)
	if p.OptionBasis != BasisVested && p.OptionBasis != BasisGranted {
		errs = append(errs, invalid("option_basis", p.OptionBasis, "must be vested or granted"))
	}
	count("common_shares_total", p.CommonSharesTotal)
	positive("common_purchase_price", p.CommonPurchasePrice)
	unit("common_redemption_rate", p.CommonRedemptionRate)

	if len(p.Years) == 0 {
		errs = append(errs, &InvalidParameterError{Field: "projection_years", Reason: "must not be empty"})
	}
	for i := 1; i < len(p.Years); i++ {
		if p.Years[i] != p.Years[i-1]+1 {
			errs = append(errs, invalid("projection_years", p.Years[i], fmt.Sprintf("must follow %d", p.Years[i-1])))
			break
		}
	}

	for y, n := range p.Vesting.All() {
		if n < 0 {
			errs = append(errs, invalid("vesting_schedule", fmt.Sprintf("%d:%d", y, n), "vested shares must not be negative"))
		}
	}
	var missing []string
	for i, y := range p.Years {
		if i > 0 && !p.Vesting.Has(y) {
			missing = append(missing, fmt.Sprint(y))
		}
	}
	if len(missing) > 0 {
		errs = append(errs, &InvalidParameterError{Field: "vesting_schedule", Reason: "missing years " + strings.Join(missing, ", ")})
	}
	return errors.Join(errs...)
}

// Warnings returns the data-quality warnings for valid parameters.
func (p Params) Warnings() []Warning {
	var warnings []Warning
	for i, y := range p.Years {
		if i == 0 {
			continue
		}
		vested := p.Vesting.Vested(y)
		if i > 1 {
			if previous := p.Vesting.Vested(y - 1); vested < previous {
				warnings = append(warnings, InconsistentVestingWarning{Year: y, Previous: previous, Vested: vested})
			}
		}
		if vested > p.TotalGrantShares {
			warnings = append(warnings, ExcessVestingWarning{Year: y, Vested: vested, Grant: p.TotalGrantShares})
		}
	}
	return warnings
}

// Key identifies p: two Params with the same key produce the same Ledger.
func (p Params) Key() string {
	return fmt.Sprintf("base=%s growth=%s strike=%s grant=%d orate=%s basis=%s vesting=[%s] common=%d cprice=%s crate=%s years=%d..%d",
		p.BaseSharePrice, p.GrowthRate.value, p.OptionStrikePrice, p.TotalGrantShares, p.OptionRedemptionRate.value, p.OptionBasis,
		p.Vesting, p.CommonSharesTotal, p.CommonPurchasePrice, p.CommonRedemptionRate.value, p.Epoch(), p.Final())
}

func (p Params) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("baseSharePrice", p.BaseSharePrice)
	w.Append("growthRate", p.GrowthRate)
	w.Append("optionStrikePrice", p.OptionStrikePrice)
	w.Append("totalGrantShares", p.TotalGrantShares)
	w.Append("optionRedemptionRate", p.OptionRedemptionRate)
	w.Append("optionBasis", p.OptionBasis.String())
	w.Append("vestingSchedule", p.Vesting)
	w.Append("commonSharesTotal", p.CommonSharesTotal)
	w.Append("commonPurchasePrice", p.CommonPurchasePrice)
	w.Append("commonRedemptionRate", p.CommonRedemptionRate)
	w.Append("years", p.Years)
	return w.MarshalJSON()
}
