package equity

import "slices"

// Project computes the year-by-year ledger of both tracks for p.
//
// p must be valid (see Params.Validate): Project has no error path. Each year
// only depends on the previous year and on p, never on the other track. The
// returned Ledger belongs to the caller.
func Project(p Params) *Ledger {
	years := slices.Clone(p.Years)
	l := &Ledger{params: p, years: make([]Year, len(years))}
	if len(years) == 0 {
		return l
	}
	l.params.Years = years

	options := trackSpec{
		track:     Options,
		total:     Q(p.TotalGrantShares),
		reference: p.OptionStrikePrice,
		rate:      p.OptionRedemptionRate,
		basis:     p.OptionBasis,
		vesting:   p.Vesting,
	}
	common := trackSpec{
		track:     Common,
		total:     Q(p.CommonSharesTotal),
		reference: p.CommonPurchasePrice,
		rate:      p.CommonRedemptionRate,
	}

	price := p.BaseSharePrice
	for i, y := range years {
		row := Year{Year: y}
		switch i {
		case 0:
			row.Options = options.epoch(price)
			row.Common = common.epoch(price)
		case 1:
			price = price.Grow(p.GrowthRate)
			row.Options = options.first(y, price)
			row.Common = common.first(y, price)
		default:
			price = price.Grow(p.GrowthRate)
			prev := l.years[i-1]
			row.Options = options.next(y, price, prev.Options)
			row.Common = common.next(y, price, prev.Common)
		}
		l.years[i] = row
	}
	// combined totals once both tracks are complete.
	for i := range l.years {
		l.years[i].CombinedTotalValue = l.years[i].Options.TotalValue.Add(l.years[i].Common.TotalValue)
	}
	return l
}

// trackSpec holds what differs between the option and the common share track.
type trackSpec struct {
	track     Track
	total     Quantity
	reference Money // strike price or purchase price.
	rate      Rate
	basis     Basis           // options only.
	vesting   VestingSchedule // options only.
}

// vestedAt returns the cumulative vested shares at year. Common shares are held
// outright.
func (s trackSpec) vestedAt(year int) Quantity {
	if s.track == Common {
		return s.total
	}
	return Q(s.vesting.Vested(year))
}

// epoch is the initial record: nothing vested, redeemed or valued yet.
func (s trackSpec) epoch(price Money) YearRecord {
	r := YearRecord{SharePrice: price, UnsoldShares: s.total}
	if s.track == Common {
		r.VestedShares = s.total
		r.VestedUnsoldShares = s.total
	}
	return r
}

// first is the first year after the epoch: the price has grown, and nothing is
// redeemed yet.
func (s trackSpec) first(year int, price Money) YearRecord {
	r := YearRecord{
		SharePrice:   price,
		VestedShares: s.vestedAt(year),
		UnsoldShares: s.total,
	}
	if s.track == Common {
		r.VestedUnsoldShares = r.UnsoldShares
	} else {
		r.VestedUnsoldShares = r.VestedShares.floor()
	}

	valued := r.UnsoldShares
	if s.track == Options && s.basis == BasisVested {
		valued = r.VestedShares
	}
	r.UnsoldValue = price.Gap(s.reference).Mul(valued)
	r.TotalValue = r.UnsoldValue
	return r
}

// next computes year from the previous year's record.
func (s trackSpec) next(year int, price Money, prev YearRecord) YearRecord {
	r := YearRecord{SharePrice: price, VestedShares: s.vestedAt(year)}

	redeemable := prev.UnsoldShares
	if s.track == Options {
		redeemable = prev.VestedUnsoldShares
	}
	r.SharesRedeemed = redeemable.Mul(s.rate)
	r.CumulativeRedeemed = prev.CumulativeRedeemed.Add(r.SharesRedeemed)
	r.UnsoldShares = s.total.Sub(r.CumulativeRedeemed)
	if s.track == Common {
		r.VestedUnsoldShares = r.UnsoldShares
	} else {
		r.VestedUnsoldShares = r.VestedShares.Sub(r.CumulativeRedeemed).floor()
	}

	gap := price.Gap(s.reference)
	r.RedemptionValue = gap.Mul(r.SharesRedeemed)
	r.CumulativeRedemptionValue = prev.CumulativeRedemptionValue.Add(r.RedemptionValue)

	valued := r.UnsoldShares
	if s.track == Options && s.basis == BasisVested {
		valued = r.VestedUnsoldShares
	}
	r.UnsoldValue = gap.Mul(valued)
	r.TotalValue = r.CumulativeRedemptionValue.Add(r.UnsoldValue)
	return r
}
