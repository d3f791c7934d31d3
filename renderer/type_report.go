package renderer

import (
	"fmt"

	"github.com/etnz/equity"
)

// Report is the view of a projection, with every amount already formatted in
// the report currency.
type Report struct {
	// Name of the scenario.
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency"`
	// Epoch is the year the base share price applies to.
	Epoch int `json:"epoch"`
	// From and To bound the reported years, the epoch excluded.
	From int `json:"from"`
	To   int `json:"to"`

	Assumptions []Assumption   `json:"assumptions"`
	Tracks      []TrackSummary `json:"tracks"`
	// CombinedTotalValue is the final combined value of both tracks.
	CombinedTotalValue string `json:"combinedTotalValue"`

	Warnings []string `json:"warnings,omitempty"`

	// Charts and Detail are markdown sections, built with ChartsMarkdown and LedgerMarkdown.
	Charts string `json:"charts,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Assumption is one input of the projection.
type Assumption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TrackSummary is the final year of one track.
type TrackSummary struct {
	Name        string `json:"name"`
	SharePrice  string `json:"sharePrice"`
	Redeemed    string `json:"redeemed"`
	Unsold      string `json:"unsold"`
	Proceeds    string `json:"proceeds"`
	UnsoldValue string `json:"unsoldValue"`
	TotalValue  string `json:"totalValue"`
}

// NewReport creates the report of ledger l. Warnings of the parameters and
// over-redemptions of the ledger are listed in the report.
func NewReport(name, currency string, l *equity.Ledger) *Report {
	p := l.Params()
	final := l.Final()
	r := &Report{
		Name:               name,
		Currency:           currency,
		Epoch:              p.Epoch(),
		To:                 p.Final(),
		CombinedTotalValue: final.CombinedTotalValue.Format(currency),
	}
	r.From = r.Epoch
	if len(p.Years) > 1 {
		r.From = p.Years[1]
	}

	r.Assumptions = []Assumption{
		{"Base share price", p.BaseSharePrice.Format(currency)},
		{"Annual growth", p.GrowthRate.String()},
		{"Option strike price", p.OptionStrikePrice.Format(currency)},
		{"Total grant", fmt.Sprintf("%d shares", p.TotalGrantShares)},
		{"Option redemption rate", p.OptionRedemptionRate.String()},
		{"Option valuation basis", p.OptionBasis.String()},
		{"Vesting schedule", p.Vesting.String()},
	}
	tracks := []equity.Track{equity.Options}
	if p.CommonSharesTotal > 0 {
		r.Assumptions = append(r.Assumptions,
			Assumption{"Common shares", fmt.Sprintf("%d shares", p.CommonSharesTotal)},
			Assumption{"Common purchase price", p.CommonPurchasePrice.Format(currency)},
			Assumption{"Common redemption rate", p.CommonRedemptionRate.String()},
		)
		tracks = append(tracks, equity.Common)
	}

	for _, t := range tracks {
		rec := final.Record(t)
		r.Tracks = append(r.Tracks, TrackSummary{
			Name:        trackTitle(t),
			SharePrice:  rec.SharePrice.Format(currency),
			Redeemed:    shares(rec.CumulativeRedeemed),
			Unsold:      shares(rec.UnsoldShares),
			Proceeds:    rec.CumulativeRedemptionValue.Format(currency),
			UnsoldValue: rec.UnsoldValue.Format(currency),
			TotalValue:  rec.TotalValue.Format(currency),
		})
	}

	for _, w := range p.Warnings() {
		r.Warnings = append(r.Warnings, w.Error())
	}
	for _, c := range l.OverRedemptions() {
		r.Warnings = append(r.Warnings, c.Error())
	}
	return r
}
