package renderer

import (
	"github.com/etnz/equity"
	"github.com/shopspring/decimal"
)

// shares formats a share count, rounded to 2 decimals as shares may be fractional.
func shares(q equity.Quantity) string {
	return q.Decimal().Round(2).String()
}

// trackTitle returns the section title of a track.
func trackTitle(t equity.Track) string {
	switch t {
	case equity.Options:
		return "Options"
	case equity.Common:
		return "Common shares"
	default:
		return "Combined"
	}
}

// formatValue formats a ledger value of field f.
func formatValue(f equity.Field, d decimal.Decimal, currency string) string {
	if f.IsAmount() {
		return equity.M(d).Format(currency)
	}
	return shares(equity.Q(d))
}
