package equity

import (
	"fmt"
	"strings"
)

// Track is one of the instrument ledgers computed in parallel.
type Track int

const (
	Options  Track = iota // options and A-shares, valued against the strike price.
	Common                // common shares, valued against the purchase price.
	Combined              // sum of both tracks, only carries a total value.
)

var trackNames = []string{"options", "common", "combined"}

func (t Track) String() string {
	if t < 0 || int(t) >= len(trackNames) {
		return fmt.Sprintf("track(%d)", int(t))
	}
	return trackNames[t]
}

// ParseTrack parses a track name.
func ParseTrack(s string) (Track, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range trackNames {
		if s == name {
			return Track(i), nil
		}
	}
	return 0, fmt.Errorf("unknown track %q, must be one of %s", s, strings.Join(trackNames, ", "))
}

// Field names a YearRecord column.
type Field int

const (
	SharePrice Field = iota
	VestedShares
	VestedUnsoldShares
	SharesRedeemed
	CumulativeRedeemed
	UnsoldShares
	RedemptionValue
	CumulativeRedemptionValue
	UnsoldValue
	TotalValue
)

// Fields lists all YearRecord columns in ledger order.
var Fields = []Field{
	SharePrice, VestedShares, VestedUnsoldShares, SharesRedeemed, CumulativeRedeemed,
	UnsoldShares, RedemptionValue, CumulativeRedemptionValue, UnsoldValue, TotalValue,
}

var fieldNames = []string{
	"share_price", "vested_shares", "vested_unsold_shares", "shares_redeemed", "cumulative_redeemed",
	"unsold_shares", "redemption_value", "cumulative_redemption_value", "unsold_value", "total_value",
}

// json property names, camel cased like the rest of the JSON output.
var fieldJSONNames = []string{
	"sharePrice", "vestedShares", "vestedUnsoldShares", "sharesRedeemed", "cumulativeRedeemed",
	"unsoldShares", "redemptionValue", "cumulativeRedemptionValue", "unsoldValue", "totalValue",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

func (f Field) jsonName() string { return fieldJSONNames[f] }

// ParseField parses a field name such as "total_value".
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range fieldNames {
		if s == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Column addresses one value of a ledger row.
type Column struct {
	Track Track
	Field Field
}

// String returns the column name used in CSV headers, e.g. "options_total_value".
func (c Column) String() string { return c.Track.String() + "_" + c.Field.String() }

// ParseColumn parses a column name like "common_unsold_value" or "combined_total_value".
func ParseColumn(s string) (Column, error) {
	track, field, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "_")
	if !ok {
		return Column{}, fmt.Errorf("invalid column %q, expecting <track>_<field>", s)
	}
	t, err := ParseTrack(track)
	if err != nil {
		return Column{}, err
	}
	f, err := ParseField(field)
	if err != nil {
		return Column{}, err
	}
	c := Column{Track: t, Field: f}
	if t == Combined && f != TotalValue && f != SharePrice {
		return Column{}, fmt.Errorf("column %q: the combined track only has total_value", s)
	}
	return c, nil
}

// IsAmount reports whether the field holds money rather than a share count.
func (f Field) IsAmount() bool {
	switch f {
	case SharePrice, RedemptionValue, CumulativeRedemptionValue, UnsoldValue, TotalValue:
		return true
	}
	return false
}
