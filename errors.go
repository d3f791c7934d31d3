package equity

import "fmt"

// InvalidParameterError reports a parameter rejected before any projection is
// computed.
type InvalidParameterError struct {
	Field  string // parameter name, as in scenario files.
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}

// Warning is a data-quality remark about valid parameters.
type Warning interface {
	error
	warning()
}

// InconsistentVestingWarning flags a cumulative vesting amount lower than the
// previous year's.
type InconsistentVestingWarning struct {
	Year     int
	Previous int64 // cumulative vested shares the year before.
	Vested   int64
}

func (w InconsistentVestingWarning) Error() string {
	return fmt.Sprintf("vested shares for %d (%d) are less than for %d (%d), cumulative vesting usually never decreases", w.Year, w.Vested, w.Year-1, w.Previous)
}

func (InconsistentVestingWarning) warning() {}

// ExcessVestingWarning flags a cumulative vesting amount above the total grant.
type ExcessVestingWarning struct {
	Year   int
	Vested int64
	Grant  int64
}

func (w ExcessVestingWarning) Error() string {
	return fmt.Sprintf("vested shares for %d (%d) exceed the total grant (%d)", w.Year, w.Vested, w.Grant)
}

func (ExcessVestingWarning) warning() {}

// OverRedemptionCondition reports a year where cumulative redemption exceeds
// the track's total shares. The ledger keeps the negative unsold balance.
type OverRedemptionCondition struct {
	Track        Track
	Year         int
	UnsoldShares Quantity
}

func (c OverRedemptionCondition) Error() string {
	return fmt.Sprintf("%s: cumulative redemption in %d exceeds total shares, unsold shares are %s", c.Track, c.Year, c.UnsoldShares)
}
