package equity

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// VestingSchedule maps a year to the cumulative number of vested shares at that
// year. It is immutable: constructors copy their input.
type VestingSchedule struct {
	vested map[int]int64
}

// NewVestingSchedule creates a schedule from a year to cumulative vested shares map.
func NewVestingSchedule(vested map[int]int64) VestingSchedule {
	return VestingSchedule{vested: maps.Clone(vested)}
}

// DefaultVesting returns the conventional schedule: 60% of the grant vested the
// first year after the epoch, then 10% more each year until fully vested.
func DefaultVesting(years []int, grant int64) VestingSchedule {
	vested := make(map[int]int64, len(years))
	for i, y := range years {
		if i == 0 {
			continue // epoch
		}
		pct := min(50+10*int64(i), 100)
		vested[y] = grant * pct / 100
	}
	return VestingSchedule{vested: vested}
}

// Len returns the number of years defined in the schedule.
func (v VestingSchedule) Len() int { return len(v.vested) }

// Has reports whether the schedule defines year explicitly.
func (v VestingSchedule) Has(year int) bool {
	_, ok := v.vested[year]
	return ok
}

// Years returns the defined years in increasing order.
func (v VestingSchedule) Years() []int {
	return slices.Sorted(maps.Keys(v.vested))
}

// All iterates over the defined years in increasing order.
func (v VestingSchedule) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for _, y := range v.Years() {
			if !yield(y, v.vested[y]) {
				return
			}
		}
	}
}

// Vested returns the cumulative vested shares at year. Undefined years carry
// the latest earlier year forward, or zero before the first defined year.
func (v VestingSchedule) Vested(year int) int64 {
	if n, ok := v.vested[year]; ok {
		return n
	}
	latest, found, n := 0, false, int64(0)
	for y, vy := range v.vested {
		if y < year && (!found || y > latest) {
			latest, found, n = y, true, vy
		}
	}
	return n
}

// Map returns a copy of the underlying map.
func (v VestingSchedule) Map() map[int]int64 { return maps.Clone(v.vested) }

// FillPolicy computes the cumulative vested shares for a year missing from a
// schedule, given the previous year's amount.
type FillPolicy interface {
	fill(previous int64) int64
}

// CarryForward repeats the previous year's cumulative amount.
type CarryForward struct{}

func (CarryForward) fill(previous int64) int64 { return previous }

// StepForward adds Step to the previous year's amount, capped at Cap when Cap is positive.
type StepForward struct {
	Step int64
	Cap  int64
}

func (s StepForward) fill(previous int64) int64 {
	n := previous + s.Step
	if s.Cap > 0 && n > s.Cap {
		n = s.Cap
	}
	return n
}

// Fill returns a schedule defining every projection year after the epoch
// (years[0]), completing missing years with the policy. A nil policy means CarryForward.
func (v VestingSchedule) Fill(years []int, policy FillPolicy) VestingSchedule {
	if policy == nil {
		policy = CarryForward{}
	}
	filled := maps.Clone(v.vested)
	if filled == nil {
		filled = make(map[int]int64, len(years))
	}
	for i, y := range years {
		if i == 0 {
			continue
		}
		if _, ok := filled[y]; ok {
			continue
		}
		previous, ok := filled[years[i-1]]
		if !ok {
			previous = v.Vested(years[i-1])
		}
		filled[y] = policy.fill(previous)
	}
	return VestingSchedule{vested: filled}
}

// String returns "2025:6000 2026:7000 ...".
func (v VestingSchedule) String() string {
	var b strings.Builder
	for y, n := range v.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%d", y, n)
	}
	return b.String()
}

func (v VestingSchedule) MarshalJSON() ([]byte, error) {
	if v.vested == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v.vested)
}

func (v *VestingSchedule) UnmarshalJSON(data []byte) error {
	var m map[int]int64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("invalid vesting schedule: %w", err)
	}
	v.vested = m
	return nil
}
