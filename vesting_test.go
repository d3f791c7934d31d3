package equity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultVesting(t *testing.T) {
	v := DefaultVesting(YearRange(2024, 2031), 10000)
	want := map[int]int64{2025: 6000, 2026: 7000, 2027: 8000, 2028: 9000, 2029: 10000, 2030: 10000, 2031: 10000}
	if got := v.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultVesting() = %v, want %v", got, want)
	}
	if v.Has(2024) {
		t.Error("DefaultVesting() defines the epoch year")
	}
}

func TestVestingSchedule_Vested(t *testing.T) {
	v := NewVestingSchedule(map[int]int64{2025: 6000, 2027: 8000})
	testCases := []struct {
		year int
		want int64
	}{
		{2024, 0},
		{2025, 6000},
		{2026, 6000},
		{2027, 8000},
		{2040, 8000},
	}
	for _, tc := range testCases {
		if got := v.Vested(tc.year); got != tc.want {
			t.Errorf("Vested(%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}

func TestVestingSchedule_Fill(t *testing.T) {
	years := YearRange(2024, 2029)
	testCases := []struct {
		name     string
		schedule map[int]int64
		policy   FillPolicy
		want     map[int]int64
	}{
		{
			name:     "carry forward",
			schedule: map[int]int64{2025: 6000, 2027: 8000},
			policy:   CarryForward{},
			want:     map[int]int64{2025: 6000, 2026: 6000, 2027: 8000, 2028: 8000, 2029: 8000},
		},
		{
			name:     "nil policy carries forward",
			schedule: map[int]int64{2026: 7000},
			want:     map[int]int64{2025: 0, 2026: 7000, 2027: 7000, 2028: 7000, 2029: 7000},
		},
		{
			name:     "step forward capped at the grant",
			schedule: map[int]int64{2025: 6000},
			policy:   StepForward{Step: 5000, Cap: 10000},
			want:     map[int]int64{2025: 6000, 2026: 10000, 2027: 10000, 2028: 10000, 2029: 10000},
		},
		{
			name:     "step forward from nothing",
			schedule: nil,
			policy:   StepForward{Step: 2000},
			want:     map[int]int64{2025: 2000, 2026: 4000, 2027: 6000, 2028: 8000, 2029: 10000},
		},
		{
			name:     "complete schedule is unchanged",
			schedule: map[int]int64{2025: 1, 2026: 2, 2027: 3, 2028: 4, 2029: 5},
			policy:   StepForward{Step: 100},
			want:     map[int]int64{2025: 1, 2026: 2, 2027: 3, 2028: 4, 2029: 5},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVestingSchedule(tc.schedule)
			got := v.Fill(years, tc.policy).Map()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Fill() = %v, want %v", got, tc.want)
			}
			if !reflect.DeepEqual(v.Map(), NewVestingSchedule(tc.schedule).Map()) {
				t.Error("Fill() modified the receiver")
			}
		})
	}
}

func TestVestingSchedule_CopiesInput(t *testing.T) {
	m := map[int]int64{2025: 6000}
	v := NewVestingSchedule(m)
	m[2025] = 1
	if got := v.Vested(2025); got != 6000 {
		t.Errorf("Vested(2025) = %d after the input map changed, want 6000", got)
	}
	v.Map()[2025] = 2
	if got := v.Vested(2025); got != 6000 {
		t.Errorf("Vested(2025) = %d after the Map() copy changed, want 6000", got)
	}
}

func TestVestingSchedule_String(t *testing.T) {
	v := NewVestingSchedule(map[int]int64{2026: 7000, 2025: 6000})
	if got, want := v.String(), "2025:6000 2026:7000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVestingSchedule_JSON(t *testing.T) {
	var v VestingSchedule
	if err := json.Unmarshal([]byte(`{"2025":6000,"2026":7000}`), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got := v.Vested(2026); got != 7000 {
		t.Errorf("Vested(2026) = %d, want 7000", got)
	}
	data, err := json.Marshal(VestingSchedule{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal(empty) = %s, want {}", data)
	}
}
