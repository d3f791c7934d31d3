package equity

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestDefaultScenario(t *testing.T) {
	p, err := DefaultScenario().Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.Key() != scenarioA().Key() {
		t.Errorf("default scenario differs from scenario A:\n%s\n%s", p.Key(), scenarioA().Key())
	}
}

func TestDecodeScenario(t *testing.T) {
	const input = `
name: startup
currency: usd
epoch_year: 2024
final_year: 2030
base_share_price: 6
growth_rate: 0.15
option_strike_price: 6
total_grant_shares: 10000
option_redemption_rate: 0.05
option_basis: granted
vesting_schedule:
  2025: 6000
  2027: 8000
vesting_fill: step
vesting_step: 5000
common_shares_total: 0
common_purchase_price: 2
common_redemption_rate: 0
`
	s, err := DecodeScenario(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeScenario() error: %v", err)
	}
	if s.CurrencyCode() != "USD" {
		t.Errorf("CurrencyCode() = %q, want USD", s.CurrencyCode())
	}
	p, err := s.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.OptionBasis != BasisGranted {
		t.Errorf("OptionBasis = %v, want granted", p.OptionBasis)
	}
	if !slices.Equal(p.Years, YearRange(2024, 2030)) {
		t.Errorf("Years = %v", p.Years)
	}
	want := map[int]int64{2025: 6000, 2026: 10000, 2027: 8000, 2028: 10000, 2029: 10000, 2030: 10000}
	if got := p.Vesting.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vesting = %v, want %v", got, want)
	}
	checkDecimal(t, "growth", p.GrowthRate.Decimal(), "0.15")
}

func TestDecodeScenario_JSON(t *testing.T) {
	const input = `{
  "epoch_year": 2024,
  "final_year": 2027,
  "base_share_price": 6,
  "growth_rate": 0.15,
  "option_strike_price": 6,
  "total_grant_shares": 10000,
  "option_redemption_rate": 0.05,
  "vesting_schedule": {"2025": 6000, "2026": 7000},
  "common_shares_total": 0,
  "common_purchase_price": 2,
  "common_redemption_rate": 0
}`
	s, err := DecodeScenario(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeScenario() error: %v", err)
	}
	p, err := s.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	want := map[int]int64{2025: 6000, 2026: 7000, 2027: 7000}
	if got := p.Vesting.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vesting = %v, want %v", got, want)
	}
}

func TestDecodeScenario_DefaultAsJSON(t *testing.T) {
	// The default scenario as served by the HTTP API.
	data, err := json.Marshal(DefaultScenario())
	if err != nil {
		t.Fatal(err)
	}
	s, err := DecodeScenario(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeScenario() error: %v", err)
	}
	got, err := s.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	want, _ := DefaultScenario().Params()
	if got.Key() != want.Key() {
		t.Errorf("decoded %+v, want the default scenario", s)
	}
}

func TestDecodeScenario_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unknown field", "epoch_year: 2024\nstrike: 6\n"},
		{"not yaml", "epoch_year: [2024"},
		{"comments only", "# nothing yet\n"},
		{"unknown json field", `{"epoch_year": 2024, "strike": 6}`},
		{"json trailing data", `{"epoch_year": 2024} {}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeScenario(strings.NewReader(tc.input)); err == nil {
				t.Error("DecodeScenario() succeeded, want an error")
			}
		})
	}
}

func TestScenario_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(s *Scenario)
		want   []string
	}{
		{"valid", func(s *Scenario) {}, nil},
		{"no epoch", func(s *Scenario) { s.EpochYear = 0 }, []string{"epoch_year"}},
		{"final before epoch", func(s *Scenario) { s.FinalYear = 2020 }, []string{"final_year"}},
		{"negative price", func(s *Scenario) { s.BaseSharePrice = -1 }, []string{"base_share_price"}},
		{"rate above 1", func(s *Scenario) { s.OptionRedemptionRate = 5 }, []string{"option_redemption_rate"}},
		{"unknown basis", func(s *Scenario) { s.OptionBasis = "all" }, []string{"option_basis"}},
		{"unknown fill", func(s *Scenario) { s.VestingFill = "guess" }, []string{"vesting_fill"}},
		{"bad currency", func(s *Scenario) { s.Currency = "pound" }, []string{"currency"}},
		{"negative vesting", func(s *Scenario) { s.Vesting = map[int]int64{2025: -5} }, []string{"vesting_schedule[2025]"}},
		{"several", func(s *Scenario) {
			s.CommonPurchasePrice = 0
			s.GrowthRate = -0.1
		}, []string{"common_purchase_price", "growth_rate"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultScenario()
			tc.modify(&s)
			err := s.Validate()
			if got := invalidFields(err); !slices.Equal(got, tc.want) {
				t.Errorf("Validate() fields = %v, want %v (error: %v)", got, tc.want, err)
			}
		})
	}
}

func TestScenario_ParamsError(t *testing.T) {
	s := DefaultScenario()
	s.OptionStrikePrice = 0
	_, err := s.Params()
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) || ipe.Field != "option_strike_price" {
		t.Errorf("Params() error = %v, want an invalid option_strike_price", err)
	}
}

func TestScenario_DefaultVesting(t *testing.T) {
	s := DefaultScenario()
	s.Vesting = nil
	s.TotalGrantShares = 2000
	p, err := s.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if got := p.Vesting.Vested(2025); got != 1200 {
		t.Errorf("Vested(2025) = %d, want 1200", got)
	}
	if got := p.Vesting.Vested(2035); got != 2000 {
		t.Errorf("Vested(2035) = %d, want 2000", got)
	}
}

func TestEncodeScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeScenario(&buf, DefaultScenario()); err != nil {
		t.Fatalf("EncodeScenario() error: %v", err)
	}
	s, err := DecodeScenario(&buf)
	if err != nil {
		t.Fatalf("DecodeScenario() error: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(s, DefaultScenario()) {
		t.Errorf("decoded scenario = %+v, want %+v", s, DefaultScenario())
	}
}
