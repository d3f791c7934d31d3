package equity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Scenario is the raw, human-edited form of the projection parameters, as read
// from a YAML scenario file or a JSON request body.
type Scenario struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty" validate:"omitempty,len=3,alpha"`

	EpochYear int `yaml:"epoch_year" json:"epoch_year" validate:"required"`
	FinalYear int `yaml:"final_year" json:"final_year" validate:"gtefield=EpochYear"`

	BaseSharePrice float64 `yaml:"base_share_price" json:"base_share_price" validate:"gt=0"`
	GrowthRate     float64 `yaml:"growth_rate" json:"growth_rate" validate:"gte=0"`

	OptionStrikePrice    float64       `yaml:"option_strike_price" json:"option_strike_price" validate:"gt=0"`
	TotalGrantShares     int64         `yaml:"total_grant_shares" json:"total_grant_shares" validate:"gte=0"`
	OptionRedemptionRate float64       `yaml:"option_redemption_rate" json:"option_redemption_rate" validate:"gte=0,lte=1"`
	OptionBasis          string        `yaml:"option_basis,omitempty" json:"option_basis,omitempty" validate:"omitempty,oneof=vested granted"`
	Vesting              map[int]int64 `yaml:"vesting_schedule,omitempty" json:"vesting_schedule,omitempty" validate:"dive,gte=0"`
	VestingFill          string        `yaml:"vesting_fill,omitempty" json:"vesting_fill,omitempty" validate:"omitempty,oneof=carry step"`
	VestingStep          int64         `yaml:"vesting_step,omitempty" json:"vesting_step,omitempty" validate:"gte=0"`

	CommonSharesTotal    int64   `yaml:"common_shares_total" json:"common_shares_total" validate:"gte=0"`
	CommonPurchasePrice  float64 `yaml:"common_purchase_price" json:"common_purchase_price" validate:"gt=0"`
	CommonRedemptionRate float64 `yaml:"common_redemption_rate" json:"common_redemption_rate" validate:"gte=0,lte=1"`
}

// DefaultCurrency is used when a scenario does not set one.
const DefaultCurrency = "GBP"

// DefaultScenario returns the reference scenario: a 10,000 share grant struck
// at 6.00, 10,000 common shares bought at 2.00, 15% growth and 5% redemption
// from 2024 to 2035.
func DefaultScenario() Scenario {
	const epoch, final = 2024, 2035
	return Scenario{
		Name:                 "default",
		Currency:             DefaultCurrency,
		EpochYear:            epoch,
		FinalYear:            final,
		BaseSharePrice:       6.00,
		GrowthRate:           0.15,
		OptionStrikePrice:    6.00,
		TotalGrantShares:     10000,
		OptionRedemptionRate: 0.05,
		Vesting:              DefaultVesting(YearRange(epoch, final), 10000).Map(),
		CommonSharesTotal:    10000,
		CommonPurchasePrice:  2.00,
		CommonRedemptionRate: 0.05,
	}
}

var validate = newValidator()

// newValidator returns a validator reporting fields by their scenario file name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the scenario field constraints. Errors are
// *InvalidParameterError joined together.
func (s Scenario) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("cannot validate scenario: %w", err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &InvalidParameterError{
			Field:  fe.Field(),
			Value:  fmt.Sprint(fe.Value()),
			Reason: reason(fe),
		})
	}
	return errors.Join(errs...)
}

// reason turns a failed validation tag into a sentence.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gtefield":
		return "must not be before epoch_year"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len", "alpha":
		return "must be a 3-letter currency code"
	default:
		return "failed " + fe.Tag()
	}
}

// CurrencyCode returns the scenario currency, or DefaultCurrency.
func (s Scenario) CurrencyCode() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(s.Currency)
}

// Params validates the scenario and converts it to projection parameters.
// Missing vesting years are completed with the scenario fill policy; an empty
// schedule means the default schedule.
func (s Scenario) Params() (Params, error) {
	if err := s.Validate(); err != nil {
		return Params{}, err
	}
	basis, err := ParseBasis(s.OptionBasis)
	if err != nil {
		return Params{}, err
	}
	years := YearRange(s.EpochYear, s.FinalYear)

	vesting := NewVestingSchedule(s.Vesting)
	if vesting.Len() == 0 {
		vesting = DefaultVesting(years, s.TotalGrantShares)
	}
	var policy FillPolicy = CarryForward{}
	if s.VestingFill == "step" {
		policy = StepForward{Step: s.VestingStep, Cap: s.TotalGrantShares}
	}

	p := Params{
		BaseSharePrice:       M(s.BaseSharePrice),
		GrowthRate:           R(s.GrowthRate),
		OptionStrikePrice:    M(s.OptionStrikePrice),
		TotalGrantShares:     s.TotalGrantShares,
		OptionRedemptionRate: R(s.OptionRedemptionRate),
		Vesting:              vesting.Fill(years, policy),
		OptionBasis:          basis,
		CommonSharesTotal:    s.CommonSharesTotal,
		CommonPurchasePrice:  M(s.CommonPurchasePrice),
		CommonRedemptionRate: R(s.CommonRedemptionRate),
		Years:                years,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// DecodeScenario reads a YAML or JSON scenario. A document starting with "{" is
// JSON, as served by the HTTP API. Unknown fields are errors.
func DecodeScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	data, err := io.ReadAll(r)
	if err != nil {
		return s, fmt.Errorf("cannot read scenario: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return s, fmt.Errorf("empty scenario")
	}

	if data[0] == '{' {
		// YAML cannot decode the quoted year keys of a JSON vesting schedule.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return s, fmt.Errorf("cannot decode scenario: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return s, fmt.Errorf("cannot decode scenario: trailing data after the object")
		}
		return s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, fmt.Errorf("empty scenario")
		}
		return s, fmt.Errorf("cannot decode scenario: %w", err)
	}
	return s, nil
}

// EncodeScenario writes s as YAML.
func EncodeScenario(w io.Writer, s Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode scenario: %w", err)
	}
	return enc.Close()
}
