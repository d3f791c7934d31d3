package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/equity"
	"github.com/etnz/equity/logger"
)

// scenarioFlags are the flags shared by every command working on a scenario.
// Flags explicitly set on the command line override the scenario file.
type scenarioFlags struct {
	file     string
	currency string

	basePrice    float64
	growth       string
	strike       float64
	grant        int64
	optionRate   string
	basis        string
	commonShares int64
	commonPrice  float64
	commonRate   string
	from         int
	to           int
}

func (c *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "scenario", "", "scenario file (YAML or JSON), defaults to $EQV_SCENARIO or the built-in scenario")
	f.StringVar(&c.currency, "currency", "", "display currency, defaults to the scenario's or $EQV_CURRENCY")

	f.Float64Var(&c.basePrice, "base-price", 0, "share price at the epoch year")
	f.StringVar(&c.growth, "growth", "", "annual share price growth, e.g. 15% or 0.15")
	f.Float64Var(&c.strike, "strike", 0, "option strike price")
	f.Int64Var(&c.grant, "grant", 0, "total granted options")
	f.StringVar(&c.optionRate, "option-rate", "", "yearly redemption rate of vested unsold options")
	f.StringVar(&c.basis, "basis", "", "option valuation basis: vested or granted")
	f.Int64Var(&c.commonShares, "common-shares", 0, "common shares held")
	f.Float64Var(&c.commonPrice, "common-price", 0, "common share purchase price")
	f.StringVar(&c.commonRate, "common-rate", "", "yearly redemption rate of unsold common shares")
	f.IntVar(&c.from, "from", 0, "epoch year")
	f.IntVar(&c.to, "to", 0, "final projected year")
}

// scenario loads the scenario file and applies the flags set in f.
func (c *scenarioFlags) scenario(f *flag.FlagSet) (equity.Scenario, error) {
	s, builtin, err := c.load()
	if err != nil {
		return s, err
	}

	var errs []string
	resized := false
	rate := func(name, value string, dst *float64) {
		r, err := equity.ParseRate(value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("-%s: %v", name, err))
			return
		}
		*dst = r.Decimal().InexactFloat64()
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "base-price":
			s.BaseSharePrice = c.basePrice
		case "growth":
			rate(fl.Name, c.growth, &s.GrowthRate)
		case "strike":
			s.OptionStrikePrice = c.strike
		case "grant":
			s.TotalGrantShares = c.grant
			resized = true
		case "option-rate":
			rate(fl.Name, c.optionRate, &s.OptionRedemptionRate)
		case "basis":
			s.OptionBasis = c.basis
		case "common-shares":
			s.CommonSharesTotal = c.commonShares
		case "common-price":
			s.CommonPurchasePrice = c.commonPrice
		case "common-rate":
			rate(fl.Name, c.commonRate, &s.CommonRedemptionRate)
		case "from":
			s.EpochYear = c.from
			resized = true
		case "to":
			s.FinalYear = c.to
			resized = true
		case "currency":
			s.Currency = c.currency
		}
	})
	if len(errs) > 0 {
		return s, fmt.Errorf("invalid flags: %s", strings.Join(errs, "; "))
	}
	// The built-in schedule is sized for the built-in grant and years: an empty
	// schedule makes Params derive the default one from the new values.
	if builtin && resized {
		s.Vesting = nil
	}
	return s, nil
}

// load reads the scenario file, or returns the built-in scenario in the
// configured currency. builtin reports the latter.
func (c *scenarioFlags) load() (s equity.Scenario, builtin bool, err error) {
	name := c.file
	if name == "" {
		name = settings.Scenario
	}
	if name == "" {
		s = equity.DefaultScenario()
		s.Currency = settings.Currency
		return s, true, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return s, false, fmt.Errorf("cannot open scenario: %w", err)
	}
	defer file.Close()
	s, err = equity.DecodeScenario(file)
	if err != nil {
		return s, false, fmt.Errorf("%s: %w", name, err)
	}
	if s.Currency == "" {
		s.Currency = settings.Currency
	}
	return s, false, nil
}

// params returns the scenario and its projection parameters, logging the
// parameter warnings.
func (c *scenarioFlags) params(f *flag.FlagSet) (equity.Scenario, equity.Params, error) {
	s, err := c.scenario(f)
	if err != nil {
		return s, equity.Params{}, err
	}
	p, err := s.Params()
	if err != nil {
		return s, p, err
	}
	log := logger.Get()
	for _, w := range p.Warnings() {
		log.Warnw("vesting schedule", "warning", w.Error())
	}
	return s, p, nil
}

// logOverRedemptions logs the years where a track redeemed more than it holds.
func logOverRedemptions(l *equity.Ledger) {
	log := logger.Get()
	for _, c := range l.OverRedemptions() {
		log.Warnw("over redemption", "track", c.Track.String(), "year", c.Year, "unsold_shares", c.UnsoldShares.String())
	}
}
