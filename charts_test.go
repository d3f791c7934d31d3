package equity

import (
	"context"
	"slices"
	"testing"
)

func TestDefaultCharts(t *testing.T) {
	charts := DefaultCharts(scenarioA())
	if len(charts) != 3 {
		t.Fatalf("DefaultCharts() returned %d charts, want 3", len(charts))
	}
	if got, want := charts[2].Caption(), "Fixed assumption: option-rate = 0%, common-rate = 0%"; got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}

	p := scenarioA()
	p.CommonSharesTotal = 0
	if got := DefaultCharts(p); len(got) != 1 || got[0].Column != (Column{Options, TotalValue}) {
		t.Errorf("DefaultCharts() without common shares = %v, want the options chart only", got)
	}
}

func TestBuildCharts(t *testing.T) {
	p := scenarioA()
	cache := NewCache()
	charts, err := BuildCharts(context.Background(), cache, p, DefaultCharts(p))
	if err != nil {
		t.Fatalf("BuildCharts() error: %v", err)
	}

	// options 0/5/10% at 20% growth, common 0/5/10% at 20% growth share
	// ledgers with the options chart, combined 15/20% at 0/0%.
	if got, want := cache.Len(), 7; got != want {
		t.Errorf("cache.Len() = %d, want %d", got, want)
	}

	options := charts[0]
	if !slices.Equal(options.Years, YearRange(2025, 2035)) {
		t.Errorf("chart years = %v", options.Years)
	}
	if len(options.Series) != 3 {
		t.Fatalf("options chart has %d series, want 3", len(options.Series))
	}
	for i, s := range options.Series {
		if len(s.Points) != len(options.Years) {
			t.Errorf("series %s has %d points", s.Label, len(s.Points))
		}
		if i > 0 && s.Value.Equal(options.Series[i-1].Value) {
			t.Errorf("series %d repeats the rate %s", i, s.Value)
		}
	}

	// 20% growth, no redemption: 6 * 1.2 = 7.2, (7.2-6) * 6000 = 7200.
	zero := options.Series[0]
	checkDecimal(t, "first point", zero.Points[0], "7200")
	if got := zero.Thousands()[0]; got != 7 {
		t.Errorf("Thousands()[0] = %d, want 7", got)
	}
	if !zero.Last().Equal(zero.Points[len(zero.Points)-1]) {
		t.Errorf("Last() = %s", zero.Last())
	}

	combined := charts[2]
	want := Project(Growth.Apply(CommonRedemption.Apply(OptionRedemption.Apply(p, Percent(0)), Percent(0)), Percent(15)))
	if got := combined.Series[0].Last(); !got.Equal(want.Final().CombinedTotalValue.Decimal()) {
		t.Errorf("combined 15%% final = %s, want %s", got, want.Final().CombinedTotalValue)
	}
}
