package equity

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Setting fixes a dimension to a value.
type Setting struct {
	Dimension Dimension
	Value     Rate
}

func (s Setting) String() string { return s.Dimension.String() + " = " + s.Value.String() }

// ChartSpec describes a sensitivity chart: one series per value of Dimension,
// plotting Column, with the Fixed settings applied to every series.
type ChartSpec struct {
	Title     string
	Column    Column
	Dimension Dimension
	Values    []Rate
	Fixed     []Setting
}

// Caption describes the fixed assumptions of the chart.
func (s ChartSpec) Caption() string {
	if len(s.Fixed) == 0 {
		return ""
	}
	parts := make([]string, len(s.Fixed))
	for i, f := range s.Fixed {
		parts[i] = f.String()
	}
	return "Fixed assumption: " + strings.Join(parts, ", ")
}

// DefaultCharts returns the standard sensitivity charts for p. Charts on the
// common track are left out when there are no common shares.
func DefaultCharts(p Params) []ChartSpec {
	rates := []Rate{Percent(0), Percent(5), Percent(10)}
	charts := []ChartSpec{{
		Title:     "Option value sensitivity to redemption rate",
		Column:    Column{Options, TotalValue},
		Dimension: OptionRedemption,
		Values:    rates,
		Fixed:     []Setting{{Growth, Percent(20)}},
	}}
	if p.CommonSharesTotal == 0 {
		return charts
	}
	return append(charts,
		ChartSpec{
			Title:     "Common share value sensitivity to redemption rate",
			Column:    Column{Common, TotalValue},
			Dimension: CommonRedemption,
			Values:    rates,
			Fixed:     []Setting{{Growth, Percent(20)}},
		},
		ChartSpec{
			Title:     "Combined value sensitivity to growth rate",
			Column:    Column{Combined, TotalValue},
			Dimension: Growth,
			Values:    []Rate{Percent(15), Percent(20)},
			Fixed:     []Setting{{OptionRedemption, Percent(0)}, {CommonRedemption, Percent(0)}},
		},
	)
}

// Series is one line of a chart, from the first year after the epoch.
type Series struct {
	Label  string
	Value  Rate
	Points []decimal.Decimal
}

// Thousands returns the points in thousands, rounded, as charts display them.
func (s Series) Thousands() []int64 {
	out := make([]int64, len(s.Points))
	for i, p := range s.Points {
		out[i] = M(p).Thousands()
	}
	return out
}

// Last returns the final point.
func (s Series) Last() decimal.Decimal {
	if len(s.Points) == 0 {
		return decimal.Zero
	}
	return s.Points[len(s.Points)-1]
}

// Chart is a computed ChartSpec.
type Chart struct {
	Spec   ChartSpec
	Years  []int
	Series []Series
}

// BuildChart sweeps p along the chart dimension and slices the column out of
// each variant ledger.
func BuildChart(ctx context.Context, cache *Cache, p Params, spec ChartSpec) (Chart, error) {
	for _, f := range spec.Fixed {
		p = f.Dimension.Apply(p, f.Value)
	}
	variants, err := Sweep(ctx, cache, p, spec.Dimension, spec.Values)
	if err != nil {
		return Chart{}, fmt.Errorf("chart %q: %w", spec.Title, err)
	}
	chart := Chart{Spec: spec}
	if len(p.Years) > 1 {
		chart.Years = p.Years[1:]
	}
	for _, v := range variants {
		chart.Series = append(chart.Series, Series{
			Label:  v.Label(),
			Value:  v.Value,
			Points: v.Ledger.Series(spec.Column),
		})
	}
	return chart, nil
}

// BuildCharts builds every spec, sharing the cache.
func BuildCharts(ctx context.Context, cache *Cache, p Params, specs []ChartSpec) ([]Chart, error) {
	charts := make([]Chart, 0, len(specs))
	for _, spec := range specs {
		c, err := BuildChart(ctx, cache, p, spec)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}
