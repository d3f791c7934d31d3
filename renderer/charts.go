package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/equity"
	md "github.com/nao1215/markdown"
)

// ChartsMarkdown renders sensitivity charts as tables of values in thousands,
// followed by the final year value of each series.
func ChartsMarkdown(charts []equity.Chart, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Sensitivity")
	for _, c := range charts {
		doc.H3(c.Spec.Title)
		if caption := c.Spec.Caption(); caption != "" {
			doc.PlainText(md.Italic(caption))
		}
		doc.PlainText(fmt.Sprintf("%s in thousands of %s.", columnTitle(c.Spec.Column), currency))

		alignment := []md.TableAlignment{md.AlignLeft}
		header := []string{"Year"}
		for _, s := range c.Series {
			alignment = append(alignment, md.AlignRight)
			header = append(header, s.Label)
		}
		table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}
		thousands := make([][]int64, len(c.Series))
		for i, s := range c.Series {
			thousands[i] = s.Thousands()
		}
		for i, year := range c.Years {
			row := []string{strconv.Itoa(year)}
			for j := range c.Series {
				row = append(row, strconv.FormatInt(thousands[j][i], 10))
			}
			table.Rows = append(table.Rows, row)
		}
		doc.Table(table)

		if len(c.Years) == 0 {
			continue
		}
		final := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{c.Spec.Dimension.String(), fmt.Sprintf("Value in %d", c.Years[len(c.Years)-1])},
			Rows:      [][]string{},
		}
		for _, s := range c.Series {
			final.Rows = append(final.Rows, []string{s.Value.String(), equity.M(s.Last()).FormatWhole(currency)})
		}
		doc.Table(final)
	}
	return doc.String()
}

// SweepMarkdown renders column c of every variant side by side.
func SweepMarkdown(variants []equity.Variant, c equity.Column, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(variants) == 0 {
		return ""
	}
	doc.H2(fmt.Sprintf("%s by %s", columnTitle(c), variants[0].Dimension))

	alignment := []md.TableAlignment{md.AlignLeft}
	header := []string{"Year"}
	for _, v := range variants {
		alignment = append(alignment, md.AlignRight)
		header = append(header, v.Value.String())
	}
	table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}
	for year := range variants[0].Ledger.All() {
		row := []string{strconv.Itoa(year)}
		for _, v := range variants {
			y, _ := v.Ledger.At(year)
			row = append(row, formatValue(c.Field, y.Value(c), currency))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// columnTitle returns a human readable column name, "Options total value".
func columnTitle(c equity.Column) string {
	return trackTitle(c.Track) + " " + fieldTitle(c.Field)
}

var fieldTitles = map[equity.Field]string{
	equity.SharePrice:                "share price",
	equity.VestedShares:              "vested shares",
	equity.VestedUnsoldShares:        "vested unsold shares",
	equity.SharesRedeemed:            "shares redeemed",
	equity.CumulativeRedeemed:        "cumulative shares redeemed",
	equity.UnsoldShares:              "unsold shares",
	equity.RedemptionValue:           "redemption value",
	equity.CumulativeRedemptionValue: "cumulative redemption value",
	equity.UnsoldValue:               "unsold value",
	equity.TotalValue:                "total value",
}

func fieldTitle(f equity.Field) string {
	if t, ok := fieldTitles[f]; ok {
		return t
	}
	return f.String()
}
