package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/equity"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the yearly total value of each track.
func ProjectionMarkdown(l *equity.Ledger, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	p := l.Params()
	doc.H1(fmt.Sprintf("Projection %d to %d", p.Epoch(), p.Final()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Share price", "Options", "Common shares", "Combined"},
		Rows:      [][]string{},
	}
	for year, y := range l.All() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(year),
			y.Options.SharePrice.Format(currency),
			y.Options.TotalValue.Format(currency),
			y.Common.TotalValue.Format(currency),
			md.Bold(y.CombinedTotalValue.Format(currency)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// LedgerMarkdown renders every column of the ledger, one table per track.
// The common share table is left out when there are none.
func LedgerMarkdown(l *equity.Ledger, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Year by year")
	tracks := []equity.Track{equity.Options}
	if l.Params().CommonSharesTotal > 0 {
		tracks = append(tracks, equity.Common)
	}
	for _, t := range tracks {
		doc.H3(trackTitle(t))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{
				"Year", "Share price", "Vested", "Vested unsold", "Redeemed", "Cumulative redeemed",
				"Unsold", "Redemption value", "Cumulative proceeds", "Unsold value", "Total value",
			},
			Rows: [][]string{},
		}
		for year, y := range l.All() {
			r := y.Record(t)
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(year),
				r.SharePrice.Format(currency),
				shares(r.VestedShares),
				shares(r.VestedUnsoldShares),
				shares(r.SharesRedeemed),
				shares(r.CumulativeRedeemed),
				shares(r.UnsoldShares),
				r.RedemptionValue.Format(currency),
				r.CumulativeRedemptionValue.Format(currency),
				r.UnsoldValue.Format(currency),
				r.TotalValue.Format(currency),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
