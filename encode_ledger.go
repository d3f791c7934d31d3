package equity

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// This file encodes ledgers for exporters: a JSON document with a stable field
// order, and a CSV table with one row per year and every column at full precision.

func (r YearRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, f := range Fields {
		w.Append(f.jsonName(), r.Value(f))
	}
	return w.MarshalJSON()
}

func (y Year) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Append("sharePrice", y.Options.SharePrice)
	w.Append("options", y.Options)
	w.Append("common", y.Common)
	w.Append("combinedTotalValue", y.CombinedTotalValue)
	return w.MarshalJSON()
}

func (c OverRedemptionCondition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("track", c.Track.String())
	w.Append("year", c.Year)
	w.Append("unsoldShares", c.UnsoldShares)
	return w.MarshalJSON()
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("params", l.params)
	w.Append("years", l.years)
	w.Optional("overRedemptions", l.OverRedemptions())
	return w.MarshalJSON()
}

// EncodeLedger writes l as an indented JSON document.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}

// CSVColumns lists the ledger columns in CSV order, after the year.
func CSVColumns() []Column {
	columns := make([]Column, 0, 2*len(Fields)+1)
	columns = append(columns, Column{Options, SharePrice})
	for _, t := range []Track{Options, Common} {
		for _, f := range Fields[1:] {
			columns = append(columns, Column{t, f})
		}
	}
	return append(columns, Column{Combined, TotalValue})
}

// EncodeCSV writes every ledger row, epoch included, as CSV.
func EncodeCSV(w io.Writer, l *Ledger) error {
	columns := CSVColumns()
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(columns)+1)
	header = append(header, "year")
	for _, c := range columns {
		name := c.String()
		if c.Field == SharePrice {
			name = c.Field.String()
		}
		header = append(header, name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}

	for _, y := range l.years {
		record := make([]string, 0, len(header))
		record = append(record, strconv.Itoa(y.Year))
		for _, c := range columns {
			record = append(record, y.Value(c).String())
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row %d: %w", y.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
