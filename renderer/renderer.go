// Package renderer turns pipeline tables and reports into markdown
// documents suitable for terminal rendering.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"housing"
)

// emptyNotice is shown instead of a table when a filter produced no rows.
const emptyNotice = "No data to display. Try adjusting your filters."

// TrendMarkdown renders the long table as a markdown document, one row per
// (region, month).
func TrendMarkdown(t *housing.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Median Home Value Over Time")

	if t.Len() == 0 {
		doc.PlainText(emptyNotice)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Region", "Date", "Median Home Value"},
		Rows:   [][]string{},
	}
	for r := range t.All() {
		table.Rows = append(table.Rows, []string{
			r.Region,
			r.Date.String(),
			housing.Dollars(r.Value).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SnapshotMarkdown renders the latest-month comparison of regions.
func SnapshotMarkdown(r *housing.SnapshotReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(r.Entries) == 0 {
		doc.H1("Current Snapshot")
		doc.PlainText(emptyNotice)
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Current Snapshot (%s)", r.Date.Format("January 2006")))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Region", "Code", "Median Home Value", "YoY"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		yoy := "-"
		if e.YoY != nil {
			yoy = e.YoY.SignedString()
		}
		code := e.Code
		if code == "" {
			code = housing.UnknownRegionCode
		}
		table.Rows = append(table.Rows, []string{e.Region, code, e.Value.String(), yoy})
	}
	doc.Table(table)

	return doc.String()
}

// YoYMarkdown renders the table with its trailing 12-period change column.
// Rows without a comparison point show a "-" change.
func YoYMarkdown(t *housing.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Year-over-Year Price Change")

	if t.Len() == 0 {
		doc.PlainText(emptyNotice)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Region", "Date", "Median Home Value", "YoY"},
		Rows:   [][]string{},
	}
	for r := range t.All() {
		yoy := "-"
		if r.YoY != nil {
			yoy = r.YoY.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			r.Region,
			r.Date.String(),
			housing.Dollars(r.Value).String(),
			yoy,
		})
	}
	doc.Table(table)

	return doc.String()
}

// RegionsMarkdown renders the registry view of the regions present in a
// table, with their short codes.
func RegionsMarkdown(t *housing.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Regions")

	names := t.RegionNames()
	if len(names) == 0 {
		doc.PlainText(emptyNotice)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Region", "Code"},
		Rows:      [][]string{},
	}
	for _, name := range names {
		code, ok := housing.RegionCode(name)
		if !ok {
			code = housing.UnknownRegionCode
		}
		table.Rows = append(table.Rows, []string{name, code})
	}
	doc.Table(table)

	return doc.String()
}
