package housing

import (
	"iter"
	"slices"
	"strings"
)

// Record is one long-format row: the index value of a single region for a
// single calendar month.
type Record struct {
	Region string
	Date   Date
	Value  float64
	// Code is the short region code, set by AddRegionCodes. Empty until then.
	Code string
	// YoY is the trailing 12-period change, set by AddYoYChange.
	// A nil YoY means no comparison point exists.
	YoY *Percent
}

// Table is an immutable long-format table, sorted by (region, date).
//
// Transformations (Filter, AddRegionCodes, AddYoYChange) return a new Table
// and leave the receiver unchanged.
type Table struct {
	records []Record
}

// NewTable builds a table from records, sorting them by (region, date).
func NewTable(records ...Record) *Table {
	rs := slices.Clone(records)
	sortRecords(rs)
	return &Table{records: rs}
}

func sortRecords(rs []Record) {
	slices.SortFunc(rs, func(a, b Record) int {
		if c := strings.Compare(a.Region, b.Region); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})
}

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.records) }

// All returns an iterator over all rows in (region, date) order.
func (t *Table) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range t.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Rows returns a copy of all rows in (region, date) order.
func (t *Table) Rows() []Record { return slices.Clone(t.records) }

// Equal reports whether two tables hold the same rows in the same order.
func (t *Table) Equal(o *Table) bool {
	return slices.EqualFunc(t.records, o.records, func(a, b Record) bool {
		if a.Region != b.Region || a.Date != b.Date || a.Value != b.Value || a.Code != b.Code {
			return false
		}
		switch {
		case a.YoY == nil && b.YoY == nil:
			return true
		case a.YoY == nil || b.YoY == nil:
			return false
		default:
			return a.YoY.Equal(*b.YoY)
		}
	})
}

// RegionNames returns the sorted list of unique region names in the table.
func (t *Table) RegionNames() []string {
	var names []string
	for _, r := range t.records {
		// records are sorted by region, so duplicates are adjacent.
		if len(names) == 0 || names[len(names)-1] != r.Region {
			names = append(names, r.Region)
		}
	}
	return names
}

// Bounds returns the earliest and latest dates present in the table,
// and false if the table is empty.
func (t *Table) Bounds() (min, max Date, ok bool) {
	if len(t.records) == 0 {
		return Date{}, Date{}, false
	}
	min, max = t.records[0].Date, t.records[0].Date
	for _, r := range t.records[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, true
}

// Filter returns a new table restricted to the given region names and the
// inclusive [from, to] date interval.
//
// A nil or empty regions slice keeps all regions (no region filtering).
// A zero from or to date leaves that bound open. An empty result is not an
// error: callers distinguish "no matching rows" from "input was empty".
func (t *Table) Filter(regions []string, from, to Date) *Table {
	keep := func(Record) bool { return true }
	if len(regions) > 0 {
		set := make(map[string]bool, len(regions))
		for _, name := range regions {
			set[name] = true
		}
		keep = func(r Record) bool { return set[r.Region] }
	}

	span := Range{From: from, To: to}
	out := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		if keep(r) && span.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return &Table{records: out}
}
