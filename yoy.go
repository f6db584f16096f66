package housing

// YoYLookback is the number of trailing periods a year-over-year comparison
// spans: the source publishes one record per calendar month.
const YoYLookback = 12

// AddYoYChange returns a new table with the YoY column filled in: for each
// row, the percentage change relative to the record exactly YoYLookback
// positions earlier within the same region's sorted sequence.
//
// The lag is positional, not calendar arithmetic: when the source skips a
// month, the comparison silently spans 11 or 13 calendar months. This
// mirrors the upstream index's published behavior.
//
// The policy for a missing comparison point is lenient: the first
// YoYLookback records of each region, and any record whose base value is
// exactly zero, get a nil YoY. Row count and order are unchanged.
func AddYoYChange(t *Table) *Table {
	out := t.Rows()

	// Records are sorted by (region, date), so each region's sequence is a
	// contiguous run.
	runStart := 0
	for i := range out {
		if out[i].Region != out[runStart].Region {
			runStart = i
		}
		out[i].YoY = nil
		base := i - YoYLookback
		if base < runStart {
			continue
		}
		prev := out[base].Value
		if prev == 0 {
			continue
		}
		yoy := Percent((out[i].Value - prev) / prev * 100)
		out[i].YoY = &yoy
	}
	return &Table{records: out}
}
