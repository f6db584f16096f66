package housing

// SnapshotEntry is one region's line in a latest-month snapshot.
type SnapshotEntry struct {
	Region string
	Code   string
	Value  Dollars
	// YoY compares against the last record dated at or before 12 calendar
	// months earlier, or nil when no such record exists. Unlike
	// AddYoYChange, this delta is date-based: a snapshot compares points in
	// time, not positions in the sequence.
	YoY *Percent
}

// SnapshotReport is a point-in-time comparison of regions at the latest
// date present in a table.
type SnapshotReport struct {
	Date    Date
	Entries []SnapshotEntry
}

// NewSnapshot builds the latest-month snapshot for a (typically filtered)
// table. Regions with no record at the latest date are left out. An empty
// table yields an empty report.
func NewSnapshot(t *Table) *SnapshotReport {
	_, latest, ok := t.Bounds()
	if !ok {
		return &SnapshotReport{}
	}

	report := &SnapshotReport{Date: latest}
	yearAgo := latest.AddMonth(-YoYLookback)
	// per-region last value at or before yearAgo; records are sorted so the
	// last match wins.
	prev := make(map[string]float64)
	for _, r := range t.records {
		if !r.Date.After(yearAgo) {
			prev[r.Region] = r.Value
		}
	}

	for _, r := range t.records {
		if r.Date != latest {
			continue
		}
		entry := SnapshotEntry{Region: r.Region, Code: r.Code, Value: Dollars(r.Value)}
		if base, ok := prev[r.Region]; ok && base != 0 {
			yoy := Percent((r.Value - base) / base * 100)
			entry.YoY = &yoy
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}
