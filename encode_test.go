package housing

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportRecords_RoundTrip(t *testing.T) {
	table := AddRegionCodes(AddYoYChange(mergeTables(
		monthlyTable("California", NewDate(2020, 1, 1),
			100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112),
		monthlyTable("Atlantis", NewDate(2020, 1, 1), 1, 2),
	)))

	var buf bytes.Buffer
	if err := ExportRecords(&buf, table); err != nil {
		t.Fatalf("ExportRecords() unexpected error: %v", err)
	}

	got, err := ImportRecords(&buf)
	if err != nil {
		t.Fatalf("ImportRecords() unexpected error: %v", err)
	}
	if !got.Equal(table) {
		t.Error("round-tripped table differs from the original")
	}
}

func TestExportRecords_ColumnContract(t *testing.T) {
	table := monthlyTable("New Jersey", NewDate(2020, 1, 1), 400000)

	var buf bytes.Buffer
	if err := ExportRecords(&buf, table); err != nil {
		t.Fatalf("ExportRecords() unexpected error: %v", err)
	}
	line := strings.TrimSpace(buf.String())

	want := `{"region":"New Jersey","date":"2020-01-01","median_home_value":400000}`
	if line != want {
		t.Errorf("ExportRecords() line = %s, want %s", line, want)
	}
}

func TestImportRecords_SkipsBlankLinesAndSorts(t *testing.T) {
	in := `{"region":"Beta","date":"2020-01-31","median_home_value":2}

{"region":"Alpha","date":"2020-01-31","median_home_value":1}
`
	got, err := ImportRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportRecords() unexpected error: %v", err)
	}
	rows := got.Rows()
	if len(rows) != 2 || rows[0].Region != "Alpha" || rows[1].Region != "Beta" {
		t.Errorf("ImportRecords() rows = %+v, want Alpha then Beta", rows)
	}
}

func TestImportRecords_RejectsGarbage(t *testing.T) {
	if _, err := ImportRecords(strings.NewReader("not json\n")); err == nil {
		t.Fatal("ImportRecords() expected an error for a malformed line")
	}
}

func TestExportCSV(t *testing.T) {
	t.Run("base columns only", func(t *testing.T) {
		table := monthlyTable("Alpha", NewDate(2020, 1, 1), 100)
		var buf bytes.Buffer
		if err := ExportCSV(&buf, table); err != nil {
			t.Fatalf("ExportCSV() unexpected error: %v", err)
		}
		want := "region,date,median_home_value\nAlpha,2020-01-01,100\n"
		if buf.String() != want {
			t.Errorf("ExportCSV() = %q, want %q", buf.String(), want)
		}
	})

	t.Run("on-demand columns", func(t *testing.T) {
		table := AddRegionCodes(AddYoYChange(monthlyTable("Texas", NewDate(2020, 1, 1),
			100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 110)))
		var buf bytes.Buffer
		if err := ExportCSV(&buf, table); err != nil {
			t.Fatalf("ExportCSV() unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if lines[0] != "region,date,median_home_value,region_code,yoy_change" {
			t.Errorf("header = %q, want all five columns", lines[0])
		}
		if len(lines) != 14 {
			t.Fatalf("ExportCSV() wrote %d lines, want 14", len(lines))
		}
		// The first row has no comparison point: empty yoy_change cell.
		if !strings.HasSuffix(lines[1], ",TX,") {
			t.Errorf("first row = %q, want a TX code and an empty yoy_change", lines[1])
		}
		if !strings.HasSuffix(lines[13], ",TX,10") {
			t.Errorf("last row = %q, want a 10 yoy_change", lines[13])
		}
	})
}
