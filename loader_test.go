package housing

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Reshape(t *testing.T) {
	// A synthetic wide table with two regions and two month columns must
	// produce exactly 4 long rows with correct (region, date, value) triples.
	raw := "RegionName,2020-01-31,2020-02-29\n" +
		"Beta,200,201\n" +
		"Alpha,100,101\n"

	table, err := Load(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := []Record{
		{Region: "Alpha", Date: NewDate(2020, 1, 31), Value: 100},
		{Region: "Alpha", Date: NewDate(2020, 2, 29), Value: 101},
		{Region: "Beta", Date: NewDate(2020, 1, 31), Value: 200},
		{Region: "Beta", Date: NewDate(2020, 2, 29), Value: 201},
	}
	got := table.Rows()
	if len(got) != len(want) {
		t.Fatalf("Load() produced %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoad_DropsMissingValues(t *testing.T) {
	raw := "RegionName,2020-01-31,2020-02-29,2020-03-31\n" +
		"Alpha,100,,n/a\n"

	table, err := Load(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Load() produced %d rows, want 1 (missing and unparseable cells dropped)", table.Len())
	}
	for r := range table.All() {
		if r.Value != 100 {
			t.Errorf("surviving row = %+v, want value 100", r)
		}
	}
}

func TestLoad_ExcludesMetadataColumns(t *testing.T) {
	// Only the identifier and date-named columns take part in the reshape.
	raw := "RegionID,SizeRank,RegionName,RegionType,2020-01-31\n" +
		"9,0,California,state,500000\n"

	table, err := Load(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Load() produced %d rows, want 1", table.Len())
	}
	r := table.Rows()[0]
	if r.Region != "California" || r.Value != 500000 {
		t.Errorf("row = %+v, want region California value 500000", r)
	}
}

func TestLoad_NoDuplicatePairsNoMissing(t *testing.T) {
	raw := "RegionName,2020-01-31,2020-02-29,2020-03-31\n" +
		"Alpha,100,,102\n" +
		"Beta,,201,202\n" +
		"Gamma,300,301,\n"

	table, err := Load(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for r := range table.All() {
		key := r.Region + "/" + r.Date.String()
		if seen[key] {
			t.Errorf("duplicate (region, date) pair %s", key)
		}
		seen[key] = true
	}
	if table.Len() != 6 {
		t.Errorf("Load() produced %d rows, want 6", table.Len())
	}
}

func TestLoad_MalformedDateColumn(t *testing.T) {
	raw := "RegionName,2020-99-99\nAlpha,100\n"

	_, err := Load(strings.NewReader(raw))
	var malformed *MalformedDateError
	if !errors.As(err, &malformed) {
		t.Fatalf("Load() error = %v, want *MalformedDateError", err)
	}
	if malformed.Column != "2020-99-99" {
		t.Errorf("MalformedDateError.Column = %q, want the offending column name", malformed.Column)
	}
}

func TestLoad_DuplicateRegion(t *testing.T) {
	raw := "RegionName,2020-01-31\nAlpha,100\nAlpha,101\n"

	if _, err := Load(strings.NewReader(raw)); err == nil {
		t.Fatal("Load() expected an error for a duplicate region row")
	}
}

func TestLoad_EmptyRegionName(t *testing.T) {
	raw := "RegionName,2020-01-31\n,100\n"

	if _, err := Load(strings.NewReader(raw)); err == nil {
		t.Fatal("Load() expected an error for an empty region name")
	}
}

func TestLoadFile_SourceNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("LoadFile() error = %v, want ErrSourceNotFound", err)
	}
	// A parse error must stay distinguishable from a missing source.
	var malformed *MalformedDateError
	if errors.As(err, &malformed) {
		t.Error("LoadFile() missing file must not be a MalformedDateError")
	}
}
