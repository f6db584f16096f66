package housing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/shopspring/decimal"
)

// IdentifierColumn is the header of the column holding the region display
// name in the raw wide-format CSV. When absent, the first column is used.
const IdentifierColumn = "RegionName"

// dateColumnRE recognizes date columns by their naming convention: a header
// starting with a 4-digit year. Any other column is metadata and is excluded
// from the reshape.
var dateColumnRE = regexp.MustCompile(`^\d{4}-`)

// LoadFile reads the raw wide-format CSV at path and reshapes it into a long
// table. A missing file is reported as ErrSourceNotFound, distinguishable
// from parse errors, so the caller can direct the user to the fetch step.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("cannot open housing data file %q: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load housing data file %q: %w", path, err)
	}
	return t, nil
}

// Load reshapes a raw wide-format table (one row per region, one column per
// month) into a long-format table with one row per (region, month).
//
// Cells with a missing or unparseable value are dropped: in the source,
// missing means "not reported", not zero. Negative values are dropped for
// the same reason. The resulting table is sorted by (region, date) and
// contains no duplicate (region, date) pairs.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	idCol := 0
	for i, name := range header {
		if name == IdentifierColumn {
			idCol = i
			break
		}
	}

	// Date columns are identified by name; their parsed dates are resolved
	// once, before any row is read.
	type dateColumn struct {
		index int
		date  Date
	}
	var dateCols []dateColumn
	for i, name := range header {
		if i == idCol || !dateColumnRE.MatchString(name) {
			continue
		}
		d, err := ParseDate(name)
		if err != nil {
			return nil, &MalformedDateError{Column: name, Err: err}
		}
		dateCols = append(dateCols, dateColumn{index: i, date: d})
	}

	var records []Record
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read row at line %d: %w", line, err)
		}

		region := row[idCol]
		if region == "" {
			return nil, fmt.Errorf("empty region name at line %d", line)
		}
		if seen[region] {
			return nil, fmt.Errorf("duplicate region %q at line %d", region, line)
		}
		seen[region] = true

		for _, col := range dateCols {
			cell := row[col.index]
			if cell == "" {
				continue // not reported
			}
			value, err := decimal.NewFromString(cell)
			if err != nil || value.IsNegative() {
				continue // unparseable or negative cells mean "not reported"
			}
			records = append(records, Record{
				Region: region,
				Date:   col.date,
				Value:  value.InexactFloat64(),
			})
		}
	}

	sortRecords(records)
	return &Table{records: records}, nil
}
