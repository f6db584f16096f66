package housing

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains functions to handle the import/export format.
// It should remain human readable and easy to feed to downstream tools.

// jrecord is the wire shape of one long-format row. The field names are the
// pipeline's output contract with the presentation layer.
type jrecord struct {
	Region string   `json:"region"`
	Date   Date     `json:"date"`
	Value  float64  `json:"median_home_value"`
	Code   string   `json:"region_code,omitempty"`
	YoY    *Percent `json:"yoy_change,omitempty"`
}

// ExportRecords exports the table to 'w' as JSONL, one JSON object per row,
// in (region, date) order. The region_code and yoy_change properties are
// present only on rows where the corresponding column has been computed.
func ExportRecords(w io.Writer, t *Table) error {
	for _, r := range t.records {
		data, err := json.Marshal(jrecord{
			Region: r.Region,
			Date:   r.Date,
			Value:  r.Value,
			Code:   r.Code,
			YoY:    r.YoY,
		})
		if err != nil {
			return fmt.Errorf("cannot marshal record for %q on %s: %w", r.Region, r.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write record format: %w", err)
		}
	}
	return nil
}

// ImportRecords imports a long table from 'r' in the JSONL export format.
// Blank lines are skipped. Rows are re-sorted by (region, date).
func ImportRecords(r io.Reader) (*Table, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jr jrecord
		if err := json.Unmarshal(line, &jr); err != nil {
			return nil, fmt.Errorf("cannot parse line for record import format: %q: %w", string(line), err)
		}
		records = append(records, Record{
			Region: jr.Region,
			Date:   jr.Date,
			Value:  jr.Value,
			Code:   jr.Code,
			YoY:    jr.YoY,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read record import format: %w", err)
	}
	sortRecords(records)
	return &Table{records: records}, nil
}

// ExportCSV exports the table to 'w' as long-format CSV. The region_code
// and yoy_change columns are emitted only when at least one row carries
// them; a nil yoy_change is an empty cell.
func ExportCSV(w io.Writer, t *Table) error {
	var hasCode, hasYoY bool
	for _, r := range t.records {
		hasCode = hasCode || r.Code != ""
		hasYoY = hasYoY || r.YoY != nil
	}

	header := []string{"region", "date", "median_home_value"}
	if hasCode {
		header = append(header, "region_code")
	}
	if hasYoY {
		header = append(header, "yoy_change")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, r := range t.records {
		row := []string{r.Region, r.Date.String(), strconv.FormatFloat(r.Value, 'f', -1, 64)}
		if hasCode {
			row = append(row, r.Code)
		}
		if hasYoY {
			cell := ""
			if r.YoY != nil {
				cell = strconv.FormatFloat(float64(*r.YoY), 'f', -1, 64)
			}
			row = append(row, cell)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv row for %q on %s: %w", r.Region, r.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
