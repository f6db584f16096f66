package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"housing"
)

type exportCmd struct {
	regions string
	start   string
	end     string
	format  string
	output  string
	codes   bool
	yoy     bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exports the long-format table" }
func (*exportCmd) Usage() string {
	return `hmd export [-format jsonl|csv] [-o <file>] [-codes] [-yoy] [-r <regions>] [-s <start_date>] [-e <end_date>]

  Exports the (optionally filtered) long-format table with columns region,
  date and median_home_value. The -codes and -yoy flags add the region_code
  and yoy_change columns on demand.

Usage Examples:
# Full dataset with region codes as JSONL on stdout.
$ hmd export -codes

# One state with year-over-year changes, as CSV.
$ hmd export -format csv -yoy -r "New Jersey" -o nj.csv

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "jsonl", "output format: jsonl or csv")
	f.StringVar(&c.output, "o", "", "output file (default: stdout)")
	f.BoolVar(&c.codes, "codes", false, "add the region_code column")
	f.BoolVar(&c.yoy, "yoy", false, "add the yoy_change column")
	f.StringVar(&c.regions, "r", "", "comma-separated region names to keep (default: all)")
	f.StringVar(&c.start, "s", "", "inclusive start date (default: open-ended)")
	f.StringVar(&c.end, "e", "", "inclusive end date (default: open-ended)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "jsonl" && c.format != "csv" {
		fmt.Fprintf(os.Stderr, "unknown format %q, want jsonl or csv\n", c.format)
		return subcommands.ExitUsageError
	}

	names, from, to, err := parseFilters(c.regions, c.start, c.end)
	if err != nil {
		return fail(err)
	}

	t, err := loadTable()
	if err != nil {
		return fail(err)
	}

	out := t.Filter(names, housing.Date{}, housing.Date{})
	if c.yoy {
		out = housing.AddYoYChange(out)
	}
	out = out.Filter(nil, from, to)
	if c.codes {
		out = housing.AddRegionCodes(out)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail(fmt.Errorf("cannot create output file: %w", err))
		}
		defer file.Close()
		w = file
	}

	if c.format == "csv" {
		err = housing.ExportCSV(w, out)
	} else {
		err = housing.ExportRecords(w, out)
	}
	if err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Printf("Successfully exported %d rows to %s\n", out.Len(), c.output)
	}
	return subcommands.ExitSuccess
}
