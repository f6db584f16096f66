package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"housing"
	"housing/renderer"
)

type snapshotCmd struct {
	regions string
	start   string
	end     string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "compares regions at the latest month" }
func (*snapshotCmd) Usage() string {
	return `hmd snapshot [-r <regions>] [-s <start_date>] [-e <end_date>]

  Displays each region's median home value at the latest month in the
  (optionally filtered) dataset, with its change versus one year earlier.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.regions, "r", "", "comma-separated region names to keep (default: all)")
	f.StringVar(&c.start, "s", "", "inclusive start date (default: open-ended)")
	f.StringVar(&c.end, "e", "", "inclusive end date (default: open-ended)")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, from, to, err := parseFilters(c.regions, c.start, c.end)
	if err != nil {
		return fail(err)
	}

	t, err := loadTable()
	if err != nil {
		return fail(err)
	}

	subset := housing.AddRegionCodes(t.Filter(names, from, to))
	printMarkdown(renderer.SnapshotMarkdown(housing.NewSnapshot(subset)))
	return subcommands.ExitSuccess
}
