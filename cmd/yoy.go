package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"housing"
	"housing/renderer"
)

type yoyCmd struct {
	regions string
	start   string
	end     string
}

func (*yoyCmd) Name() string     { return "yoy" }
func (*yoyCmd) Synopsis() string { return "displays year-over-year price changes" }
func (*yoyCmd) Usage() string {
	return `hmd yoy [-r <regions>] [-s <start_date>] [-e <end_date>]

  Displays each region's trailing 12-month percentage change per month.
  The change is computed on the full per-region history, then the result is
  restricted to the requested date range, so the first displayed months are
  not blank just because they open the range.
`
}

func (c *yoyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.regions, "r", "", "comma-separated region names to keep (default: all)")
	f.StringVar(&c.start, "s", "", "inclusive start date (default: open-ended)")
	f.StringVar(&c.end, "e", "", "inclusive end date (default: open-ended)")
}

func (c *yoyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, from, to, err := parseFilters(c.regions, c.start, c.end)
	if err != nil {
		return fail(err)
	}

	t, err := loadTable()
	if err != nil {
		return fail(err)
	}

	// Compute on the full history of the selected regions first: filtering
	// dates before the computation would shift every comparison point.
	enriched := housing.AddYoYChange(t.Filter(names, housing.Date{}, housing.Date{}))
	printMarkdown(renderer.YoYMarkdown(enriched.Filter(nil, from, to)))
	return subcommands.ExitSuccess
}
