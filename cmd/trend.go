package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"housing/renderer"
)

type trendCmd struct {
	regions string
	start   string
	end     string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "displays median home values over time" }
func (*trendCmd) Usage() string {
	return `hmd trend [-r <regions>] [-s <start_date>] [-e <end_date>]

  Displays the median home value per region and month, optionally
  restricted to a comma-separated list of regions and an inclusive date
  range.

Usage Examples:
# Values for two states since 2020.
$ hmd trend -r "New Jersey,California" -s 2020-01-01

`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.regions, "r", "", "comma-separated region names to keep (default: all)")
	f.StringVar(&c.start, "s", "", "inclusive start date (default: open-ended)")
	f.StringVar(&c.end, "e", "", "inclusive end date (default: open-ended)")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, from, to, err := parseFilters(c.regions, c.start, c.end)
	if err != nil {
		return fail(err)
	}

	t, err := loadTable()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.TrendMarkdown(t.Filter(names, from, to)))
	return subcommands.ExitSuccess
}
