package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"housing/zillow"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "downloads the raw index CSV from Zillow Research" }
func (*fetchCmd) Usage() string {
	return `hmd fetch

  Downloads the Zillow Home Value Index (ZHVI) by-state CSV and saves it to
  the data file location (see the global -data-file flag).

  The source URL and HTTP timeout can be overridden with the ZILLOW_URL and
  ZILLOW_TIMEOUT environment variables.
`
}

func (*fetchCmd) SetFlags(*flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := zillow.ConfigFromEnv()
	if err != nil {
		return fail(err)
	}
	if err := cfg.Fetch(*dataFile); err != nil {
		return fail(err)
	}
	fmt.Printf("Successfully downloaded index data to %s\n", *dataFile)
	return subcommands.ExitSuccess
}
