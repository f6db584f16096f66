package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"housing/renderer"
)

type regionsCmd struct{}

func (*regionsCmd) Name() string     { return "regions" }
func (*regionsCmd) Synopsis() string { return "lists the regions present in the dataset" }
func (*regionsCmd) Usage() string {
	return `hmd regions

  Lists the unique region names found in the dataset, with their short codes.
`
}

func (*regionsCmd) SetFlags(*flag.FlagSet) {}

func (c *regionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := loadTable()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RegionsMarkdown(t))
	return subcommands.ExitSuccess
}
