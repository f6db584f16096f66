// Package cmd implements the CLI application to explore housing market trends.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"housing"
)

// Commands lists the subcommands of the application.
// A main package registers each of them and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&regionsCmd{},
	&trendCmd{},
	&snapshotCmd{},
	&yoyCmd{},
	&exportCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", "data/zhvi_by_state.csv", "Path to the raw wide-format index CSV")

// loader memoizes the load for the (fixed) data file across subcommand steps.
var loader *housing.Loader

// loadTable loads the long table from the app data file, mapping a missing
// file to the instruction to run the fetch step first.
func loadTable() (*housing.Table, error) {
	if loader == nil {
		loader = housing.NewLoader(*dataFile)
	}
	t, err := loader.Table()
	if errors.Is(err, housing.ErrSourceNotFound) {
		return nil, fmt.Errorf("%w\nRun 'hmd fetch' first to download it", err)
	}
	return t, err
}

// parseFilters turns the common -r/-s/-e flag values into Filter arguments.
func parseFilters(regions string, start, end string) (names []string, from, to housing.Date, err error) {
	if regions != "" {
		names = splitRegions(regions)
	}
	if start != "" {
		from, err = housing.ParseDate(start)
		if err != nil {
			return nil, housing.Date{}, housing.Date{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		to, err = housing.ParseDate(end)
		if err != nil {
			return nil, housing.Date{}, housing.Date{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return names, from, to, nil
}

// splitRegions parses a comma-separated list of region names.
func splitRegions(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
