// validate-data loads a downloaded data file through the full parser and
// prints the per-event summary, failing on the first malformed line.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/frcpath/zebraview/internal/pkg/zebra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "validate-data: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "", "JSONL data file to validate")
	flag.Parse()

	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	c, err := zebra.Load(*file)
	if err != nil {
		return err
	}

	summary := c.EventSummary()
	events := make([]string, 0, len(summary))
	for e := range summary {
		events = append(events, e)
	}
	sort.Strings(events)

	fmt.Printf("%-12s %12s %12s\n", "event", "path", "total")
	for _, e := range events {
		s := summary[e]
		fmt.Printf("%-12s %12d %12d\n", e, s.PathMatches, s.Total)
	}
	fmt.Printf("\n%d matches with tracking data across %d events\n", c.Len(), len(c.Events()))
	return nil
}
