// filter-event copies all matches of one event that carry tracking data from
// a downloaded data file into a smaller one, handy for sharing or testing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "filter-event: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	eventKey := flag.String("event", "", "TBA event key to keep")
	input := flag.String("input", "", "Input JSONL data file")
	output := flag.String("output", "", "Output JSONL data file")
	flag.Parse()

	if *eventKey == "" || *input == "" || *output == "" {
		return fmt.Errorf("-event, -input and -output are required")
	}

	in, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	fmt.Printf("Scanning %s for data matching %s\n", *input, *eventKey)

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	written := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		var probe struct {
			Event string          `json:"event"`
			Zebra json.RawMessage `json:"zebra"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &probe); err != nil {
			return fmt.Errorf("line %d: invalid JSON: %w", lineNo, err)
		}
		if probe.Event != *eventKey || string(probe.Zebra) == "null" || probe.Zebra == nil {
			continue
		}
		if _, err := w.Write(scanner.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	fmt.Printf("Wrote %d lines to %s\n", written, *output)
	return nil
}
