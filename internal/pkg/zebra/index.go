package zebra

import (
	"bufio"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Data file lines carry twelve full coordinate arrays each, so they run far
// past bufio's default token size.
const maxLineBytes = 16 * 1024 * 1024

// EventSummary counts, for one event, how many match lines were seen in the
// data file and how many of them carried tracking data.
type EventSummary struct {
	PathMatches int `json:"path_matches"`
	Total       int `json:"total_matches"`
}

// Competitions is an in-memory index of the matches in one zebra data file.
// It is built once by Load and read-only afterwards.
type Competitions struct {
	matches []*Match
	byKey   map[string]int
	events  []string
	summary map[string]EventSummary
}

// Load reads a newline-delimited JSON data file and builds a Competitions
// index. Lines with a null zebra field count toward the event summary but are
// not parsed into matches. Load fails on the first malformed line or record.
func Load(path string) (*Competitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zebra: open data file: %w", err)
	}
	defer f.Close()

	c := &Competitions{
		byKey:   make(map[string]int),
		summary: make(map[string]EventSummary),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		var raw RawMatch
		if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
			return nil, &FormatError{Line: lineNo, Err: err}
		}

		s := c.summary[raw.Event]
		s.Total++
		if raw.Zebra != nil {
			s.PathMatches++
		}
		c.summary[raw.Event] = s

		if raw.Zebra == nil {
			continue
		}
		m, err := ParseMatch(&raw)
		if err != nil {
			return nil, fmt.Errorf("zebra: line %d: %w", lineNo, err)
		}
		if !containsString(c.events, m.Event) {
			c.events = append(c.events, m.Event)
		}
		c.byKey[m.Key] = len(c.matches)
		c.matches = append(c.matches, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("zebra: read data file: %w", err)
	}

	if len(c.matches) == 0 {
		return nil, ErrEmptyDataset
	}
	return c, nil
}

// Len returns the number of matches with tracking data.
func (c *Competitions) Len() int { return len(c.matches) }

// Get returns the match for a TBA match key.
func (c *Competitions) Get(key string) (*Match, error) {
	idx, ok := c.byKey[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return c.matches[idx], nil
}

// At returns the match at a position in file order.
func (c *Competitions) At(i int) (*Match, error) {
	if i < 0 || i >= len(c.matches) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.matches))
	}
	return c.matches[i], nil
}

// Matches returns the match keys of one event, in file order. Display
// ordering (numeric match-number sort) is left to the caller.
func (c *Competitions) Matches(event string) []string {
	var keys []string
	for _, m := range c.matches {
		if m.Event == event {
			keys = append(keys, m.Key)
		}
	}
	return keys
}

// Events returns the distinct event keys of the indexed matches, in the order
// they first appear in the data file.
func (c *Competitions) Events() []string {
	return append([]string{}, c.events...)
}

// EventSummary returns the per-event line counts, covering every line of the
// source file including those without tracking data.
func (c *Competitions) EventSummary() map[string]EventSummary {
	out := make(map[string]EventSummary, len(c.summary))
	for k, v := range c.summary {
		out[k] = v
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
