package storage

import (
	"context"
)

// RawLine is one downloaded match record, exactly as written to the data
// file. Zebra is nil when TBA had no tracking data for the match.
type RawLine struct {
	Event string
	Match string
	Zebra []byte
	Score []byte
}

// EventCount mirrors the per-event summary of the in-memory index, computed
// over archived rows.
type EventCount struct {
	PathMatches int
	Total       int
}

// Archive stores downloaded raw match lines for later re-export or auditing.
type Archive interface {
	// StoreLine upserts one raw match line keyed by match key.
	StoreLine(ctx context.Context, line *RawLine) error

	// EventCounts returns per-event totals over all archived matches.
	EventCounts(ctx context.Context) (map[string]EventCount, error)

	// Close closes the database connection.
	Close() error
}
