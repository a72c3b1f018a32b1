// Package downloader walks TBA events and writes one JSON line per match,
// building the data files the viewer loads.
package downloader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"

	"github.com/frcpath/zebraview/internal/pkg/storage"
	"github.com/frcpath/zebraview/internal/tba"
)

// DefaultMaxNoPathMatches is how many consecutive no-data matches are checked
// before an event that has produced no tracking data at all is skipped. Most
// events never ran the Zebra system; a handful of probes is enough to tell.
const DefaultMaxNoPathMatches = 5

// MatchSource is the slice of the TBA client the downloader uses.
type MatchSource interface {
	EventKeys(ctx context.Context, key string) ([]string, error)
	MatchKeys(ctx context.Context, eventKey string) ([]string, error)
	Zebra(ctx context.Context, matchKey string) (json.RawMessage, error)
	MatchScores(ctx context.Context, matchKey string) (json.RawMessage, error)
}

type Options struct {
	// MaxNoPathMatches overrides DefaultMaxNoPathMatches when positive.
	MaxNoPathMatches int

	// Archive, when set, additionally receives every written line.
	Archive storage.Archive
}

// Stats summarizes one download run.
type Stats struct {
	Events      int
	Lines       int
	PathMatches int
}

// line matches the data file format: zebra and score stay verbatim, and both
// serialize as null when absent.
type line struct {
	Event string          `json:"event"`
	Match string          `json:"match"`
	Zebra json.RawMessage `json:"zebra"`
	Score json.RawMessage `json:"score"`
}

// Run downloads tracking data for every event of a year or district key and
// writes the data file to w. Per-match HTTP failures are recorded as lines
// with null zebra, preserving the event's total match count; everything else
// aborts the run.
func Run(ctx context.Context, src MatchSource, key string, w io.Writer, opts Options) (Stats, error) {
	maxNoPath := opts.MaxNoPathMatches
	if maxNoPath <= 0 {
		maxNoPath = DefaultMaxNoPathMatches
	}

	eventKeys, err := src.EventKeys(ctx, key)
	if err != nil {
		return Stats{}, fmt.Errorf("downloader: list events for %s: %w", key, err)
	}

	var stats Stats
	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)

	for _, eventKey := range eventKeys {
		slog.Info("Processing event", "event", eventKey)
		stats.Events++

		matchKeys, err := src.MatchKeys(ctx, eventKey)
		if err != nil {
			return stats, fmt.Errorf("downloader: list matches for %s: %w", eventKey, err)
		}

		noPathStreak := 0
		hasPathData := false
		for _, matchKey := range matchKeys {
			l := line{Event: eventKey, Match: matchKey}

			zebra, score, err := fetchMatch(ctx, src, matchKey)
			switch {
			case err == nil:
				l.Zebra = zebra
				l.Score = score
				hasPathData = true
				noPathStreak = 0
				stats.PathMatches++
			case isNoData(err):
				noPathStreak++
			default:
				return stats, err
			}

			if err := writeLine(ctx, enc, opts.Archive, &l); err != nil {
				return stats, err
			}
			stats.Lines++

			if noPathStreak > maxNoPath && !hasPathData {
				slog.Info("No tracking data, skipping rest of event", "event", eventKey, "checked", noPathStreak)
				break
			}
		}
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("downloader: flush output: %w", err)
	}
	return stats, nil
}

func fetchMatch(ctx context.Context, src MatchSource, matchKey string) (json.RawMessage, json.RawMessage, error) {
	zebra, err := src.Zebra(ctx, matchKey)
	if err != nil {
		return nil, nil, err
	}
	score, err := src.MatchScores(ctx, matchKey)
	if err != nil {
		return nil, nil, err
	}
	return zebra, score, nil
}

// isNoData reports whether an error is a per-match HTTP failure, which is
// recorded as a null-zebra line rather than aborting the run.
func isNoData(err error) bool {
	if errors.Is(err, tba.ErrNoData) {
		return true
	}
	var statusErr *tba.StatusError
	return errors.As(err, &statusErr)
}

func writeLine(ctx context.Context, enc *json.Encoder, archive storage.Archive, l *line) error {
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("downloader: write line for %s: %w", l.Match, err)
	}
	if archive != nil {
		raw := &storage.RawLine{Event: l.Event, Match: l.Match, Zebra: l.Zebra, Score: l.Score}
		if err := archive.StoreLine(ctx, raw); err != nil {
			return fmt.Errorf("downloader: archive %s: %w", l.Match, err)
		}
	}
	return nil
}
