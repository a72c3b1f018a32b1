package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/frcpath/zebraview/internal/pkg/config"
)

var _ Archive = (*PostgresArchive)(nil)

// PostgresArchive keeps one row per downloaded match, updated on re-download.
type PostgresArchive struct {
	db *sql.DB
}

func NewPostgresArchive(cfg *config.PostgresConfig) (*PostgresArchive, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	a := &PostgresArchive{db: db}
	if err := a.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL match archive initialized")
	return a, nil
}

func (a *PostgresArchive) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS zebra_matches (
		match_key VARCHAR(100) PRIMARY KEY,
		event_key VARCHAR(100) NOT NULL,
		zebra JSONB,
		score JSONB,
		downloaded_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_zebra_matches_event ON zebra_matches(event_key);
	`
	_, err := a.db.ExecContext(ctx, query)
	return err
}

func (a *PostgresArchive) StoreLine(ctx context.Context, line *RawLine) error {
	query := `
	INSERT INTO zebra_matches (match_key, event_key, zebra, score, downloaded_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (match_key) DO UPDATE SET
		event_key = EXCLUDED.event_key,
		zebra = EXCLUDED.zebra,
		score = EXCLUDED.score,
		downloaded_at = EXCLUDED.downloaded_at
	`
	var zebra, score interface{}
	if line.Zebra != nil {
		zebra = string(line.Zebra)
	}
	if line.Score != nil {
		score = string(line.Score)
	}
	if _, err := a.db.ExecContext(ctx, query, line.Match, line.Event, zebra, score); err != nil {
		return fmt.Errorf("failed to store match %s: %w", line.Match, err)
	}
	return nil
}

func (a *PostgresArchive) EventCounts(ctx context.Context) (map[string]EventCount, error) {
	query := `
	SELECT event_key, COUNT(*), COUNT(zebra)
	FROM zebra_matches
	GROUP BY event_key
	`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]EventCount)
	for rows.Next() {
		var event string
		var c EventCount
		if err := rows.Scan(&event, &c.Total, &c.PathMatches); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[event] = c
	}
	return counts, rows.Err()
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
