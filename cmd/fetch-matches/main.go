package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/frcpath/zebraview/internal/downloader"
	"github.com/frcpath/zebraview/internal/pkg/config"
	"github.com/frcpath/zebraview/internal/pkg/logging"
	"github.com/frcpath/zebraview/internal/pkg/storage"
	"github.com/frcpath/zebraview/internal/tba"
)

const defaultConfigPath = "configs/viewer.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("Fetch failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	key := flag.String("key", "", "TBA district key or 4-digit year")
	output := flag.String("output", "", "Output JSONL file")
	maxNoPath := flag.Int("max-no-path-matches", downloader.DefaultMaxNoPathMatches,
		"Matches checked for path data before skipping an event")
	archive := flag.Bool("archive", false, "Also store downloaded matches in postgres")
	flag.Parse()

	if *key == "" || *output == "" {
		return fmt.Errorf("both -key and -output are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "fetch-matches")

	opts := downloader.Options{MaxNoPathMatches: *maxNoPath}
	if *archive {
		pg, err := storage.NewPostgresArchive(&cfg.Postgres)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer pg.Close()
		opts.Archive = pg
	}

	out, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Downloading match data", "key", *key, "output", *output)
	stats, err := downloader.Run(ctx, tba.New(&cfg.TBA), *key, out, opts)
	if err != nil {
		return err
	}

	slog.Info("Download complete",
		"events", stats.Events, "lines", stats.Lines, "path_matches", stats.PathMatches)
	return nil
}
