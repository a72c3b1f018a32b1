package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/frcpath/zebraview/internal/pkg/config"
	"github.com/frcpath/zebraview/internal/pkg/field"
	"github.com/frcpath/zebraview/internal/pkg/logging"
	"github.com/frcpath/zebraview/internal/pkg/zebra"
	"github.com/frcpath/zebraview/internal/viewer"
)

const defaultConfigPath = "configs/viewer.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("Viewer failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	dataFile := flag.String("data", "", "Data file override (JSONL match data)")
	addr := flag.String("addr", "", "Listen address override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "viewer")

	if *dataFile != "" {
		cfg.Viewer.DataFile = *dataFile
	}
	if *addr != "" {
		cfg.Viewer.Addr = *addr
	}
	if cfg.Viewer.DataFile == "" {
		return fmt.Errorf("no data file: set viewer.data_file in config or pass -data")
	}

	slog.Info("Loading match data", "file", cfg.Viewer.DataFile)
	data, err := zebra.Load(cfg.Viewer.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load match data: %w", err)
	}
	slog.Info("Match data loaded", "matches", data.Len(), "events", len(data.Events()))

	var fld *field.Field
	if cfg.Viewer.FieldFile != "" {
		if fld, err = field.Read(cfg.Viewer.FieldFile); err != nil {
			return fmt.Errorf("failed to load field file: %w", err)
		}
	}

	var events map[string]viewer.EventInfo
	if cfg.Viewer.EventsFile != "" {
		if events, err = viewer.ReadEventsFile(cfg.Viewer.EventsFile); err != nil {
			return fmt.Errorf("failed to load events file: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := viewer.NewServer(data, fld, events)
	return viewer.Run(ctx, &cfg.Viewer, srv)
}
