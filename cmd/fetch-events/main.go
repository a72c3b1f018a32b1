package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/frcpath/zebraview/internal/pkg/config"
	"github.com/frcpath/zebraview/internal/pkg/logging"
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
	output := flag.String("output", "", "Output JSON file")
	flag.Parse()

	if *key == "" || *output == "" {
		return fmt.Errorf("both -key and -output are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "fetch-events")

	slog.Info("Downloading events", "key", *key)
	events, err := tba.New(&cfg.TBA).Events(context.Background(), *key)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	var pretty json.RawMessage = events
	data, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format events: %w", err)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	slog.Info("Events saved", "output", *output, "bytes", len(data))
	return nil
}
