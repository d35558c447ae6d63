package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/cutroom/roughcut/config"
	"github.com/cutroom/roughcut/internal/catalog"
	"github.com/cutroom/roughcut/internal/export"
	"github.com/cutroom/roughcut/internal/server"
	"github.com/cutroom/roughcut/internal/storage"
	"github.com/cutroom/roughcut/internal/store"
)

func main() {
	port := flag.String("port", "", "Server port (overrides config)")
	configPath := flag.String("config", "./config/config.yaml", "Path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	timelineStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open timeline store", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer timelineStore.Close()

	assetCatalog, err := catalog.NewSQLiteCatalog(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open asset catalog", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer assetCatalog.Close()

	exportStorage, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		slog.Error("Failed to create export storage", "type", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, timelineStore, assetCatalog, export.New(exportStorage))

	if *port == "" {
		*port = cfg.Server.Port
	}

	slog.Info("Starting roughcut API server", "port", *port, "storage", cfg.Storage.Type)
	if err := srv.Start(*port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
