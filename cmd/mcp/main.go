package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/config"
	"github.com/urmzd/smarthome/pkg/db"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/logging"
	smarthomemcp "github.com/urmzd/smarthome/pkg/mcp"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML settings file")
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/smarthome/smarthome.db)")
	flag.Parse()

	// Logging must go to stderr, stdout is the MCP transport
	settings, err := config.Load(*configPath)
	if err != nil {
		logging.Setup("info", os.Stderr)
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	logging.Setup(settings.LogLevel, os.Stderr)

	if *dbPath != "" {
		settings.DBPath = *dbPath
	}

	ctx := context.Background()

	database, err := db.Open(settings.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	cfg, err := database.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	loc, err := settings.Location(cfg.Location())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve timezone")
	}

	h, err := hub.FromKinds(cfg.Devices)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build device hub")
	}

	mcpServer := smarthomemcp.NewServer(h, schema.NewValidator(), loc)

	log.Info().Int("devices", h.Len()).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
