package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/api"
	"github.com/urmzd/smarthome/pkg/config"
	"github.com/urmzd/smarthome/pkg/db"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/logging"

	_ "github.com/urmzd/smarthome/docs"
)

// @title           Smart Home API
// @version         1.0
// @description     REST API for the smart home device simulator

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	configPath := flag.String("config", "", "Path to YAML settings file")
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/smarthome/smarthome.db)")
	listen := flag.String("listen", "", "Listen address, overrides the stored API server")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		logging.Setup("info", os.Stderr)
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	logging.Setup(settings.LogLevel, os.Stderr)

	if *dbPath != "" {
		settings.DBPath = *dbPath
	}
	if *listen != "" {
		settings.Listen = *listen
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

	log.Info().Str("path", database.Path()).Msg("Database opened")

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

	log.Info().
		Str("profile", cfg.Profile.Name).
		Str("timezone", loc.String()).
		Strs("devices", cfg.Devices).
		Msg("Configuration loaded")

	router := api.NewRouter(h, schema.NewValidator(), loc)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	addr := settings.Address(cfg.APIAddress())
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
