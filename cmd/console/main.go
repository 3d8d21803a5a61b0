package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/config"
	"github.com/urmzd/smarthome/pkg/console"
	"github.com/urmzd/smarthome/pkg/db"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML settings file")
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/smarthome/smarthome.db)")
	flag.Parse()

	// Menus own stdout; diagnostics go to stderr.
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

	// The shell blocks on stdin, so interrupts exit directly.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	shell := console.New(h, os.Stdin, os.Stdout, console.WithLocation(loc))
	if err := shell.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Console stopped")
	}
}
