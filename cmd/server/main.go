package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/mpendle/fitstore/internal/api"
	"github.com/mpendle/fitstore/internal/config"
	"github.com/mpendle/fitstore/internal/database"
	"github.com/mpendle/fitstore/internal/handler"
	"github.com/mpendle/fitstore/internal/repository"
	"github.com/mpendle/fitstore/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		log = log.Level(level)
	}

	db, err := database.Open(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to open datastore")
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("datastore opened")

	statRepo := repository.NewStatisticRepository(db)
	actRepo := repository.NewActivityRepository(db)
	monRepo := repository.NewMonitorRepository(db)

	resolver := service.NewResolverService(statRepo)
	journal := service.NewJournalService(statRepo, resolver)
	quartile := service.NewQuartileService(statRepo)
	activity := service.NewActivityService(actRepo)
	monitor := service.NewMonitorService(monRepo)

	router := api.SetupRouter(cfg, log,
		handler.NewStatisticHandler(resolver, journal, quartile),
		handler.NewActivityHandler(activity),
		handler.NewMonitorHandler(monitor),
	)

	log.Info().Str("addr", cfg.Server.Addr).Msg("server starting")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
