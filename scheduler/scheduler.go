package main

import (
	championservice "lolookup/api/services/champion"
	"lolookup/fetcher/assets"
	"lolookup/pkg/config"
	"lolookup/pkg/database"
	"lolookup/pkg/logger"
	"lolookup/pkg/storage"
	"lolookup/scheduler/jobs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}
	log := logger.New(cfg.LogLevel).With().Str("component", "scheduler").Logger()

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't connect to the database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Couldn't migrate the database")
	}

	championService := championservice.NewChampionService(&championservice.ChampionServiceDeps{
		DB: db,
		Assets: assets.NewAssetFetcher(&assets.AssetFetcherDeps{
			Store:  storage.NewImageStore(cfg),
			Logger: log,
		}),
		Language: cfg.Language,
		Logger:   log,
	})

	s, err := newScheduler(championService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	log.Info().Msg("Starting scheduler")
	s.Start()

	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Error shutting down scheduler")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down scheduler")
}

// Builds the UTC scheduler with every job registered, not yet started.
func newScheduler(updater jobs.ChampionUpdater, log zerolog.Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	if _, err := jobs.RegisterChampionJob(s, updater, log); err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return s, nil
}
