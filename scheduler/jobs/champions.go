package jobs

import (
	"context"
	"fmt"
	"lolookup/api/dto"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

const (
	ChampionJobName = "champion-revalidation"
	championJobTag  = "champions"

	// The static data is published at most once a day.
	revalidateHour = 4
	jobTimeout     = 10 * time.Minute
)

// ChampionUpdater reloads the champion catalog.
type ChampionUpdater interface {
	UpdateChampions(ctx context.Context) (*dto.ChampionList, error)
}

// RevalidateChampions reloads the catalog once, logging the outcome.
func RevalidateChampions(ctx context.Context, updater ChampionUpdater, logger zerolog.Logger) error {
	logger.Info().Msg("Starting champion catalog revalidation")

	result, err := updater.UpdateChampions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Champion catalog revalidation failed")
		return fmt.Errorf("couldn't revalidate the champion catalog: %w", err)
	}

	logger.Info().
		Str("version", result.Version).
		Int("count", len(result.Champions)).
		Msg("Champion catalog revalidation completed")
	return nil
}

// RegisterChampionJob schedules the revalidation daily, running it once at start.
func RegisterChampionJob(s gocron.Scheduler, updater ChampionUpdater, logger zerolog.Logger) (gocron.Job, error) {
	task := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		return RevalidateChampions(ctx, updater, logger)
	}

	job, err := s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(revalidateHour, 0, 0),
			),
		),
		gocron.NewTask(task),
		gocron.WithName(ChampionJobName),
		gocron.WithTags(championJobTag),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create the champion job: %w", err)
	}
	return job, nil
}
