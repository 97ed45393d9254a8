package championservice

import (
	"context"
	"fmt"
	"lolookup/api/cache"
	"lolookup/api/dto"
	"lolookup/api/filters"
	champrepo "lolookup/api/repositories/champion"
	"lolookup/fetcher/assets"
	"lolookup/pkg/apperror"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"lolookup/pkg/models/champion"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	championsKey      = "champions"
	championsTTL      = 30 * time.Minute
	defaultBatchDelay = 100 * time.Millisecond
)

// AssetClient reads the static champion data.
type AssetClient interface {
	GetLatestVersion(ctx context.Context) (string, error)
	GetChampions(ctx context.Context, version string, language string) ([]champion.Champion, error)
	DownloadImages(ctx context.Context, version string, c champion.Champion) (string, string)
}

// ChampionService keeps the champion catalog.
type ChampionService struct {
	ChampionRepository champrepo.ChampionRepository
	assets             AssetClient
	memCache           *cache.MemCache[[]models.Champion]
	language           string
	batchDelay         time.Duration
	logger             zerolog.Logger
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	DB         *gorm.DB
	Assets     AssetClient
	MemCache   *cache.MemCache[[]models.Champion]
	Language   string
	BatchDelay time.Duration
	Logger     zerolog.Logger
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	cs := &ChampionService{
		ChampionRepository: champrepo.NewChampionRepository(deps.DB),
		assets:             deps.Assets,
		memCache:           deps.MemCache,
		language:           deps.Language,
		batchDelay:         deps.BatchDelay,
		logger:             deps.Logger.With().Str("service", "champion").Logger(),
	}
	if cs.memCache == nil {
		cs.memCache = cache.NewMemCache[[]models.Champion](0)
	}
	if cs.language == "" {
		cs.language = "en_US"
	}
	if cs.batchDelay == 0 {
		cs.batchDelay = defaultBatchDelay
	}
	return cs
}

// GetChampions returns the stored catalog, loading it from the static data when empty or forced.
func (cs *ChampionService) GetChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionList, error) {
	if filter == nil || !filter.ForceUpdate {
		if champions, ok := cs.memCache.Get(championsKey); ok {
			return &dto.ChampionList{Success: true, Champions: champions, Message: messages.ChampionsFromDatabase}, nil
		}

		count, err := cs.ChampionRepository.Count(ctx)
		if err != nil {
			return nil, apperror.Internal(messages.FailedToFetchChampions, err)
		}

		if count > 0 {
			champions, err := cs.ChampionRepository.FindAll(ctx)
			if err != nil {
				return nil, apperror.Internal(messages.FailedToFetchChampions, err)
			}
			cs.memCache.Set(championsKey, champions, championsTTL)
			return &dto.ChampionList{Success: true, Champions: champions, Message: messages.ChampionsFromDatabase}, nil
		}
	}

	return cs.UpdateChampions(ctx)
}

// UpdateChampions loads the latest catalog, storing every champion and its images.
func (cs *ChampionService) UpdateChampions(ctx context.Context) (*dto.ChampionList, error) {
	version, err := cs.assets.GetLatestVersion(ctx)
	if err != nil {
		return nil, apperror.Upstream(messages.FailedToFetchChampions, err)
	}
	cs.logger.Info().Str("version", version).Msg("Using static data version")

	catalog, err := cs.assets.GetChampions(ctx, version, cs.language)
	if err != nil {
		return nil, apperror.Upstream(messages.FailedToFetchChampions, err)
	}
	cs.logger.Info().Int("count", len(catalog)).Msg("Found champions to process")

	processed := make([]models.Champion, 0, len(catalog))
	for start := 0; start < len(catalog); start += assets.BatchSize {
		end := min(start+assets.BatchSize, len(catalog))
		processed = append(processed, cs.processBatch(ctx, version, catalog[start:end])...)

		if end < len(catalog) {
			select {
			case <-ctx.Done():
				return nil, apperror.Internal(messages.FailedToFetchChampions, ctx.Err())
			case <-time.After(cs.batchDelay):
			}
		}
	}

	cs.memCache.Delete(championsKey)
	cs.logger.Info().Int("count", len(processed)).Msg("Champion catalog updated")

	return &dto.ChampionList{
		Success:   true,
		Champions: processed,
		Message:   fmt.Sprintf(messages.ChampionsUpdated, len(processed)),
		Version:   version,
	}, nil
}

// Process a batch concurrently, a failed champion is logged and skipped.
func (cs *ChampionService) processBatch(ctx context.Context, version string, batch []champion.Champion) []models.Champion {
	results := make([]*models.Champion, len(batch))

	var g errgroup.Group
	for i, c := range batch {
		g.Go(func() error {
			id, err := c.NumericId()
			if err != nil {
				cs.logger.Warn().Err(err).Str("champion", c.Name).Msg("Invalid champion key")
				return nil
			}

			thumbnail, splash := cs.assets.DownloadImages(ctx, version, c)
			entry := &models.Champion{
				ID:           id,
				Key:          c.Id,
				Name:         c.Name,
				Title:        c.Title,
				ThumbnailUrl: thumbnail,
				SplashUrl:    splash,
				Version:      version,
			}
			if err := cs.ChampionRepository.Upsert(ctx, entry); err != nil {
				cs.logger.Warn().Err(err).Str("champion", c.Name).Msg("Couldn't store champion")
				return nil
			}

			results[i] = entry
			return nil
		})
	}
	_ = g.Wait()

	processed := make([]models.Champion, 0, len(batch))
	for _, r := range results {
		if r != nil {
			processed = append(processed, *r)
		}
	}
	return processed
}

// GetChampion returns a single stored champion.
func (cs *ChampionService) GetChampion(ctx context.Context, filter *filters.GetChampionFilter) (*models.Champion, error) {
	if filter == nil || filter.ChampionId == 0 {
		return nil, apperror.InvalidInput(messages.ChampionIdRequired)
	}

	c, err := cs.ChampionRepository.FindById(ctx, filter.ChampionId)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchChampion, err)
	}
	if c == nil {
		return nil, apperror.NotFound(messages.ChampionNotFound)
	}

	return c, nil
}
