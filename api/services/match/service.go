package matchservice

import (
	"context"
	"lolookup/api/cache"
	"lolookup/api/converters"
	"lolookup/api/dto"
	"lolookup/api/filters"
	matchrepo "lolookup/api/repositories/match"
	playerrepo "lolookup/api/repositories/player"
	"lolookup/fetcher/data"
	"lolookup/fetcher/requests"
	"lolookup/pkg/apperror"
	"lolookup/pkg/config"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"lolookup/pkg/metrics"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Reasons a match is dropped from a batch.
const (
	dropRateLimited = "rate_limited"
	dropNotFound    = "not_found"
	dropProvider    = "provider"
	dropStore       = "store"
)

// MatchService serves the match history of a player.
type MatchService struct {
	PlayerRepository playerrepo.PlayerRepository
	MatchRepository  matchrepo.MatchRepository
	matchCache       cache.MatchCache
	provider         data.ProviderClient
	metrics          metrics.Metrics
	logger           zerolog.Logger
	freshness        time.Duration
	matchCount       int
	now              func() time.Time
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	DB         *gorm.DB
	MatchCache cache.MatchCache
	Provider   data.ProviderClient
	Metrics    metrics.Metrics
	Config     *config.Config
	Logger     zerolog.Logger
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	m := deps.Metrics
	if m == nil {
		m = metrics.Noop{}
	}

	matchCache := deps.MatchCache
	if matchCache == nil {
		matchCache = cache.NewMatchCache(nil, m)
	}

	return &MatchService{
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
		MatchRepository:  matchrepo.NewMatchRepository(deps.DB),
		matchCache:       matchCache,
		provider:         deps.Provider,
		metrics:          m,
		logger:           deps.Logger.With().Str("service", "match").Logger(),
		freshness:        deps.Config.Freshness.Matches,
		matchCount:       deps.Config.Freshness.MatchCount,
		now:              time.Now,
	}
}

// GetMatches returns the recent matches of a player, most recent first.
// The player must have been looked up before.
func (ms *MatchService) GetMatches(ctx context.Context, filter *filters.MatchHistoryFilter) ([]dto.Match, error) {
	if filter == nil {
		return nil, apperror.InvalidInput(messages.MatchParamsRequired)
	}

	player, err := ms.PlayerRepository.FindByPuuid(ctx, filter.Puuid)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchMatches, err)
	}
	if player == nil {
		return nil, apperror.NotFound(messages.PlayerNotFound)
	}

	now := ms.now()
	if player.MatchesFresh(now, ms.freshness) {
		return ms.getStoredMatches(ctx, player.ID)
	}

	matchIds, err := ms.provider.GetMatchIds(ctx, filter.Puuid, filter.Region, ms.matchCount)
	if err != nil {
		return nil, apperror.Upstream(messages.FailedToFetchMatches, err)
	}

	stored, err := ms.MatchRepository.FindByMatchIds(ctx, matchIds)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchMatches, err)
	}

	known := make(map[string]bool, len(stored))
	for _, m := range stored {
		known[m.MatchId] = true
	}

	missing := make([]string, 0, len(matchIds))
	for _, id := range matchIds {
		if !known[id] {
			missing = append(missing, id)
		}
	}

	fetched := ms.hydrateMatches(ctx, missing, filter.Region)

	if err := ms.PlayerRepository.SetMatchesFetched(ctx, player.ID, now); err != nil {
		ms.logger.Warn().Err(err).Uint("player_id", player.ID).Msg("Couldn't set the match fetch time")
	}

	matches := converters.ConvertMatches(append(stored, fetched...))
	for _, m := range matches {
		ms.cacheMatch(ctx, m)
	}
	sortByCreation(matches)

	return matches, nil
}

// Serve the match list from the cache and the database.
func (ms *MatchService) getStoredMatches(ctx context.Context, playerId uint) ([]dto.Match, error) {
	ids, err := ms.MatchRepository.FindRecentMatchIds(ctx, playerId, ms.matchCount)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchMatches, err)
	}

	cached, notFound, err := ms.matchCache.GetMatches(ctx, ids)
	if err != nil {
		ms.logger.Warn().Err(err).Msg("Match cache unavailable")
		cached, notFound = nil, ids
	}

	stored, err := ms.MatchRepository.FindByInternalIds(ctx, notFound)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchMatches, err)
	}

	matches := converters.ConvertMatches(stored)
	for _, m := range matches {
		ms.cacheMatch(ctx, m)
	}

	matches = append(cached, matches...)
	sortByCreation(matches)

	return matches, nil
}

// Fetch and store each match concurrently, failed matches are dropped.
func (ms *MatchService) hydrateMatches(ctx context.Context, matchIds []string, region string) []models.MatchInfo {
	results := make([]*models.MatchInfo, len(matchIds))

	var g errgroup.Group
	for i, matchId := range matchIds {
		g.Go(func() error {
			payload, err := ms.provider.GetMatch(ctx, matchId, region)
			if err != nil {
				ms.drop(matchId, dropReason(err), err)
				return nil
			}

			match, err := ms.MatchRepository.UpsertMatch(ctx, payload)
			if err != nil {
				ms.drop(matchId, dropStore, err)
				return nil
			}

			ms.metrics.IncMatchesIngested()
			results[i] = match
			return nil
		})
	}

	// Every goroutine returns nil, failures are only dropped.
	_ = g.Wait()

	matches := make([]models.MatchInfo, 0, len(results))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	return matches
}

func (ms *MatchService) drop(matchId string, reason string, err error) {
	ms.metrics.IncMatchesDropped(reason)
	ms.logger.Warn().
		Err(err).
		Str("match_id", matchId).
		Str("reason", reason).
		Msg("Dropping match")
}

func (ms *MatchService) cacheMatch(ctx context.Context, match dto.Match) {
	if err := ms.matchCache.SetMatch(ctx, match); err != nil {
		ms.logger.Debug().Err(err).Str("match_id", match.Metadata.MatchId).Msg("Couldn't cache match")
	}
}

func dropReason(err error) string {
	switch {
	case requests.IsRateLimited(err):
		return dropRateLimited
	case requests.IsNotFound(err):
		return dropNotFound
	default:
		return dropProvider
	}
}

func sortByCreation(matches []dto.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Info.GameCreation > matches[j].Info.GameCreation
	})
}
