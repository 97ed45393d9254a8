package cache

import (
	"context"
	"fmt"
	"lolookup/api/dto"
	"lolookup/pkg/metrics"
	"lolookup/pkg/redis"
	"time"

	"github.com/goccy/go-json"
)

// Default key for the formatted matches.
const (
	matchCacheDuration = time.Hour
	matchKey           = "match:formatted:%d"
	matchCacheName     = "match"
)

// MatchCache stores formatted matches keyed by their internal id.
type MatchCache interface {
	GetMatches(ctx context.Context, matchIds []uint) ([]dto.Match, []uint, error)
	SetMatch(ctx context.Context, match dto.Match) error
}

// Create a redis cache client.
type matchCache struct {
	redis   *redis.RedisClient
	metrics metrics.Metrics
}

// NewMatchCache creates a new instance of the match cache.
// Without Redis every lookup is a miss.
func NewMatchCache(client *redis.RedisClient, m metrics.Metrics) MatchCache {
	if m == nil {
		m = metrics.Noop{}
	}
	if client == nil {
		return noopMatchCache{}
	}

	return &matchCache{
		redis:   client,
		metrics: m,
	}
}

// GetMatches returns the cached matches and the ids that were not found.
func (mc *matchCache) GetMatches(ctx context.Context, matchIds []uint) ([]dto.Match, []uint, error) {
	if len(matchIds) == 0 {
		return nil, nil, nil
	}

	keys := make([]string, len(matchIds))
	for i, matchId := range matchIds {
		keys[i] = fmt.Sprintf(matchKey, matchId)
	}

	results, err := mc.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, matchIds, err
	}

	var foundMatches []dto.Match
	var notFoundIds []uint

	for i, result := range results {
		matchId := matchIds[i]

		jsonStr, ok := result.(string)
		if !ok {
			mc.metrics.IncCacheMiss(matchCacheName)
			notFoundIds = append(notFoundIds, matchId)
			continue
		}

		var match dto.Match
		if err := json.Unmarshal([]byte(jsonStr), &match); err != nil {
			mc.metrics.IncCacheMiss(matchCacheName)
			notFoundIds = append(notFoundIds, matchId)
			continue
		}

		mc.metrics.IncCacheHit(matchCacheName)
		foundMatches = append(foundMatches, match)
	}

	return foundMatches, notFoundIds, nil
}

// SetMatch saves a given match in cache.
func (mc *matchCache) SetMatch(ctx context.Context, match dto.Match) error {
	j, err := json.Marshal(match)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(matchKey, match.Metadata.InternalId)
	return mc.redis.Set(ctx, key, string(j), matchCacheDuration)
}

type noopMatchCache struct{}

func (noopMatchCache) GetMatches(_ context.Context, matchIds []uint) ([]dto.Match, []uint, error) {
	return nil, matchIds, nil
}

func (noopMatchCache) SetMatch(context.Context, dto.Match) error {
	return nil
}
