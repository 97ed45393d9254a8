package searchservice

import (
	"context"
	"lolookup/api/cache"
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	RecentSearchesKey = "lol-recent-searches"
	MaxRecentSearches = 10
)

// SearchService keeps the recent searches shown on the home page.
type SearchService struct {
	store  cache.KeyValueStore
	logger zerolog.Logger
}

// SearchServiceDeps is the dependency list for the search service.
type SearchServiceDeps struct {
	Store  cache.KeyValueStore
	Logger zerolog.Logger
}

// NewSearchService creates a search service.
func NewSearchService(deps *SearchServiceDeps) *SearchService {
	return &SearchService{
		store:  deps.Store,
		logger: deps.Logger.With().Str("service", "search").Logger(),
	}
}

// GetRecentSearches returns the searches, newest first.
// A unreadable list is treated as empty.
func (ss *SearchService) GetRecentSearches(ctx context.Context) ([]dto.RecentSearch, error) {
	value, found, err := ss.store.Get(ctx, RecentSearchesKey)
	if err != nil {
		return nil, apperror.Internal(messages.InternalError, err)
	}
	return ss.decode(value, found), nil
}

// RecordSearch moves the search to the top of the list, keeping at most ten.
func (ss *SearchService) RecordSearch(ctx context.Context, filter *filters.SearchFilter) error {
	if filter == nil {
		return apperror.InvalidInput(messages.SearchParamsRequired)
	}

	entry := dto.RecentSearch{
		Name:    filter.Name,
		Tagline: filter.Tagline,
		Region:  filter.Region,
	}

	err := ss.store.Update(ctx, RecentSearchesKey, func(current string, found bool) (string, error) {
		encoded, err := json.Marshal(prepend(ss.decode(current, found), entry))
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	})
	if err != nil {
		return apperror.Internal(messages.InternalError, err)
	}

	return nil
}

func (ss *SearchService) decode(value string, found bool) []dto.RecentSearch {
	if !found {
		return []dto.RecentSearch{}
	}

	var searches []dto.RecentSearch
	if err := json.Unmarshal([]byte(value), &searches); err != nil {
		ss.logger.Warn().Err(err).Msg("Discarding unreadable recent searches")
		return []dto.RecentSearch{}
	}
	return searches
}

func prepend(searches []dto.RecentSearch, entry dto.RecentSearch) []dto.RecentSearch {
	updated := make([]dto.RecentSearch, 0, MaxRecentSearches)
	updated = append(updated, entry)
	for _, s := range searches {
		if len(updated) == MaxRecentSearches {
			break
		}
		if sameSearch(s, entry) {
			continue
		}
		updated = append(updated, s)
	}
	return updated
}

func sameSearch(a, b dto.RecentSearch) bool {
	return strings.EqualFold(a.Name, b.Name) &&
		strings.EqualFold(a.Tagline, b.Tagline) &&
		strings.EqualFold(a.Region, b.Region)
}
