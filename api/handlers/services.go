package handlers

import (
	"context"
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/pkg/database/models"
)

// The handlers depend on these views of the services so they can be tested with fakes.

type AccountService interface {
	GetAccount(ctx context.Context, filter *filters.AccountFilter) (*dto.AccountResponse, error)
	GetSelfSummoner(ctx context.Context) (*dto.SummonerResponse, error)
}

type MatchService interface {
	GetMatches(ctx context.Context, filter *filters.MatchHistoryFilter) ([]dto.Match, error)
}

type StatsService interface {
	GetPlayerStats(ctx context.Context, filter *filters.PlayerStatsFilter) (*dto.PlayerStats, error)
}

type ChampionService interface {
	GetChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionList, error)
	GetChampion(ctx context.Context, filter *filters.GetChampionFilter) (*models.Champion, error)
}

type SearchService interface {
	GetRecentSearches(ctx context.Context) ([]dto.RecentSearch, error)
	RecordSearch(ctx context.Context, filter *filters.SearchFilter) error
}
