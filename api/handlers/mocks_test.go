package handlers

import (
	"context"
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

type mockAccountService struct{ mock.Mock }

func (m *mockAccountService) GetAccount(ctx context.Context, filter *filters.AccountFilter) (*dto.AccountResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *mockAccountService) GetSelfSummoner(ctx context.Context) (*dto.SummonerResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummonerResponse), args.Error(1)
}

type mockMatchService struct{ mock.Mock }

func (m *mockMatchService) GetMatches(ctx context.Context, filter *filters.MatchHistoryFilter) ([]dto.Match, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Match), args.Error(1)
}

type mockStatsService struct{ mock.Mock }

func (m *mockStatsService) GetPlayerStats(ctx context.Context, filter *filters.PlayerStatsFilter) (*dto.PlayerStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStats), args.Error(1)
}

type mockChampionService struct{ mock.Mock }

func (m *mockChampionService) GetChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChampionList), args.Error(1)
}

func (m *mockChampionService) GetChampion(ctx context.Context, filter *filters.GetChampionFilter) (*models.Champion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Champion), args.Error(1)
}

type mockSearchService struct{ mock.Mock }

func (m *mockSearchService) GetRecentSearches(ctx context.Context) ([]dto.RecentSearch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RecentSearch), args.Error(1)
}

func (m *mockSearchService) RecordSearch(ctx context.Context, filter *filters.SearchFilter) error {
	return m.Called(ctx, filter).Error(0)
}
