package testutil

import (
	"context"
	"lolookup/api/cache"
	"lolookup/api/dto"
	playerrepo "lolookup/api/repositories/player"
	matchfetcher "lolookup/fetcher/data/match"
	playerfetcher "lolookup/fetcher/data/player"
	"lolookup/pkg/database/models"
	"lolookup/pkg/models/champion"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) FindByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error) {
	args := m.Called(ctx, puuid)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) FindByIdentity(ctx context.Context, name string, tag string, region string) (*models.PlayerInfo, error) {
	args := m.Called(ctx, name, tag, region)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) Upsert(ctx context.Context, player *models.PlayerInfo) (*models.PlayerInfo, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) SetMatchesFetched(ctx context.Context, playerId uint, at time.Time) error {
	args := m.Called(ctx, playerId, at)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayerStats(ctx context.Context, playerId uint) (*playerrepo.RawPlayerStats, error) {
	args := m.Called(ctx, playerId)
	return args.Get(0).(*playerrepo.RawPlayerStats), args.Error(1)
}

func (m *MockPlayerRepository) GetTopChampions(ctx context.Context, playerId uint) ([]playerrepo.RawChampionStats, error) {
	args := m.Called(ctx, playerId)
	return args.Get(0).([]playerrepo.RawChampionStats), args.Error(1)
}

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) FindRecentMatchIds(ctx context.Context, playerId uint, limit int) ([]uint, error) {
	args := m.Called(ctx, playerId, limit)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockMatchRepository) FindCachedMatches(ctx context.Context, playerId uint, limit int) ([]models.MatchInfo, error) {
	args := m.Called(ctx, playerId, limit)
	return args.Get(0).([]models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) FindByMatchIds(ctx context.Context, matchIds []string) ([]models.MatchInfo, error) {
	args := m.Called(ctx, matchIds)
	return args.Get(0).([]models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) FindByInternalIds(ctx context.Context, ids []uint) ([]models.MatchInfo, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) UpsertMatch(ctx context.Context, data *matchfetcher.MatchData) (*models.MatchInfo, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(*models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) CountParticipants(ctx context.Context, matchId uint) (int64, error) {
	args := m.Called(ctx, matchId)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchRepository) CountTeams(ctx context.Context, matchId uint) (int64, error) {
	args := m.Called(ctx, matchId)
	return args.Get(0).(int64), args.Error(1)
}

type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChampionRepository) FindAll(ctx context.Context) ([]models.Champion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Champion), args.Error(1)
}

func (m *MockChampionRepository) FindById(ctx context.Context, id int) (*models.Champion, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Champion), args.Error(1)
}

func (m *MockChampionRepository) Upsert(ctx context.Context, c *models.Champion) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// ============================================================================
// Cache mocks.
// ============================================================================

type MockMatchCache struct {
	mock.Mock
}

func (m *MockMatchCache) GetMatches(ctx context.Context, matchIds []uint) ([]dto.Match, []uint, error) {
	args := m.Called(ctx, matchIds)
	return args.Get(0).([]dto.Match), args.Get(1).([]uint), args.Error(2)
}

func (m *MockMatchCache) SetMatch(ctx context.Context, match dto.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Update runs fn between the mocked Get and Set calls.
func (m *MockKeyValueStore) Update(ctx context.Context, key string, fn cache.UpdateFunc) error {
	current, found, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	return m.Set(ctx, key, next)
}

// ============================================================================
// External data mocks.
// ============================================================================

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetAccount(ctx context.Context, gameName string, tagLine string, region string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockProvider) GetSummoner(ctx context.Context, puuid string, region string) (*playerfetcher.SummonerByPuuid, error) {
	args := m.Called(ctx, puuid, region)
	return args.Get(0).(*playerfetcher.SummonerByPuuid), args.Error(1)
}

func (m *MockProvider) GetMatchIds(ctx context.Context, puuid string, region string, count int) ([]string, error) {
	args := m.Called(ctx, puuid, region, count)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProvider) GetMatch(ctx context.Context, matchId string, region string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId, region)
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

type MockAssetClient struct {
	mock.Mock
}

func (m *MockAssetClient) GetLatestVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAssetClient) GetChampions(ctx context.Context, version string, language string) ([]champion.Champion, error) {
	args := m.Called(ctx, version, language)
	return args.Get(0).([]champion.Champion), args.Error(1)
}

func (m *MockAssetClient) DownloadImages(ctx context.Context, version string, c champion.Champion) (string, string) {
	args := m.Called(ctx, version, c)
	return args.String(0), args.String(1)
}
