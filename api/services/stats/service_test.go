package statsservice

import (
	"context"
	"errors"
	"lolookup/api/filters"
	playerrepo "lolookup/api/repositories/player"
	"lolookup/api/services/testutil"
	helpers "lolookup/internal/testutil"
	"lolookup/pkg/apperror"
	"lolookup/pkg/database/models"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewStatsService(t *testing.T) {
	service := NewStatsService(&StatsServiceDeps{DB: new(gorm.DB)})
	assert.NotNil(t, service.PlayerRepository)
}

func TestGetPlayerStats(t *testing.T) {
	mockRepo := new(testutil.MockPlayerRepository)
	service := &StatsService{PlayerRepository: mockRepo}
	filter := &filters.PlayerStatsFilter{Puuid: "puuid"}

	mockRepo.On("FindByPuuid", mock.Anything, "puuid").Return(&models.PlayerInfo{ID: 4, Puuid: "puuid"}, nil)
	mockRepo.On("GetPlayerStats", mock.Anything, uint(4)).Return(&playerrepo.RawPlayerStats{
		TotalGames:     3,
		Wins:           2,
		AverageKills:   5.333333,
		AverageDeaths:  2,
		AverageAssists: 7.666666,
		AverageDamage:  18250.5,
		AverageGold:    10999.4,
		AverageVision:  21.125,
	}, nil)
	mockRepo.On("GetTopChampions", mock.Anything, uint(4)).Return([]playerrepo.RawChampionStats{
		{ChampionName: "Ahri", Games: 2, AverageKills: 6.5, AverageDeaths: 1.5, AverageAssists: 8},
		{ChampionName: "Annie", Games: 1, AverageKills: 3, AverageDeaths: 3, AverageAssists: 7},
	}, nil)

	stats, err := service.GetPlayerStats(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 66.67, stats.WinRate)
	assert.Equal(t, 5.33, stats.AverageStats.Kills)
	assert.Equal(t, 7.67, stats.AverageStats.Assists)
	assert.Equal(t, 6.5, stats.AverageStats.KDA.Value)
	assert.False(t, stats.AverageStats.KDA.Perfect)
	assert.Equal(t, 18251, stats.AverageStats.Damage)
	assert.Equal(t, 10999, stats.AverageStats.Gold)
	assert.Equal(t, 21.13, stats.AverageStats.VisionScore)
	require.Len(t, stats.TopChampions, 2)
	assert.Equal(t, "Ahri", stats.TopChampions[0].Name)

	testutil.VerifyAllMocks(t, mockRepo)
}

func TestGetPlayerStatsUnknownPlayer(t *testing.T) {
	mockRepo := new(testutil.MockPlayerRepository)
	service := &StatsService{PlayerRepository: mockRepo}

	mockRepo.On("FindByPuuid", mock.Anything, "nobody").Return((*models.PlayerInfo)(nil), nil)

	stats, err := service.GetPlayerStats(context.Background(), &filters.PlayerStatsFilter{Puuid: "nobody"})
	require.NoError(t, err)

	encoded, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalGames": 0,
		"winRate": 0,
		"averageStats": {"kills": 0, "deaths": 0, "assists": 0, "kda": "Perfect", "damage": 0, "gold": 0, "visionScore": 0},
		"topChampions": []
	}`, string(encoded))
}

func TestGetPlayerStatsErrors(t *testing.T) {
	service := &StatsService{}
	_, err := service.GetPlayerStats(context.Background(), nil)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)

	mockRepo := new(testutil.MockPlayerRepository)
	service.PlayerRepository = mockRepo
	mockRepo.On("FindByPuuid", mock.Anything, "puuid").Return(&models.PlayerInfo{ID: 1}, nil)
	mockRepo.On("GetPlayerStats", mock.Anything, uint(1)).Return((*playerrepo.RawPlayerStats)(nil), errors.New(helpers.DatabaseError))

	_, err = service.GetPlayerStats(context.Background(), &filters.PlayerStatsFilter{Puuid: "puuid"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindInternal, appErr.Kind)
	assert.ErrorContains(t, err, helpers.DatabaseError)
}
