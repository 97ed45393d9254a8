package statsservice

import (
	"context"
	"lolookup/api/dto"
	"lolookup/api/filters"
	playerrepo "lolookup/api/repositories/player"
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"lolookup/pkg/scoring"
	"math"

	"gorm.io/gorm"
)

// StatsService aggregates the stored matches of a player.
type StatsService struct {
	PlayerRepository playerrepo.PlayerRepository
}

// StatsServiceDeps is the dependency list for the stats service.
type StatsServiceDeps struct {
	DB *gorm.DB
}

// NewStatsService creates a stats service.
func NewStatsService(deps *StatsServiceDeps) *StatsService {
	return &StatsService{
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
	}
}

// GetPlayerStats returns the averages and top champions of a player.
// A player that was never stored has zeroed stats.
func (ss *StatsService) GetPlayerStats(ctx context.Context, filter *filters.PlayerStatsFilter) (*dto.PlayerStats, error) {
	if filter == nil {
		return nil, apperror.InvalidInput(messages.PlayerIdRequired)
	}

	player, err := ss.PlayerRepository.FindByPuuid(ctx, filter.Puuid)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchStats, err)
	}
	if player == nil {
		return NewPlayerStats(&playerrepo.RawPlayerStats{}, nil), nil
	}

	raw, err := ss.PlayerRepository.GetPlayerStats(ctx, player.ID)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchStats, err)
	}

	champions, err := ss.PlayerRepository.GetTopChampions(ctx, player.ID)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchStats, err)
	}

	return NewPlayerStats(raw, champions), nil
}

// NewPlayerStats rounds the raw aggregates, averages to two decimals.
func NewPlayerStats(raw *playerrepo.RawPlayerStats, champions []playerrepo.RawChampionStats) *dto.PlayerStats {
	kda := dto.KDA{Perfect: true}
	if raw.AverageDeaths != 0 {
		kda = dto.KDA{Value: scoring.RoundTo((raw.AverageKills+raw.AverageAssists)/raw.AverageDeaths, 2)}
	}

	top := make([]dto.ChampionStats, 0, len(champions))
	for _, c := range champions {
		top = append(top, dto.ChampionStats{
			Name:       c.ChampionName,
			Games:      c.Games,
			AvgKills:   scoring.RoundTo(c.AverageKills, 2),
			AvgDeaths:  scoring.RoundTo(c.AverageDeaths, 2),
			AvgAssists: scoring.RoundTo(c.AverageAssists, 2),
		})
	}

	return &dto.PlayerStats{
		TotalGames: raw.TotalGames,
		WinRate:    scoring.WinRate(raw.Wins, raw.TotalGames),
		AverageStats: dto.AverageStats{
			Kills:       scoring.RoundTo(raw.AverageKills, 2),
			Deaths:      scoring.RoundTo(raw.AverageDeaths, 2),
			Assists:     scoring.RoundTo(raw.AverageAssists, 2),
			KDA:         kda,
			Damage:      int(math.Round(raw.AverageDamage)),
			Gold:        int(math.Round(raw.AverageGold)),
			VisionScore: scoring.RoundTo(raw.AverageVision, 2),
		},
		TopChampions: top,
	}
}
