package repositories

import (
	"context"
	"errors"
	"fmt"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const topChampionsLimit = 5

// PlayerRepository is the public interface for accessing the player repository.
type PlayerRepository interface {
	FindByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error)
	FindByIdentity(ctx context.Context, name string, tag string, region string) (*models.PlayerInfo, error)
	Upsert(ctx context.Context, player *models.PlayerInfo) (*models.PlayerInfo, error)
	SetMatchesFetched(ctx context.Context, playerId uint, at time.Time) error
	GetPlayerStats(ctx context.Context, playerId uint) (*RawPlayerStats, error)
	GetTopChampions(ctx context.Context, playerId uint) ([]RawChampionStats, error)
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// RawPlayerStats is the raw aggregate of all stored matches of a player.
type RawPlayerStats struct {
	TotalGames     int     `gorm:"column:total_games"`
	Wins           int     `gorm:"column:wins"`
	AverageKills   float64 `gorm:"column:avg_kills"`
	AverageDeaths  float64 `gorm:"column:avg_deaths"`
	AverageAssists float64 `gorm:"column:avg_assists"`
	AverageDamage  float64 `gorm:"column:avg_damage"`
	AverageGold    float64 `gorm:"column:avg_gold"`
	AverageVision  float64 `gorm:"column:avg_vision"`
}

// RawChampionStats is the raw aggregate of a player on a single champion.
type RawChampionStats struct {
	ChampionName   string  `gorm:"column:champion_name"`
	Games          int     `gorm:"column:games"`
	AverageKills   float64 `gorm:"column:avg_kills"`
	AverageDeaths  float64 `gorm:"column:avg_deaths"`
	AverageAssists float64 `gorm:"column:avg_assists"`
}

// Columns refreshed when a profile is fetched again.
var profileColumns = []string{
	"riot_id_game_name",
	"riot_id_tagline",
	"region",
	"summoner_id",
	"profile_icon",
	"summoner_level",
	"revision_date",
	"profile_updated_at",
	"updated_at",
}

// FindByPuuid returns nil when the player doesn't exist.
func (pr *playerRepository) FindByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	if err := pr.db.WithContext(ctx).Where("puuid = ?", puuid).First(&player).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the player by puuid: %w", err)
	}

	return &player, nil
}

// FindByIdentity searches a player by name, tag and region, ignoring case.
func (pr *playerRepository) FindByIdentity(ctx context.Context, name string, tag string, region string) (*models.PlayerInfo, error) {
	name = strings.TrimSpace(name)
	tag = strings.TrimSpace(tag)
	region = strings.ToLower(strings.TrimSpace(region))
	if name == "" || tag == "" || region == "" {
		return nil, errors.New(messages.FiltersNotNil)
	}

	var player models.PlayerInfo
	err := pr.db.WithContext(ctx).
		Where("LOWER(riot_id_game_name) = LOWER(?) AND LOWER(riot_id_tagline) = LOWER(?) AND region = ?", name, tag, region).
		Order("profile_updated_at DESC").
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't search the player: %w", err)
	}

	return &player, nil
}

// Upsert inserts or refreshes a player keyed by puuid and returns the stored row.
func (pr *playerRepository) Upsert(ctx context.Context, player *models.PlayerInfo) (*models.PlayerInfo, error) {
	if player == nil || player.Puuid == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "puuid")
	}

	// The row is matched by puuid only, never by a caller supplied id.
	row := *player
	row.ID = 0

	db := pr.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}},
		DoUpdates: clause.AssignmentColumns(profileColumns),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't upsert the player %s: %w", player.Puuid, err)
	}

	var stored models.PlayerInfo
	if err := db.Where("puuid = ?", player.Puuid).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("couldn't read back the player %s: %w", player.Puuid, err)
	}

	return &stored, nil
}

// SetMatchesFetched sets the last time the match list was fetched.
func (pr *playerRepository) SetMatchesFetched(ctx context.Context, playerId uint, at time.Time) error {
	return pr.db.WithContext(ctx).
		Model(&models.PlayerInfo{}).
		Where("id = ?", playerId).
		UpdateColumn("last_match_fetch", at.UTC()).Error
}

// GetPlayerStats aggregates every stored match of the player.
func (pr *playerRepository) GetPlayerStats(ctx context.Context, playerId uint) (*RawPlayerStats, error) {
	var stats RawPlayerStats
	err := pr.db.WithContext(ctx).
		Model(&models.MatchParticipant{}).
		Select(`
			COUNT(*) AS total_games,
			COALESCE(SUM(CASE WHEN win THEN 1 ELSE 0 END), 0) AS wins,
			COALESCE(CAST(AVG(kills) AS DOUBLE PRECISION), 0) AS avg_kills,
			COALESCE(CAST(AVG(deaths) AS DOUBLE PRECISION), 0) AS avg_deaths,
			COALESCE(CAST(AVG(assists) AS DOUBLE PRECISION), 0) AS avg_assists,
			COALESCE(CAST(AVG(total_damage_dealt_to_champions) AS DOUBLE PRECISION), 0) AS avg_damage,
			COALESCE(CAST(AVG(gold_earned) AS DOUBLE PRECISION), 0) AS avg_gold,
			COALESCE(CAST(AVG(vision_score) AS DOUBLE PRECISION), 0) AS avg_vision`).
		Where("player_id = ?", playerId).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't aggregate the player stats: %w", err)
	}

	return &stats, nil
}

// GetTopChampions returns the five most played champions of the player.
func (pr *playerRepository) GetTopChampions(ctx context.Context, playerId uint) ([]RawChampionStats, error) {
	var champions []RawChampionStats
	err := pr.db.WithContext(ctx).
		Model(&models.MatchParticipant{}).
		Select(`
			champion_name,
			COUNT(*) AS games,
			CAST(AVG(kills) AS DOUBLE PRECISION) AS avg_kills,
			CAST(AVG(deaths) AS DOUBLE PRECISION) AS avg_deaths,
			CAST(AVG(assists) AS DOUBLE PRECISION) AS avg_assists`).
		Where("player_id = ?", playerId).
		Group("champion_name").
		Order("games DESC, champion_name ASC").
		Limit(topChampionsLimit).
		Scan(&champions).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't aggregate the champion stats: %w", err)
	}

	return champions, nil
}
