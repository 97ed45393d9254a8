package repositories

import (
	"context"
	"fmt"
	matchfetcher "lolookup/fetcher/data/match"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository is the public interface for accessing the match repository.
type MatchRepository interface {
	FindRecentMatchIds(ctx context.Context, playerId uint, limit int) ([]uint, error)
	FindCachedMatches(ctx context.Context, playerId uint, limit int) ([]models.MatchInfo, error)
	FindByMatchIds(ctx context.Context, matchIds []string) ([]models.MatchInfo, error)
	FindByInternalIds(ctx context.Context, ids []uint) ([]models.MatchInfo, error)
	UpsertMatch(ctx context.Context, data *matchfetcher.MatchData) (*models.MatchInfo, error)
	CountParticipants(ctx context.Context, matchId uint) (int64, error)
	CountTeams(ctx context.Context, matchId uint) (int64, error)
}

// matchRepository repository structure.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

var matchColumns = []string{
	"game_mode",
	"game_type",
	"game_version",
	"match_start",
	"match_duration",
	"queue_id",
	"platform_id",
	"updated_at",
}

// Preload everything the formatter needs, in a stable order.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participant_id ASC")
		}).
		Preload("Participants.Player").
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_id ASC")
		})
}

// FindRecentMatchIds returns the internal ids of the most recent stored matches of a player.
func (mr *matchRepository) FindRecentMatchIds(ctx context.Context, playerId uint, limit int) ([]uint, error) {
	var ids []uint
	err := mr.db.WithContext(ctx).
		Table("match_infos mi").
		Select("mi.id").
		Joins("JOIN match_participants mp ON mp.match_id = mi.id").
		Where("mp.player_id = ?", playerId).
		Order("mi.match_start DESC").
		Limit(limit).
		Pluck("mi.id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't get the recent matches of the player: %w", err)
	}

	return ids, nil
}

// FindCachedMatches returns the most recent stored matches of a player, fully joined.
func (mr *matchRepository) FindCachedMatches(ctx context.Context, playerId uint, limit int) ([]models.MatchInfo, error) {
	ids, err := mr.FindRecentMatchIds(ctx, playerId, limit)
	if err != nil {
		return nil, err
	}

	return mr.FindByInternalIds(ctx, ids)
}

// FindByMatchIds returns the stored matches among the given external ids, most recent first.
func (mr *matchRepository) FindByMatchIds(ctx context.Context, matchIds []string) ([]models.MatchInfo, error) {
	if len(matchIds) == 0 {
		return []models.MatchInfo{}, nil
	}

	var matches []models.MatchInfo
	err := withDetails(mr.db.WithContext(ctx)).
		Where("match_id IN ?", matchIds).
		Order("match_start DESC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't get the matches: %w", err)
	}

	return matches, nil
}

// FindByInternalIds returns the matches with the given primary keys, most recent first.
func (mr *matchRepository) FindByInternalIds(ctx context.Context, ids []uint) ([]models.MatchInfo, error) {
	if len(ids) == 0 {
		return []models.MatchInfo{}, nil
	}

	var matches []models.MatchInfo
	err := withDetails(mr.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Order("match_start DESC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't get the matches: %w", err)
	}

	return matches, nil
}

// UpsertMatch stores a match payload with its participants and teams in a single transaction.
// Participants that were never seen get a placeholder player.
func (mr *matchRepository) UpsertMatch(ctx context.Context, data *matchfetcher.MatchData) (*models.MatchInfo, error) {
	if data == nil || data.Metadata.MatchId == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "matchId")
	}

	var matchId uint
	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := upsertMatchInfo(tx, data)
		if err != nil {
			return err
		}
		matchId = id

		playerIds, err := upsertPlaceholderPlayers(tx, data)
		if err != nil {
			return err
		}

		if err := upsertParticipants(tx, id, playerIds, data.Info.Participants); err != nil {
			return err
		}

		return upsertTeams(tx, id, data.Info.Teams)
	})
	if err != nil {
		return nil, err
	}

	var stored models.MatchInfo
	if err := withDetails(mr.db.WithContext(ctx)).First(&stored, matchId).Error; err != nil {
		return nil, fmt.Errorf("couldn't read back the match %s: %w", data.Metadata.MatchId, err)
	}

	return &stored, nil
}

// CountParticipants returns how many participant rows a match has.
func (mr *matchRepository) CountParticipants(ctx context.Context, matchId uint) (int64, error) {
	var count int64
	err := mr.db.WithContext(ctx).Model(&models.MatchParticipant{}).Where("match_id = ?", matchId).Count(&count).Error
	return count, err
}

// CountTeams returns how many team rows a match has.
func (mr *matchRepository) CountTeams(ctx context.Context, matchId uint) (int64, error) {
	var count int64
	err := mr.db.WithContext(ctx).Model(&models.MatchTeam{}).Where("match_id = ?", matchId).Count(&count).Error
	return count, err
}

func upsertMatchInfo(tx *gorm.DB, data *matchfetcher.MatchData) (uint, error) {
	match := models.MatchInfo{
		MatchId:       data.Metadata.MatchId,
		GameMode:      data.Info.GameMode,
		GameType:      data.Info.GameType,
		GameVersion:   data.Info.GameVersion,
		MatchStart:    data.Info.GameCreation.Time().UTC(),
		MatchDuration: data.Info.GameDuration,
		QueueId:       data.Info.QueueId,
		PlatformId:    data.Info.PlatformId,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns(matchColumns),
	}).Omit(clause.Associations).Create(&match).Error
	if err != nil {
		return 0, fmt.Errorf("couldn't upsert the match %s: %w", match.MatchId, err)
	}

	// The conflict path doesn't return the id on every driver.
	var id uint
	if err := tx.Model(&models.MatchInfo{}).Where("match_id = ?", match.MatchId).Pluck("id", &id).Error; err != nil {
		return 0, fmt.Errorf("couldn't get the match id: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf(messages.CouldNotFindId, "match")
	}

	return id, nil
}

// Create a placeholder for every unseen participant and return the ids keyed by puuid.
func upsertPlaceholderPlayers(tx *gorm.DB, data *matchfetcher.MatchData) (map[string]uint, error) {
	placeholders := placeholderPlayers(data)
	ids := make(map[string]uint, len(placeholders))
	if len(placeholders) == 0 {
		return ids, nil
	}

	puuids := make([]string, 0, len(placeholders))
	for _, p := range placeholders {
		puuids = append(puuids, p.Puuid)
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}},
		DoNothing: true,
	}).Create(&placeholders).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't create the placeholder players: %w", err)
	}

	var players []models.PlayerInfo
	if err := tx.Select("id", "puuid").Where("puuid IN ?", puuids).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("couldn't get the participant players: %w", err)
	}

	for _, player := range players {
		ids[player.Puuid] = player.ID
	}

	return ids, nil
}

// Sorted by puuid so concurrent ingestions lock shared players in the same order.
func placeholderPlayers(data *matchfetcher.MatchData) []models.PlayerInfo {
	region := strings.ToLower(data.Info.PlatformId)
	seen := make(map[string]bool, len(data.Info.Participants))
	placeholders := make([]models.PlayerInfo, 0, len(data.Info.Participants))

	for _, p := range data.Info.Participants {
		if p.Puuid == "" || seen[p.Puuid] {
			continue
		}
		seen[p.Puuid] = true
		placeholders = append(placeholders, models.PlayerInfo{
			Puuid:          p.Puuid,
			RiotIdGameName: p.RiotIdGameName,
			RiotIdTagline:  p.RiotIdTagline,
			Region:         region,
			SummonerId:     p.SummonerId,
		})
	}

	sort.Slice(placeholders, func(i, j int) bool {
		return placeholders[i].Puuid < placeholders[j].Puuid
	})
	return placeholders
}

func upsertParticipants(tx *gorm.DB, matchId uint, playerIds map[string]uint, participants []matchfetcher.MatchPlayer) error {
	rows := make([]models.MatchParticipant, 0, len(participants))
	seen := make(map[uint]bool, len(participants))

	for _, p := range participants {
		playerId, ok := playerIds[p.Puuid]
		if !ok || seen[playerId] {
			continue
		}
		seen[playerId] = true

		rows = append(rows, models.MatchParticipant{
			MatchId:                     matchId,
			PlayerId:                    playerId,
			ParticipantId:               p.ParticipantId,
			ChampionId:                  p.ChampionId,
			ChampionName:                p.ChampionName,
			ChampionLevel:               p.ChampionLevel,
			TeamId:                      p.TeamId,
			TeamPosition:                p.TeamPosition,
			Win:                         p.Win,
			Kills:                       p.Kills,
			Deaths:                      p.Deaths,
			Assists:                     p.Assists,
			TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
			TotalDamageTaken:            p.TotalDamageTaken,
			TotalHeal:                   p.TotalHeal,
			GoldEarned:                  p.GoldEarned,
			TotalMinionsKilled:          p.TotalMinionsKilled,
			NeutralMinionsKilled:        p.NeutralMinionsKilled,
			VisionScore:                 p.VisionScore,
			TotalTimeCCDealt:            p.TotalTimeCCDealt,
			TimeCCingOthers:             p.TimeCCingOthers,
			Item0:                       p.Item0,
			Item1:                       p.Item1,
			Item2:                       p.Item2,
			Item3:                       p.Item3,
			Item4:                       p.Item4,
			Item5:                       p.Item5,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "player_id"}},
		UpdateAll: true,
	}).Omit(clause.Associations).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the participants: %w", err)
	}

	return nil
}

func upsertTeams(tx *gorm.DB, matchId uint, teams []matchfetcher.TeamInfo) error {
	if len(teams) == 0 {
		return nil
	}

	rows := make([]models.MatchTeam, 0, len(teams))
	for _, team := range teams {
		row := models.MatchTeam{
			MatchId: matchId,
			TeamId:  team.TeamId,
			Win:     team.Win,
		}
		if o := team.Objectives; o != nil {
			row.ChampionKills = matchfetcher.KillsOf(o.Champion)
			row.TowerKills = matchfetcher.KillsOf(o.Tower)
			row.InhibitorKills = matchfetcher.KillsOf(o.Inhibitor)
			row.BaronKills = matchfetcher.KillsOf(o.Baron)
			row.DragonKills = matchfetcher.KillsOf(o.Dragon)
			row.RiftHeraldKills = matchfetcher.KillsOf(o.RiftHerald)
		}
		rows = append(rows, row)
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "team_id"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the teams: %w", err)
	}

	return nil
}
