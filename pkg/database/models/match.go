package models

import (
	"time"
)

// Match information.
type MatchInfo struct {
	ID            uint      `gorm:"primaryKey"`
	MatchId       string    `gorm:"type:varchar(30);uniqueIndex"`
	GameMode      string    `gorm:"type:varchar(30)"`
	GameType      string    `gorm:"type:varchar(30)"`
	GameVersion   string    `gorm:"type:varchar(30)"`
	MatchStart    time.Time `gorm:"index"`
	MatchDuration int
	QueueId       int    `gorm:"index"`
	PlatformId    string `gorm:"type:varchar(5)"`
	UpdatedAt     time.Time

	Participants []MatchParticipant `gorm:"foreignKey:MatchId"`
	Teams        []MatchTeam        `gorm:"foreignKey:MatchId"`
}

// Stats of a player in a match.
type MatchParticipant struct {
	ID       uint64      `gorm:"primaryKey"`
	MatchId  uint        `gorm:"not null;uniqueIndex:idx_match_player"`
	PlayerId uint        `gorm:"not null;uniqueIndex:idx_match_player;index"`
	Player   *PlayerInfo `gorm:"foreignKey:PlayerId"`

	ParticipantId int
	ChampionId    int
	ChampionName  string `gorm:"type:varchar(30);index"`
	ChampionLevel int
	TeamId        int
	TeamPosition  string `gorm:"type:varchar(10)"`
	Win           bool

	Kills                       int
	Deaths                      int
	Assists                     int
	TotalDamageDealtToChampions int
	TotalDamageTaken            int
	TotalHeal                   int
	GoldEarned                  int
	TotalMinionsKilled          int
	NeutralMinionsKilled        int
	VisionScore                 int
	TotalTimeCCDealt            int
	TimeCCingOthers             int

	Item0 int
	Item1 int
	Item2 int
	Item3 int
	Item4 int
	Item5 int
}

// Team result and objectives of a match.
type MatchTeam struct {
	ID      uint `gorm:"primaryKey"`
	MatchId uint `gorm:"not null;uniqueIndex:idx_match_team"`
	TeamId  int  `gorm:"not null;uniqueIndex:idx_match_team"`
	Win     bool

	ChampionKills   int
	TowerKills      int
	InhibitorKills  int
	BaronKills      int
	DragonKills     int
	RiftHeraldKills int
}
