package models

import (
	"time"
)

// Player identity and profile.
type PlayerInfo struct {
	ID             uint   `gorm:"primaryKey"`
	Puuid          string `gorm:"type:varchar(78);uniqueIndex"`          // Unique identifier.
	RiotIdGameName string `gorm:"type:varchar(100);index:idx_name_tag"` // Shouldn't have more than 16, adding 100 due to some edge cases.
	RiotIdTagline  string `gorm:"type:varchar(10);index:idx_name_tag"`
	Region         string `gorm:"type:varchar(5)"`
	SummonerId     string `gorm:"type:varchar(63)"`
	ProfileIcon    int
	SummonerLevel  int
	RevisionDate   int64

	// Last time the profile was fetched from the API, zero for placeholders created from a match.
	ProfileUpdatedAt time.Time

	// Last time the match list was fetched.
	LastMatchFetch time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileFresh reports whether the profile was fetched inside the window.
func (p *PlayerInfo) ProfileFresh(now time.Time, window time.Duration) bool {
	return !p.ProfileUpdatedAt.IsZero() && now.Sub(p.ProfileUpdatedAt) < window
}

// MatchesFresh reports whether the match list was fetched inside the window.
func (p *PlayerInfo) MatchesFresh(now time.Time, window time.Duration) bool {
	return !p.LastMatchFetch.IsZero() && now.Sub(p.LastMatchFetch) < window
}
