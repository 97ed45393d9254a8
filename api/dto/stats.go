package dto

import (
	"strconv"
)

// KDA is a rounded ratio, or "Perfect" when the player never died.
type KDA struct {
	Value   float64
	Perfect bool
}

// MarshalJSON implements json.Marshaler.
func (k KDA) MarshalJSON() ([]byte, error) {
	if k.Perfect {
		return []byte(`"Perfect"`), nil
	}
	return []byte(strconv.FormatFloat(k.Value, 'f', -1, 64)), nil
}

// String is used by the templates.
func (k KDA) String() string {
	if k.Perfect {
		return "Perfect"
	}
	return strconv.FormatFloat(k.Value, 'f', 2, 64)
}

// PlayerStats is the aggregate of every stored match of a player.
type PlayerStats struct {
	TotalGames   int             `json:"totalGames"`
	WinRate      float64         `json:"winRate"`
	AverageStats AverageStats    `json:"averageStats"`
	TopChampions []ChampionStats `json:"topChampions"`
}

type AverageStats struct {
	Kills       float64 `json:"kills"`
	Deaths      float64 `json:"deaths"`
	Assists     float64 `json:"assists"`
	KDA         KDA     `json:"kda"`
	Damage      int     `json:"damage"`
	Gold        int     `json:"gold"`
	VisionScore float64 `json:"visionScore"`
}

type ChampionStats struct {
	Name       string  `json:"name"`
	Games      int     `json:"games"`
	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`
}
