package matchfetcher

import (
	"time"

	"github.com/goccy/go-json"
)

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds the match id and the participant puuids.
type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	GameCreation RiotTime      `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	GameType     string        `json:"gameType"`
	GameVersion  string        `json:"gameVersion"`
	Participants []MatchPlayer `json:"participants"`
	PlatformId   string        `json:"platformId"`
	QueueId      int           `json:"queueId"`
	Teams        []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	ChampionId                  int    `json:"championId"`
	ChampionLevel               int    `json:"champLevel"`
	ChampionName                string `json:"championName"`
	Deaths                      int    `json:"deaths"`
	GoldEarned                  int    `json:"goldEarned"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Kills                       int    `json:"kills"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	ParticipantId               int    `json:"participantId"`
	ProfileIcon                 int    `json:"profileIcon"`
	Puuid                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	SummonerId                  string `json:"summonerId"`
	SummonerLevel               int    `json:"summonerLevel"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TimeCCingOthers             int    `json:"timeCCingOthers"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalHeal                   int    `json:"totalHeal"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TotalTimeCCDealt            int    `json:"totalTimeCCDealt"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}

// TeamInfo contains the objectives, id and if the team won.
type TeamInfo struct {
	Objectives *Objectives `json:"objectives"`
	TeamId     int         `json:"teamId"`
	Win        bool        `json:"win"`
}

// Objectives of a team, any of them can be missing.
type Objectives struct {
	Baron      *Objective `json:"baron"`
	Champion   *Objective `json:"champion"`
	Dragon     *Objective `json:"dragon"`
	Inhibitor  *Objective `json:"inhibitor"`
	RiftHerald *Objective `json:"riftHerald"`
	Tower      *Objective `json:"tower"`
}

// Objective counter.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// KillsOf returns the kills of an objective, zero when it's missing.
func KillsOf(o *Objective) int {
	if o == nil {
		return 0
	}
	return o.Kills
}
