package dto

// Match is the formatted match, shaped like the provider payload.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds the external match id and the participant puuids.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	InternalId   uint     `json:"internalId"`
	Participants []string `json:"participants"`
}

// MatchInfo holds the match data, gameCreation in unix milliseconds.
type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"`
	GameMode     string             `json:"gameMode"`
	GameType     string             `json:"gameType"`
	GameVersion  string             `json:"gameVersion"`
	QueueId      int                `json:"queueId"`
	PlatformId   string             `json:"platformId"`
	Participants []MatchParticipant `json:"participants"`
	Teams        []Team             `json:"teams"`
}

// MatchParticipant is a player line of a match.
type MatchParticipant struct {
	Puuid                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	Region                      string `json:"region"`
	ParticipantId               int    `json:"participantId"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampionLevel               int    `json:"champLevel"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	Win                         bool   `json:"win"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalHeal                   int    `json:"totalHeal"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	TotalTimeCCDealt            int    `json:"totalTimeCCDealt"`
	TimeCCingOthers             int    `json:"timeCCingOthers"`
	Items                       []int  `json:"items"`
}

// Team result and objectives.
type Team struct {
	TeamId     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Objectives Objectives `json:"objectives"`
}

// Objectives of a team, missing ones are zero.
type Objectives struct {
	Champion   Objective `json:"champion"`
	Tower      Objective `json:"tower"`
	Inhibitor  Objective `json:"inhibitor"`
	Baron      Objective `json:"baron"`
	Dragon     Objective `json:"dragon"`
	RiftHerald Objective `json:"riftHerald"`
}

type Objective struct {
	Kills int `json:"kills"`
}

// MatchList is the matches endpoint response.
type MatchList struct {
	Matches []Match `json:"matches"`
}
