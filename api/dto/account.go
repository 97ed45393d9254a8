package dto

// Account is the riot account of a player.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the league profile of a player.
type Summoner struct {
	Id            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
	Region        string `json:"region"`
}

// AccountResponse is the account lookup response.
type AccountResponse struct {
	Summoner Summoner `json:"summoner"`
	Account  Account  `json:"account"`
}

// SummonerResponse is the self lookup response.
type SummonerResponse struct {
	Data Summoner `json:"data"`
}
