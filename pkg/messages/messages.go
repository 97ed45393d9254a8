package messages

const (
	AccountParamsRequired  = "riotIdGameName, tagline and region are required"
	BadStatusCodeMsg       = "API returned status code %d on URL %s"
	ChampionIdRequired     = "Champion ID is required"
	ChampionNotFound       = "Champion not found"
	ChampionsFromDatabase  = "Champions loaded from database"
	ChampionsUpdated       = "Successfully updated %d champions"
	CouldNotFindId         = "couldn't find the %s Id"
	EmptyParameter         = "parameter %s can't be empty"
	FailedToFetchAccount   = "failed to fetch account data"
	FailedToFetchChampion  = "Failed to fetch champion data"
	FailedToFetchChampions = "Failed to fetch or update champion data"
	FailedToFetchMatches   = "failed to fetch match data"
	FailedToFetchStats     = "failed to fetch player stats"
	FailedToFetchSummoner  = "failed to fetch summoner data"
	FailedToParseMsg       = "failed to parse API response"
	FiltersNotNil          = "filters can't be nil"
	InternalError          = "internal server error"
	MatchParamsRequired    = "puuid and region are required"
	MissingApiKey          = "can't do an authenticated request without the API key"
	PlayerIdRequired       = "playerId is required"
	PlayerNotFound         = "player not found"
	RequestFailedMsg       = "API request failed on URL %s"
	SearchParamsRequired   = "name, tagline and region are required"
	SelfPuuidNotConfigured = "MY_PUUID is not configured"
)
