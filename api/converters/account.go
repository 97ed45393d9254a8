package converters

import (
	"lolookup/api/dto"
	playerfetcher "lolookup/fetcher/data/player"
	"lolookup/pkg/database/models"
	"strings"
	"time"
)

// NewPlayerInfo builds the stored profile from the provider responses.
func NewPlayerInfo(account *playerfetcher.Account, summoner *playerfetcher.SummonerByPuuid, region string, fetchedAt time.Time) *models.PlayerInfo {
	return &models.PlayerInfo{
		Puuid:            account.Puuid,
		RiotIdGameName:   account.GameName,
		RiotIdTagline:    account.TagLine,
		Region:           strings.ToLower(region),
		SummonerId:       summoner.Id,
		ProfileIcon:      summoner.ProfileIconId,
		SummonerLevel:    summoner.SummonerLevel,
		RevisionDate:     summoner.RevisionDate,
		ProfileUpdatedAt: fetchedAt.UTC(),
	}
}

// NewAccountResponse formats a stored profile.
func NewAccountResponse(player *models.PlayerInfo) dto.AccountResponse {
	return dto.AccountResponse{
		Summoner: NewSummoner(player),
		Account: dto.Account{
			Puuid:    player.Puuid,
			GameName: player.RiotIdGameName,
			TagLine:  player.RiotIdTagline,
		},
	}
}

// NewSummoner formats the league profile of a stored player.
func NewSummoner(player *models.PlayerInfo) dto.Summoner {
	return dto.Summoner{
		Id:            player.SummonerId,
		Puuid:         player.Puuid,
		ProfileIconId: player.ProfileIcon,
		RevisionDate:  player.RevisionDate,
		SummonerLevel: player.SummonerLevel,
		Region:        player.Region,
	}
}

// SummonerFromProvider formats a provider summoner that isn't stored.
func SummonerFromProvider(summoner *playerfetcher.SummonerByPuuid, region string) dto.Summoner {
	return dto.Summoner{
		Id:            summoner.Id,
		Puuid:         summoner.Puuid,
		ProfileIconId: summoner.ProfileIconId,
		RevisionDate:  summoner.RevisionDate,
		SummonerLevel: summoner.SummonerLevel,
		Region:        strings.ToLower(region),
	}
}
