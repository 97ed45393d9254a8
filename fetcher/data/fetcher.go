package data

import (
	"context"
	matchfetcher "lolookup/fetcher/data/match"
	playerfetcher "lolookup/fetcher/data/player"
	"lolookup/fetcher/requests"
)

// ProviderClient is everything the services need from the Riot API.
type ProviderClient interface {
	GetAccount(ctx context.Context, gameName string, tagLine string, region string) (*playerfetcher.Account, error)
	GetSummoner(ctx context.Context, puuid string, region string) (*playerfetcher.SummonerByPuuid, error)
	GetMatchIds(ctx context.Context, puuid string, region string, count int) ([]string, error)
	GetMatch(ctx context.Context, matchId string, region string) (*matchfetcher.MatchData, error)
}

// Fetcher groups the player and match fetchers sharing one client and limiter.
type Fetcher struct {
	Player *playerfetcher.PlayerFetcher
	Match  *matchfetcher.MatchFetcher
}

var _ ProviderClient = (*Fetcher)(nil)

// NewFetcher creates the fetcher.
func NewFetcher(client *requests.RiotClient) *Fetcher {
	return &Fetcher{
		Player: playerfetcher.NewPlayerFetcher(client),
		Match:  matchfetcher.NewMatchFetcher(client),
	}
}

func (f *Fetcher) GetAccount(ctx context.Context, gameName string, tagLine string, region string) (*playerfetcher.Account, error) {
	return f.Player.GetAccount(ctx, gameName, tagLine, region)
}

func (f *Fetcher) GetSummoner(ctx context.Context, puuid string, region string) (*playerfetcher.SummonerByPuuid, error) {
	return f.Player.GetSummoner(ctx, puuid, region)
}

func (f *Fetcher) GetMatchIds(ctx context.Context, puuid string, region string, count int) ([]string, error) {
	return f.Match.GetMatchIds(ctx, puuid, region, count)
}

func (f *Fetcher) GetMatch(ctx context.Context, matchId string, region string) (*matchfetcher.MatchData, error) {
	return f.Match.GetMatch(ctx, matchId, region)
}
