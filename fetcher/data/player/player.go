package playerfetcher

import (
	"context"
	"fmt"
	"lolookup/fetcher/requests"
	"lolookup/pkg/messages"
	"lolookup/pkg/regions"
	"net/url"
	"strings"
)

// PlayerFetcher fetches accounts and summoner profiles.
type PlayerFetcher struct {
	client *requests.RiotClient
}

// NewPlayerFetcher creates a player fetcher on top of the shared client.
func NewPlayerFetcher(client *requests.RiotClient) *PlayerFetcher {
	return &PlayerFetcher{client: client}
}

// GetAccount resolves a Riot ID on the region's routing cluster.
func (p *PlayerFetcher) GetAccount(ctx context.Context, gameName string, tagLine string, region string) (*Account, error) {
	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(tagLine)
	if gameName == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "gameName")
	}
	if tagLine == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "tagLine")
	}

	host := regions.GetMainRegion(region)
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := p.client.GetJSON(ctx, string(host), path, nil, "account", &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetSummoner fetches the summoner profile on the region's platform host.
func (p *PlayerFetcher) GetSummoner(ctx context.Context, puuid string, region string) (*SummonerByPuuid, error) {
	if puuid == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "puuid")
	}

	host := regions.GetSubRegion(region)
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)

	var summoner SummonerByPuuid
	if err := p.client.GetJSON(ctx, string(host), path, nil, "summoner", &summoner); err != nil {
		return nil, err
	}

	return &summoner, nil
}
