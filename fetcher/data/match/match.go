package matchfetcher

import (
	"context"
	"fmt"
	"lolookup/fetcher/requests"
	"lolookup/pkg/messages"
	"lolookup/pkg/regions"
	"net/url"
	"strconv"
)

// MatchFetcher fetches match ids and match payloads.
type MatchFetcher struct {
	client *requests.RiotClient
}

// NewMatchFetcher creates a match fetcher on top of the shared client.
func NewMatchFetcher(client *requests.RiotClient) *MatchFetcher {
	return &MatchFetcher{client: client}
}

// GetMatchIds returns the most recent match ids of a player, newest first.
func (m *MatchFetcher) GetMatchIds(ctx context.Context, puuid string, region string, count int) ([]string, error) {
	if puuid == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "puuid")
	}

	host := regions.GetMainRegion(region)
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	params := url.Values{
		"start": {"0"},
		"count": {strconv.Itoa(count)},
	}

	var matchIds []string
	if err := m.client.GetJSON(ctx, string(host), path, params, "match_ids", &matchIds); err != nil {
		return nil, err
	}

	return matchIds, nil
}

// GetMatch fetches a full match payload.
func (m *MatchFetcher) GetMatch(ctx context.Context, matchId string, region string) (*MatchData, error) {
	if matchId == "" {
		return nil, fmt.Errorf(messages.EmptyParameter, "matchId")
	}

	host := regions.GetMainRegion(region)
	path := "/lol/match/v5/matches/" + url.PathEscape(matchId)

	var match MatchData
	if err := m.client.GetJSON(ctx, string(host), path, nil, "match", &match); err != nil {
		return nil, err
	}

	return &match, nil
}
