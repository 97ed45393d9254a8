package testutil

import (
	"fmt"
	matchfetcher "lolookup/fetcher/data/match"
	"time"
)

// FixedDate is the reference date used by the seeded data.
var FixedDate = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// NewMatchData builds a ten player match payload.
// The first five puuids play for team 100, which wins.
func NewMatchData(matchId string, created time.Time, puuids ...string) *matchfetcher.MatchData {
	participants := make([]matchfetcher.MatchPlayer, 0, len(puuids))
	for i, puuid := range puuids {
		teamId := 100
		if i >= 5 {
			teamId = 200
		}

		participants = append(participants, matchfetcher.MatchPlayer{
			Puuid:                       puuid,
			RiotIdGameName:              fmt.Sprintf("Player%d", i),
			RiotIdTagline:               "BR1",
			ParticipantId:               i + 1,
			ChampionId:                  i + 1,
			ChampionName:                fmt.Sprintf("Champion%d", i),
			ChampionLevel:               18,
			TeamId:                      teamId,
			TeamPosition:                "MIDDLE",
			Win:                         teamId == 100,
			Kills:                       i,
			Deaths:                      10 - i,
			Assists:                     i * 2,
			TotalDamageDealtToChampions: 10000 + i*1000,
			TotalDamageTaken:            15000,
			TotalHeal:                   1000 * i,
			GoldEarned:                  9000 + i*100,
			TotalMinionsKilled:          150,
			NeutralMinionsKilled:        10,
			VisionScore:                 20 + i,
			TotalTimeCCDealt:            100 * i,
			TimeCCingOthers:             5 * i,
			Item0:                       1001,
		})
	}

	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{
			DataVersion:  "2",
			MatchId:      matchId,
			Participants: puuids,
		},
		Info: matchfetcher.MatchInfo{
			GameCreation: matchfetcher.RiotTime(created),
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			GameType:     "MATCHED_GAME",
			GameVersion:  "15.4.1",
			Participants: participants,
			PlatformId:   "BR1",
			QueueId:      420,
			Teams: []matchfetcher.TeamInfo{
				{
					TeamId: 100,
					Win:    true,
					Objectives: &matchfetcher.Objectives{
						Champion: &matchfetcher.Objective{Kills: 30},
						Tower:    &matchfetcher.Objective{Kills: 9},
						Baron:    &matchfetcher.Objective{Kills: 1},
						Dragon:   &matchfetcher.Objective{Kills: 3},
					},
				},
				{TeamId: 200, Win: false},
			},
		},
	}
}

// TenPuuids returns the puuids of a full match with a prefix.
func TenPuuids(prefix string) []string {
	puuids := make([]string, 10)
	for i := range puuids {
		puuids[i] = fmt.Sprintf("%s-puuid-%d", prefix, i)
	}
	return puuids
}
