package matchservice

import (
	"lolookup/api/services/testutil"
	"lolookup/pkg/database/models"
	"lolookup/pkg/metrics"
	"time"

	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testMocks struct {
	players  *testutil.MockPlayerRepository
	matches  *testutil.MockMatchRepository
	cache    *testutil.MockMatchCache
	provider *testutil.MockProvider
}

// Helper to initialize the mocks.
func setupTestService(m metrics.Metrics) (*MatchService, *testMocks) {
	mocks := &testMocks{
		players:  new(testutil.MockPlayerRepository),
		matches:  new(testutil.MockMatchRepository),
		cache:    new(testutil.MockMatchCache),
		provider: new(testutil.MockProvider),
	}
	if m == nil {
		m = metrics.Noop{}
	}

	service := &MatchService{
		PlayerRepository: mocks.players,
		MatchRepository:  mocks.matches,
		matchCache:       mocks.cache,
		provider:         mocks.provider,
		metrics:          m,
		logger:           zerolog.Nop(),
		freshness:        time.Hour,
		matchCount:       10,
		now:              func() time.Time { return fixedNow },
	}

	return service, mocks
}

func (tm *testMocks) all() []any {
	return []any{tm.players, tm.matches, tm.cache, tm.provider}
}

// Build a stored match with a single resolved participant.
func getMockMatch(id uint, matchId string, start time.Time) models.MatchInfo {
	return models.MatchInfo{
		ID:         id,
		MatchId:    matchId,
		MatchStart: start,
		Participants: []models.MatchParticipant{
			{
				ParticipantId: 1,
				ChampionName:  "Ahri",
				Player:        &models.PlayerInfo{Puuid: "puuid", RiotIdGameName: "Brtt", RiotIdTagline: "BR1", Region: "br1"},
			},
		},
	}
}

func getMockPlayer(lastFetch time.Time) *models.PlayerInfo {
	return &models.PlayerInfo{
		ID:             1,
		Puuid:          "puuid",
		RiotIdGameName: "Brtt",
		Region:         "br1",
		LastMatchFetch: lastFetch,
	}
}
