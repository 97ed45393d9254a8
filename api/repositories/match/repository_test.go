package repositories

import (
	"context"
	"fmt"
	"lolookup/internal/testutil"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewMatchRepository(t *testing.T) {
	repository := NewMatchRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestUpsertMatch(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()

	t.Run("emptypayload", func(t *testing.T) {
		result, err := repository.UpsertMatch(ctx, nil)
		assert.EqualError(t, err, fmt.Sprintf(messages.EmptyParameter, "matchId"))
		assert.Nil(t, result)
	})

	data := testutil.NewMatchData("BR1_100", testutil.FixedDate, testutil.TenPuuids("br")...)

	match, err := repository.UpsertMatch(ctx, data)
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, "BR1_100", match.MatchId)
	assert.Equal(t, 420, match.QueueId)
	assert.True(t, testutil.FixedDate.Equal(match.MatchStart))
	require.Len(t, match.Participants, 10)
	require.Len(t, match.Teams, 2)

	// Ordered by participant id and joined with the player.
	for i, p := range match.Participants {
		assert.Equal(t, i+1, p.ParticipantId)
		require.NotNil(t, p.Player)
		assert.Equal(t, fmt.Sprintf("br-puuid-%d", i), p.Player.Puuid)
		assert.Equal(t, "br1", p.Player.Region)
		assert.True(t, p.Player.ProfileUpdatedAt.IsZero())
	}

	assert.Equal(t, 100, match.Teams[0].TeamId)
	assert.True(t, match.Teams[0].Win)
	assert.Equal(t, 30, match.Teams[0].ChampionKills)
	assert.Equal(t, 9, match.Teams[0].TowerKills)
	assert.Equal(t, 0, match.Teams[0].RiftHeraldKills)
	assert.Equal(t, 0, match.Teams[1].ChampionKills)
}

func TestUpsertMatchIdempotent(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()

	data := testutil.NewMatchData("BR1_200", testutil.FixedDate, testutil.TenPuuids("br")...)
	first, err := repository.UpsertMatch(ctx, data)
	require.NoError(t, err)

	data.Info.GameDuration = 2000
	data.Info.Participants[0].Kills = 42
	second, err := repository.UpsertMatch(ctx, data)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2000, second.MatchDuration)
	assert.Equal(t, 42, second.Participants[0].Kills)

	participants, err := repository.CountParticipants(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), participants)

	teams, err := repository.CountTeams(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), teams)

	var players int64
	require.NoError(t, db.Model(&models.PlayerInfo{}).Count(&players).Error)
	assert.Equal(t, int64(10), players)
}

func TestUpsertMatchKeepsKnownPlayers(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()

	known := &models.PlayerInfo{
		Puuid:            "br-puuid-0",
		RiotIdGameName:   "Known",
		RiotIdTagline:    "KN",
		Region:           "br1",
		SummonerLevel:    300,
		ProfileUpdatedAt: testutil.FixedDate,
	}
	require.NoError(t, db.Create(known).Error)

	match, err := repository.UpsertMatch(ctx, testutil.NewMatchData("BR1_300", testutil.FixedDate, testutil.TenPuuids("br")...))
	require.NoError(t, err)

	player := match.Participants[0].Player
	require.NotNil(t, player)
	assert.Equal(t, known.ID, player.ID)
	assert.Equal(t, "Known", player.RiotIdGameName)
	assert.Equal(t, 300, player.SummonerLevel)
}

func TestFindMatches(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()

	puuids := testutil.TenPuuids("br")
	for i := 0; i < 3; i++ {
		matchId := fmt.Sprintf("BR1_%d", i)
		_, err := repository.UpsertMatch(ctx, testutil.NewMatchData(matchId, testutil.FixedDate.Add(time.Duration(i)*time.Hour), puuids...))
		require.NoError(t, err)
	}
	_, err := repository.UpsertMatch(ctx, testutil.NewMatchData("BR1_other", testutil.FixedDate, testutil.TenPuuids("other")...))
	require.NoError(t, err)

	var player models.PlayerInfo
	require.NoError(t, db.Where("puuid = ?", puuids[0]).First(&player).Error)

	t.Run("recentids", func(t *testing.T) {
		ids, err := repository.FindRecentMatchIds(ctx, player.ID, 2)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})

	t.Run("cachedmatches", func(t *testing.T) {
		matches, err := repository.FindCachedMatches(ctx, player.ID, 10)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "BR1_2", matches[0].MatchId)
		assert.Equal(t, "BR1_1", matches[1].MatchId)
		assert.Equal(t, "BR1_0", matches[2].MatchId)
		assert.Len(t, matches[0].Participants, 10)
	})

	t.Run("bymatchids", func(t *testing.T) {
		matches, err := repository.FindByMatchIds(ctx, []string{"BR1_0", "BR1_other", "BR1_missing"})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		for _, m := range matches {
			assert.Len(t, m.Teams, 2)
		}
	})

	t.Run("emptyids", func(t *testing.T) {
		matches, err := repository.FindByMatchIds(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, matches)

		byId, err := repository.FindByInternalIds(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, byId)
	})

	t.Run("unknownplayer", func(t *testing.T) {
		matches, err := repository.FindCachedMatches(ctx, 9999, 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestUpsertMatchPostgres(t *testing.T) {
	db, cleanup := testutil.NewPostgresTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()

	data := testutil.NewMatchData("BR1_PG", testutil.FixedDate, testutil.TenPuuids("pg")...)
	first, err := repository.UpsertMatch(ctx, data)
	require.NoError(t, err)
	second, err := repository.UpsertMatch(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	participants, err := repository.CountParticipants(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), participants)

	teams, err := repository.CountTeams(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), teams)
}

func TestPlaceholderPlayersSorted(t *testing.T) {
	data := testutil.NewMatchData("BR1_ORDER", testutil.FixedDate, "c", "a", "", "b", "a")

	placeholders := placeholderPlayers(data)
	puuids := make([]string, 0, len(placeholders))
	for _, p := range placeholders {
		puuids = append(puuids, p.Puuid)
		assert.Equal(t, "br1", p.Region)
	}
	assert.Equal(t, []string{"a", "b", "c"}, puuids)
}

func TestUpsertMatchPostgresConcurrentSharedPlayers(t *testing.T) {
	db, cleanup := testutil.NewPostgresTestConnection(t)
	defer cleanup()

	repository := NewMatchRepository(db)
	ctx := context.Background()
	shared := testutil.TenPuuids("premade")

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		// Every match lists the same unseen players in a different order.
		puuids := append(append([]string{}, shared[i:]...), shared[:i]...)
		data := testutil.NewMatchData(fmt.Sprintf("BR1_SHARED%d", i), testutil.FixedDate, puuids...)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repository.UpsertMatch(ctx, data)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var players int64
	require.NoError(t, db.Model(&models.PlayerInfo{}).Where("puuid LIKE ?", "premade-%").Count(&players).Error)
	assert.Equal(t, int64(10), players)
}
