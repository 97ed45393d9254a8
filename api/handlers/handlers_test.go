package handlers

import (
	"context"
	"errors"
	"io"
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/api/templates"
	"lolookup/pkg/apperror"
	"lolookup/pkg/database/models"
	"lolookup/pkg/messages"
	"lolookup/pkg/scoring"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, engine *gin.Engine, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var testAccount = &dto.AccountResponse{
	Account:  dto.Account{Puuid: "puuid-a", GameName: "PlayerA", TagLine: "BR1"},
	Summoner: dto.Summoner{Puuid: "puuid-a", Region: "br1", SummonerLevel: 100},
}

func TestAccountHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(m *mockAccountService)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missingparams",
			query:      "?riotIdGameName=PlayerA",
			wantStatus: http.StatusBadRequest,
			wantError:  messages.AccountParamsRequired,
		},
		{
			name:  "notfound",
			query: "?riotIdGameName=PlayerA&tagline=BR1&region=br1",
			setup: func(m *mockAccountService) {
				m.On("GetAccount", mock.Anything, mock.Anything).Return(nil, apperror.NotFound(messages.PlayerNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  messages.PlayerNotFound,
		},
		{
			name:  "untypederror",
			query: "?riotIdGameName=PlayerA&tagline=BR1&region=br1",
			setup: func(m *mockAccountService) {
				m.On("GetAccount", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  messages.FailedToFetchAccount,
		},
		{
			name:  "success",
			query: "?riotIdGameName=PlayerA&tagline=BR1&region=BR1",
			setup: func(m *mockAccountService) {
				m.On("GetAccount", mock.Anything, &filters.AccountFilter{GameName: "PlayerA", TagLine: "BR1", Region: "br1"}).Return(testAccount, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAccountService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewAccountHandler(&AccountHandlerDependencies{AccountService: svc})
			engine := gin.New()
			engine.GET("/account", h.GetAccount)

			w := perform(t, engine, http.MethodGet, "/account"+tt.query, nil)
			assert.Equal(t, tt.wantStatus, w.Code)

			body := decode(t, w)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.Contains(t, body, "summoner")
				assert.Contains(t, body, "account")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAccountHandlerSummoner(t *testing.T) {
	svc := &mockAccountService{}
	svc.On("GetSelfSummoner", mock.Anything).Return(&dto.SummonerResponse{Data: testAccount.Summoner}, nil)

	h := NewAccountHandler(&AccountHandlerDependencies{AccountService: svc})
	engine := gin.New()
	engine.GET("/summoner", h.GetSummoner)

	w := perform(t, engine, http.MethodGet, "/summoner", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "puuid-a", data["puuid"])
}

func TestMatchHandler(t *testing.T) {
	svc := &mockMatchService{}
	svc.On("GetMatches", mock.Anything, &filters.MatchHistoryFilter{Puuid: "puuid-a", Region: "br1"}).
		Return([]dto.Match{{Metadata: dto.MatchMetadata{MatchId: "BR1_1"}}}, nil)

	h := NewMatchHandler(&MatchHandlerDependencies{MatchService: svc})
	engine := gin.New()
	engine.GET("/matches", h.GetMatches)

	w := perform(t, engine, http.MethodGet, "/matches?puuid=puuid-a&region=br1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	matches, ok := decode(t, w)["matches"].([]any)
	require.True(t, ok)
	assert.Len(t, matches, 1)

	w = perform(t, engine, http.MethodGet, "/matches?region=br1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestStatsHandler(t *testing.T) {
	svc := &mockStatsService{}
	svc.On("GetPlayerStats", mock.Anything, &filters.PlayerStatsFilter{Puuid: "puuid-a"}).
		Return(&dto.PlayerStats{TotalGames: 0, AverageStats: dto.AverageStats{KDA: dto.KDA{Perfect: true}}}, nil)

	h := NewStatsHandler(&StatsHandlerDependencies{StatsService: svc})
	engine := gin.New()
	engine.GET("/stats/:playerId", h.GetPlayerStats)

	w := perform(t, engine, http.MethodGet, "/stats/puuid-a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	averages, ok := decode(t, w)["averageStats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Perfect", averages["kda"])
}

func TestChampionHandler(t *testing.T) {
	svc := &mockChampionService{}
	svc.On("GetChampions", mock.Anything, &filters.ChampionListFilter{ForceUpdate: true}).
		Return(nil, apperror.Upstream(messages.FailedToFetchChampions, errors.New("static data unavailable")))
	svc.On("GetChampions", mock.Anything, &filters.ChampionListFilter{}).
		Return(&dto.ChampionList{Success: true, Champions: []models.Champion{{ID: 266, Name: "Aatrox"}}, Message: messages.ChampionsFromDatabase}, nil)
	svc.On("GetChampion", mock.Anything, &filters.GetChampionFilter{ChampionId: 1}).
		Return(nil, apperror.NotFound(messages.ChampionNotFound))
	svc.On("GetChampion", mock.Anything, &filters.GetChampionFilter{ChampionId: 266}).
		Return(&models.Champion{ID: 266, Name: "Aatrox"}, nil)

	h := NewChampionHandler(&ChampionHandlerDependencies{ChampionService: svc})
	engine := gin.New()
	engine.GET("/champions", h.GetChampions)
	engine.POST("/champions", h.GetChampion)

	t.Run("list", func(t *testing.T) {
		w := perform(t, engine, http.MethodGet, "/champions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, messages.ChampionsFromDatabase, body["message"])
	})

	t.Run("forcedfailure", func(t *testing.T) {
		w := perform(t, engine, http.MethodGet, "/champions?forceUpdate=true", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, messages.FailedToFetchChampions, body["error"])
		assert.Equal(t, "static data unavailable", body["details"])
	})

	t.Run("missingid", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/champions", strings.NewReader(`{}`))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, messages.ChampionIdRequired, decode(t, w)["error"])
	})

	t.Run("notfound", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/champions", strings.NewReader(`{"championId":1}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		w := perform(t, engine, http.MethodPost, "/champions", strings.NewReader(`{"championId":266}`))
		require.Equal(t, http.StatusOK, w.Code)
		champion, ok := decode(t, w)["champion"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Aatrox", champion["name"])
	})
}

type pageMocks struct {
	account *mockAccountService
	match   *mockMatchService
	stats   *mockStatsService
	search  *mockSearchService
}

func setupPageEngine(t *testing.T) (*gin.Engine, *pageMocks) {
	t.Helper()
	m := &pageMocks{
		account: &mockAccountService{},
		match:   &mockMatchService{},
		stats:   &mockStatsService{},
		search:  &mockSearchService{},
	}

	h := NewPageHandler(&PageHandlerDependencies{
		AccountService: m.account,
		MatchService:   m.match,
		StatsService:   m.stats,
		SearchService:  m.search,
		Weights:        scoring.DefaultWeights,
		Logger:         zerolog.Nop(),
	})

	tmpl, err := templates.Load()
	require.NoError(t, err)

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	engine.GET("/lol", h.Home)
	engine.GET("/lol/search", h.Search)
	engine.GET("/lol/:region/:riotIdGameName/:tagline", h.Results)
	return engine, m
}

func TestPageHandlerHome(t *testing.T) {
	engine, m := setupPageEngine(t)
	m.search.On("GetRecentSearches", mock.Anything).Return([]dto.RecentSearch{{Name: "Faker", Tagline: "KR1", Region: "kr"}}, nil)

	w := perform(t, engine, http.MethodGet, "/lol", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/lol/kr/Faker/KR1")
}

func TestPageHandlerSearch(t *testing.T) {
	engine, m := setupPageEngine(t)
	m.search.On("RecordSearch", mock.Anything, &filters.SearchFilter{Name: "Some One", Tagline: "BR1", Region: "br1"}).Return(errors.New("redis down"))

	w := perform(t, engine, http.MethodGet, "/lol/search?region=BR1&name=Some+One&tagline=BR1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/lol/br1/Some%20One/BR1", w.Header().Get("Location"))
	m.search.AssertExpectations(t)
}

func TestPageHandlerSearchInvalid(t *testing.T) {
	engine, m := setupPageEngine(t)
	m.search.On("GetRecentSearches", mock.Anything).Return(nil, errors.New("redis down"))

	w := perform(t, engine, http.MethodGet, "/lol/search?region=br1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), messages.SearchParamsRequired)
	m.search.AssertNotCalled(t, "RecordSearch", mock.Anything, mock.Anything)
}

func TestPageHandlerResults(t *testing.T) {
	engine, m := setupPageEngine(t)
	m.account.On("GetAccount", mock.Anything, &filters.AccountFilter{GameName: "PlayerA", TagLine: "BR1", Region: "br1"}).Return(testAccount, nil)
	m.match.On("GetMatches", mock.Anything, &filters.MatchHistoryFilter{Puuid: "puuid-a", Region: "br1"}).Return([]dto.Match{{
		Metadata: dto.MatchMetadata{MatchId: "BR1_1"},
		Info: dto.MatchInfo{
			GameDuration: 1200,
			Participants: []dto.MatchParticipant{
				{Puuid: "puuid-a", RiotIdGameName: "PlayerA", RiotIdTagline: "BR1", TeamId: 100, Win: true, Kills: 5},
				{Puuid: "puuid-b", RiotIdGameName: "PlayerB", TeamId: 200, Kills: 2, Deaths: 3},
			},
		},
	}}, nil)
	m.stats.On("GetPlayerStats", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := perform(t, engine, http.MethodGet, "/lol/br1/PlayerA/BR1?sort=BR1_1:kills:desc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Contains(t, html, "PlayerA#BR1")
	assert.Contains(t, html, "1W 0L")
	assert.Contains(t, html, "/lol/br1/PlayerB/BR1")
	assert.Contains(t, html, "20:00")
}

func TestPageHandlerResultsError(t *testing.T) {
	engine, m := setupPageEngine(t)
	m.account.On("GetAccount", mock.Anything, mock.Anything).Return(nil, apperror.NotFound(messages.PlayerNotFound))

	w := perform(t, engine, http.MethodGet, "/lol/br1/Nobody/BR1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), messages.PlayerNotFound)
	m.match.AssertNotCalled(t, "GetMatches", mock.Anything, mock.Anything)
}

func TestHealthHandler(t *testing.T) {
	healthy := PingFunc(func(context.Context) error { return nil })
	failing := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	engine := gin.New()
	engine.GET("/ok", NewHealthHandler(map[string]Pinger{"database": healthy, "redis": nil}).Check)
	engine.GET("/bad", NewHealthHandler(map[string]Pinger{"database": healthy, "redis": failing}).Check)

	w := perform(t, engine, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body["checks"], "redis")

	w = perform(t, engine, http.MethodGet, "/bad", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body = decode(t, w)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "connection refused", body["checks"].(map[string]any)["redis"])
}
