package requests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	statuses map[int]int
}

func (m *countingMetrics) IncProviderRequest(_ string, status int) { m.statuses[status]++ }
func (m *countingMetrics) IncMatchesIngested()                     {}
func (m *countingMetrics) IncMatchesDropped(string)                {}
func (m *countingMetrics) IncCacheHit(string)                      {}
func (m *countingMetrics) IncCacheMiss(string)                     {}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "RGAPI-key", r.Header.Get("X-Riot-Token"))
			assert.Equal(t, "5", r.URL.Query().Get("count"))
			fmt.Fprint(w, `{"value":"hello"}`)
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			fmt.Fprint(w, `{"value":`)
		}
	}))
	defer srv.Close()

	m := &countingMetrics{statuses: map[int]int{}}
	client := NewRiotClient(ClientOptions{ApiKey: "RGAPI-key", BaseURL: srv.URL, Metrics: m})

	var out struct {
		Value string `json:"value"`
	}

	t.Run("ok", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "americas", "/ok", url.Values{"count": {"5"}}, "test", &out)
		require.NoError(t, err)
		assert.Equal(t, "hello", out.Value)
	})

	t.Run("ratelimited", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "americas", "/limited", nil, "test", &out)
		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.False(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("notfound", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "americas", "/missing", nil, "test", &out)
		assert.True(t, IsNotFound(err))
	})

	t.Run("invalidbody", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "americas", "/broken", nil, "test", &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse API response")
	})

	assert.Equal(t, 2, m.statuses[http.StatusOK])
	assert.Equal(t, 1, m.statuses[http.StatusTooManyRequests])
	assert.Equal(t, 1, m.statuses[http.StatusNotFound])
}

func TestGetJSONWithoutApiKey(t *testing.T) {
	client := NewRiotClient(ClientOptions{})

	var out map[string]any
	err := client.GetJSON(context.Background(), "americas", "/ok", nil, "test", &out)
	assert.EqualError(t, err, "can't do an authenticated request without the API key")
}

func TestUrlFor(t *testing.T) {
	client := NewRiotClient(ClientOptions{ApiKey: "k"})
	assert.Equal(t, "https://asia.api.riotgames.com/lol/match/v5/matches/KR_1", client.urlFor("asia", "/lol/match/v5/matches/KR_1"))
}
