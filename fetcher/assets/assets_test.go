package assets

import (
	"context"
	"fmt"
	"lolookup/pkg/storage"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const championJSON = `{
  "type": "champion",
  "version": "14.1.1",
  "data": {
    "Aatrox": {"id": "Aatrox", "key": "266", "name": "Aatrox", "title": "the Darkin Blade",
               "image": {"full": "Aatrox.png", "sprite": "champion0.png", "group": "champion", "x": 0, "y": 0, "w": 48, "h": 48}},
    "Ahri": {"id": "Ahri", "key": "103", "name": "Ahri", "title": "the Nine-Tailed Fox",
             "image": {"full": "Ahri.png", "sprite": "champion0.png", "group": "champion", "x": 48, "y": 0, "w": 48, "h": 48}}
  }
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["14.1.1","13.24.1"]`)
	})
	mux.HandleFunc("/cdn/14.1.1/data/en_US/champion.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, championJSON)
	})
	mux.HandleFunc("/cdn/14.1.1/img/champion/Aatrox.png", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "thumb")
	})
	mux.HandleFunc("/cdn/img/champion/splash/Aatrox_0.jpg", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "splash")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetLatestVersion(t *testing.T) {
	srv := newTestServer(t)
	a := NewAssetFetcher(&AssetFetcherDeps{BaseURL: srv.URL, Logger: zerolog.Nop()})

	version, err := a.GetLatestVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.1.1", version)
}

func TestGetChampions(t *testing.T) {
	srv := newTestServer(t)
	a := NewAssetFetcher(&AssetFetcherDeps{BaseURL: srv.URL, Logger: zerolog.Nop()})

	champions, err := a.GetChampions(context.Background(), "14.1.1", "en_US")
	require.NoError(t, err)
	require.Len(t, champions, 2)

	assert.Equal(t, "Aatrox", champions[0].Id)
	assert.Equal(t, "266", champions[0].Key)
	assert.Equal(t, "Aatrox.png", champions[0].Image.Full)

	id, err := champions[1].NumericId()
	require.NoError(t, err)
	assert.Equal(t, 103, id)

	_, err = a.GetChampions(context.Background(), "0.0.0", "en_US")
	assert.Error(t, err)
}

func TestDownloadImages(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()
	a := NewAssetFetcher(&AssetFetcherDeps{
		BaseURL: srv.URL,
		Store:   storage.NewLocalStore(dir, storage.LocalURLPrefix),
		Logger:  zerolog.Nop(),
	})

	champions, err := a.GetChampions(context.Background(), "14.1.1", "en_US")
	require.NoError(t, err)

	thumb, splash := a.DownloadImages(context.Background(), "14.1.1", champions[0])
	assert.Equal(t, "/champions/266.png", thumb)
	assert.Equal(t, "/champions/266_splash.jpg", splash)

	data, err := os.ReadFile(filepath.Join(dir, "266_splash.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "splash", string(data))

	// Ahri has no images on the test server.
	thumb, splash = a.DownloadImages(context.Background(), "14.1.1", champions[1])
	assert.Empty(t, thumb)
	assert.Empty(t, splash)
}
