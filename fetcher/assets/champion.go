package assets

import (
	"context"
	"fmt"
	"io"
	"lolookup/fetcher/requests"
	"lolookup/pkg/models/champion"
	"lolookup/pkg/storage"
	"net/http"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// AssetFetcher reads the static data and stores the champion images.
type AssetFetcher struct {
	httpClient *http.Client
	baseURL    string
	store      storage.ImageStore
	logger     zerolog.Logger
}

// AssetFetcherDeps is the dependency list for the asset fetcher.
// BaseURL defaults to the public static data host.
type AssetFetcherDeps struct {
	HTTPClient *http.Client
	BaseURL    string
	Store      storage.ImageStore
	Logger     zerolog.Logger
}

// NewAssetFetcher creates the asset fetcher.
func NewAssetFetcher(deps *AssetFetcherDeps) *AssetFetcher {
	a := &AssetFetcher{
		httpClient: deps.HTTPClient,
		baseURL:    strings.TrimSuffix(deps.BaseURL, "/"),
		store:      deps.Store,
		logger:     deps.Logger,
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{}
	}
	if a.baseURL == "" {
		a.baseURL = ddragon
	}
	return a
}

// GetChampions returns the champion summaries of a version, sorted by name key.
func (a *AssetFetcher) GetChampions(ctx context.Context, version string, language string) ([]champion.Champion, error) {
	path := fmt.Sprintf("/cdn/%s/data/%s/champion.json", version, language)
	resp, err := requests.Request(ctx, a.httpClient, a.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &requests.StatusError{StatusCode: resp.StatusCode, URL: path}
	}

	// Read the champion json.
	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	champions := make([]champion.Champion, 0, len(championsData.Data))
	for _, c := range championsData.Data {
		champions = append(champions, c)
	}
	sort.Slice(champions, func(i, j int) bool { return champions[i].Id < champions[j].Id })

	return champions, nil
}

// DownloadImages stores the thumbnail and the splash art of a champion.
// A failed download is logged and returns an empty URL, like a missing image.
func (a *AssetFetcher) DownloadImages(ctx context.Context, version string, c champion.Champion) (string, string) {
	thumbnail := a.downloadImage(ctx,
		fmt.Sprintf("%s/cdn/%s/img/champion/%s", a.baseURL, version, c.Image.Full),
		strings.ToLower(c.Key)+".png",
		"image/png",
	)
	splash := a.downloadImage(ctx,
		fmt.Sprintf("%s/cdn/img/champion/splash/%s_0.jpg", a.baseURL, c.Id),
		strings.ToLower(c.Key)+"_splash.jpg",
		"image/jpeg",
	)
	return thumbnail, splash
}

func (a *AssetFetcher) downloadImage(ctx context.Context, url string, name string, contentType string) string {
	data, err := a.fetchBytes(ctx, url)
	if err != nil {
		a.logger.Warn().Err(err).Str("url", url).Msg("couldn't download image")
		return ""
	}

	location, err := a.store.Save(ctx, name, contentType, data)
	if err != nil {
		a.logger.Warn().Err(err).Str("name", name).Msg("couldn't store image")
		return ""
	}
	return location
}

func (a *AssetFetcher) fetchBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := requests.Request(ctx, a.httpClient, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &requests.StatusError{StatusCode: resp.StatusCode, URL: url}
	}
	return io.ReadAll(resp.Body)
}
