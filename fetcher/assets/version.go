package assets

import (
	"context"
	"errors"
	"fmt"
	"lolookup/fetcher/requests"
	"net/http"

	"github.com/goccy/go-json"
)

// GetLatestVersion returns the newest static data version.
func (a *AssetFetcher) GetLatestVersion(ctx context.Context) (string, error) {
	resp, err := requests.Request(ctx, a.httpClient, a.baseURL+"/api/versions.json")
	if err != nil {
		return "", fmt.Errorf("couldn't get the current version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &requests.StatusError{StatusCode: resp.StatusCode, URL: "/api/versions.json"}
	}

	// Read the version json/array into the version.
	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	if len(versions) == 0 {
		return "", errors.New("no versions available")
	}

	return versions[0], nil
}
