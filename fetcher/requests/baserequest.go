package requests

import (
	"context"
	"errors"
	"fmt"
	"lolookup/pkg/messages"
	"lolookup/pkg/metrics"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// Host template of the Riot API, filled with a routing cluster or platform.
const riotHostFormat = "https://%s.api.riotgames.com"

// StatusError is returned when the API answers with a non 200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

// IsRateLimited reports whether the API answered 429.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}

// IsNotFound reports whether the API answered 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// RiotClient does the authenticated requests to the Riot API.
type RiotClient struct {
	apiKey     string
	httpClient *http.Client
	limiter    *RateLimiter
	baseURL    string
	metrics    metrics.Metrics
}

// ClientOptions configures a RiotClient.
// BaseURL replaces the per region host, used against test servers.
type ClientOptions struct {
	ApiKey     string
	HTTPClient *http.Client
	Limiter    *RateLimiter
	BaseURL    string
	Metrics    metrics.Metrics
}

// NewRiotClient creates the client.
func NewRiotClient(opts ClientOptions) *RiotClient {
	c := &RiotClient{
		apiKey:     opts.ApiKey,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		baseURL:    opts.BaseURL,
		metrics:    opts.Metrics,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.metrics == nil {
		c.metrics = metrics.Noop{}
	}
	return c
}

func (c *RiotClient) urlFor(host string, path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return fmt.Sprintf(riotHostFormat, host) + path
}

// GetJSON waits for the limiter, does an authenticated GET and decodes the body into out.
// The endpoint label is only used for the metrics.
func (c *RiotClient) GetJSON(ctx context.Context, host string, path string, query url.Values, endpoint string, out any) error {
	if c.apiKey == "" {
		return errors.New(messages.MissingApiKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	fullURL := c.urlFor(host, path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("couldn't create the request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(messages.RequestFailedMsg+": %w", path, err)
	}
	defer resp.Body.Close()

	c.metrics.IncProviderRequest(endpoint, resp.StatusCode)

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return nil
}

// Request does a simple unauthenticated GET, used for the static data.
func Request(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the request: %w", err)
	}
	return client.Do(req)
}
