// Package external provides adapters for the remote geocoding and weather
// services and for the geocode lookup cache.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const maxErrorBodyBytes = 512

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapParams holds parameters shared by the OpenWeatherMap adapters
type OpenWeatherMapParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type openWeatherMapClient struct {
	service string
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

func newOpenWeatherMapClient(service, defaultBaseURL string, params OpenWeatherMapParams) openWeatherMapClient {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return openWeatherMapClient{
		service: service,
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// getJSON performs a GET against path and decodes the JSON body into out
func (c *openWeatherMapClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("appid", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("failed to create %s request", c.service), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if stderrors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("%s request: %w", c.service, ctx.Err())
		}
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.NewTimeoutError(fmt.Sprintf("%s request timed out", c.service), err)
		}
		return errors.NewNetworkError(fmt.Sprintf("failed to call %s", c.service), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.logger != nil {
			c.logger.Warn("Failed to close response body",
				ports.F("service", c.service),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return errors.NewNetworkError(
			fmt.Sprintf("%s returned status %d: %s", c.service, resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode %s response", c.service), err)
	}
	return nil
}
