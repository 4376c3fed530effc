package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client proxies hiking-course lookups to the external geographic data API.
// Failures surface immediately to the caller; there is no retry or circuit
// breaking on this path.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type BoundingBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCourses returns the upstream response for the bounding box as raw
// JSON; the payload shape is owned by the upstream API and passed through
// untouched.
func (c *Client) FetchCourses(ctx context.Context, box BoundingBox) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("service", "data")
	params.Set("request", "GetFeature")
	params.Set("data", "LT_L_FRSTCLIMB")
	params.Set("geomFilter", fmt.Sprintf("BOX(%f,%f,%f,%f)", box.MinLng, box.MinLat, box.MaxLng, box.MaxLat))
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build course request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("course api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("course api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read course api response failed: %w", err)
	}
	return json.RawMessage(body), nil
}
