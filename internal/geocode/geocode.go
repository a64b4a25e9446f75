// Package geocode resolves free-text locations to coordinates.
package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Result is one geocoder match for an address.
type Result struct {
	FormattedAddress string
	Lat              float64
	Lng              float64
}

// Geocoder resolves an address to zero or more matches.
// An empty result list is a valid non-error outcome.
type Geocoder interface {
	Geocode(address string) ([]Result, error)
}

// Client calls a Google-style geocoding API.
type Client struct {
	httpClient *http.Client
	apiKey     string

	// Overridable URL for testing.
	baseURL string
}

// NewClient creates a geocoding client with the given API key.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geocoder API key is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}, nil
}

// apiResponse is the geocoding API response body.
type apiResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address. Zero matches returns an empty slice,
// not an error.
func (c *Client) Geocode(address string) ([]Result, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}

	params := url.Values{
		"address": {address},
		"key":     {c.apiKey},
	}

	req, err := http.NewRequest("GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = fmt.Errorf("%w (also failed to close body: %v)", err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	switch body.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("geocoder status %s", body.Status)
	}

	results := make([]Result, len(body.Results))
	for i, r := range body.Results {
		results[i] = Result{
			FormattedAddress: r.FormattedAddress,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
		}
	}

	return results, nil
}
