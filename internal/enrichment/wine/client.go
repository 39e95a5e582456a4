// Package wine enriches wine items through an external wine search API.
package wine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"curio_backend/platform/apperr"
)

// searchResponse is the provider's wire shape. Fields come and go between
// API versions, so everything downstream goes through mapMatch rather than
// exposing this struct.
type searchResponse struct {
	Matches []wineMatch `json:"matches"`
}

type wineMatch struct {
	Name    string `json:"name"`
	Winery  struct {
		Name string `json:"name"`
	} `json:"winery"`
	Vintage *int   `json:"vintage"`
	Region  struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"region"`
	Statistics struct {
		Rating      float64 `json:"ratings_average"`
		RatingCount int     `json:"ratings_count"`
	} `json:"statistics"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	ImageURL string `json:"image_url"`
}

// Client is a thin wrapper over the wine search endpoint.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+apiKey)
	return &Client{http: http}
}

// Search queries the provider for the best match on name, winery and
// vintage. Returns nil without error when the provider has no match.
func (c *Client) Search(ctx context.Context, name, winery string, vintage *int) (*wineMatch, error) {
	query := name
	if winery != "" {
		query = winery + " " + name
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", "1")
	if vintage != nil {
		req.SetQueryParam("vintage", strconv.Itoa(*vintage))
	}

	var result searchResponse
	resp, err := req.SetResult(&result).Get("/wines/search")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "wine lookup request failed", err).WithOp("wine.search")
	}
	if resp.IsError() {
		return nil, apperr.New(apperr.KindUnavailable, fmt.Sprintf("wine lookup returned status %d", resp.StatusCode())).WithOp("wine.search")
	}

	if len(result.Matches) == 0 {
		return nil, nil
	}
	return &result.Matches[0], nil
}
