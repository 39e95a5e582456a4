// Package vinyl enriches vinyl records through the Discogs API.
package vinyl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"curio_backend/platform/apperr"
)

// searchResult is the coarse shape from /database/search. Discogs returns
// the year as a string here and as a number on the release detail.
type searchResult struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Year    string   `json:"year"`
	Label   []string `json:"label"`
	CatNo   string   `json:"catno"`
	Genre   []string `json:"genre"`
	Style   []string `json:"style"`
	Country string   `json:"country"`
	Thumb   string   `json:"thumb"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// releaseDetail is the richer shape from /releases/{id}; only the fields the
// mapping uses are decoded.
type releaseDetail struct {
	Year    int    `json:"year"`
	Country string `json:"country"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Labels []struct {
		Name  string `json:"name"`
		CatNo string `json:"catno"`
	} `json:"labels"`
	Genres    []string `json:"genres"`
	Styles    []string `json:"styles"`
	Thumb     string   `json:"thumb"`
	LowestPrice float64 `json:"lowest_price"`
	NumForSale  int     `json:"num_for_sale"`
	Community   struct {
		Have int `json:"have"`
		Want int `json:"want"`
	} `json:"community"`
}

// Client talks to the Discogs database API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "CurioBackend/1.0").
		SetHeader("Authorization", "Discogs token="+token)
	return &Client{http: http}
}

// Search finds the best release match for artist and album, optionally
// narrowed by release year. Returns nil without error on no match.
func (c *Client) Search(ctx context.Context, artist, album string, year *int) (*searchResult, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("artist", artist).
		SetQueryParam("release_title", album).
		SetQueryParam("type", "release").
		SetQueryParam("per_page", "1")
	if year != nil {
		req.SetQueryParam("year", strconv.Itoa(*year))
	}

	var result searchResponse
	resp, err := req.SetResult(&result).Get("/database/search")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "vinyl lookup request failed", err).WithOp("vinyl.search")
	}
	if resp.IsError() {
		return nil, apperr.New(apperr.KindUnavailable, fmt.Sprintf("vinyl lookup returned status %d", resp.StatusCode())).WithOp("vinyl.search")
	}

	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

// Release fetches the detail record for one release id.
func (c *Client) Release(ctx context.Context, id int) (*releaseDetail, error) {
	var detail releaseDetail
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&detail).
		Get("/releases/" + strconv.Itoa(id))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "vinyl detail request failed", err).WithOp("vinyl.release")
	}
	if resp.IsError() {
		return nil, apperr.New(apperr.KindUnavailable, fmt.Sprintf("vinyl detail returned status %d", resp.StatusCode())).WithOp("vinyl.release")
	}
	return &detail, nil
}
