package wine

import (
	"context"

	"curio_backend/internal/enrichment"
	"curio_backend/internal/scan/domain"
)

const unknown = "Unknown"

// Enricher implements the wine enrichment strategy: it requires a wine name
// (or falls back to the item name) and queries the lookup provider. Failure
// and no-match both degrade to a warning on the item.
type Enricher struct {
	client *Client
}

func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client}
}

func (e *Enricher) Enrich(ctx context.Context, item domain.DetectedItem) domain.EnrichedItem {
	details := item.CollectorDetails

	name := item.Name
	if details.WineName != nil {
		name = *details.WineName
	}
	if name == "" {
		return enrichment.Failed(item, domain.ItemTypeWine, "wine lookup skipped: no wine name detected")
	}

	winery := ""
	if details.Winery != nil {
		winery = *details.Winery
	}

	match, err := e.client.Search(ctx, name, winery, details.Vintage)
	if err != nil {
		return enrichment.Failed(item, domain.ItemTypeWine, "wine lookup failed: "+err.Error())
	}
	if match == nil {
		return enrichment.Failed(item, domain.ItemTypeWine, "no wine match found for \""+name+"\"")
	}

	return enrichment.Succeeded(item, domain.ItemTypeWine, mapMatch(match, details))
}

// mapMatch turns the provider shape into the stable WineData record. Every
// key is populated: absent strings become "Unknown", absent numerics stay
// zero, and the detected vintage backfills a missing provider vintage.
func mapMatch(match *wineMatch, details domain.CollectorDetails) domain.WineData {
	data := domain.WineData{
		WineName:     orUnknown(match.Name),
		Winery:       orUnknown(match.Winery.Name),
		Region:       orUnknown(match.Region.Name),
		Country:      orUnknown(match.Region.Country),
		Rating:       match.Statistics.Rating,
		RatingCount:  match.Statistics.RatingCount,
		AveragePrice: match.Price.Amount,
		Currency:     match.Price.Currency,
		ImageURL:     match.ImageURL,
	}
	if data.Currency == "" {
		data.Currency = "EUR"
	}

	switch {
	case match.Vintage != nil:
		data.Vintage = *match.Vintage
	case details.Vintage != nil:
		data.Vintage = *details.Vintage
	}

	return data
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
