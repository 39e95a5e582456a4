package vinyl

import (
	"context"
	"strconv"
	"strings"

	"curio_backend/internal/enrichment"
	"curio_backend/internal/scan/domain"
)

const unknown = "Unknown"

// Enricher implements the vinyl enrichment strategy. It requires the artist
// and album detail fields; a match triggers a second detail lookup for
// catalog and pricing data, and a failed detail lookup falls back to the
// coarser search shape rather than failing the enrichment.
type Enricher struct {
	client *Client
}

func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client}
}

func (e *Enricher) Enrich(ctx context.Context, item domain.DetectedItem) domain.EnrichedItem {
	details := item.CollectorDetails
	if details.Artist == nil || details.Album == nil {
		return enrichment.Failed(item, domain.ItemTypeVinyl, "vinyl lookup skipped: artist or album not detected")
	}
	artist, album := *details.Artist, *details.Album

	match, err := e.client.Search(ctx, artist, album, details.ReleaseYear)
	if err != nil {
		return enrichment.Failed(item, domain.ItemTypeVinyl, "vinyl lookup failed: "+err.Error())
	}
	if match == nil {
		return enrichment.Failed(item, domain.ItemTypeVinyl, "no vinyl match found for \""+artist+" - "+album+"\"")
	}

	data := mapSearchResult(match, artist, album)

	// Two-tier degradation: the detail lookup adds pricing and community
	// numbers, but its failure never discards the search match.
	if detail, err := e.client.Release(ctx, match.ID); err == nil {
		mergeDetail(&data, detail)
	}

	return enrichment.Succeeded(item, domain.ItemTypeVinyl, data)
}

// mapSearchResult builds the stable VinylData record from the coarse search
// shape. Discogs titles come as "Artist - Album"; the detected fields win
// when the title cannot be split.
func mapSearchResult(match *searchResult, artist, album string) domain.VinylData {
	matchArtist, matchAlbum := splitTitle(match.Title)
	if matchArtist == "" {
		matchArtist = artist
	}
	if matchAlbum == "" {
		matchAlbum = album
	}

	year := 0
	if n, err := strconv.Atoi(match.Year); err == nil {
		year = n
	}

	return domain.VinylData{
		Artist:        orUnknown(matchArtist),
		Album:         orUnknown(matchAlbum),
		ReleaseYear:   year,
		Label:         orUnknown(firstOf(match.Label)),
		CatalogNumber: orUnknown(match.CatNo),
		Genres:        strings.Join(match.Genre, ", "),
		Styles:        strings.Join(match.Style, ", "),
		Country:       orUnknown(match.Country),
		ThumbURL:      match.Thumb,
	}
}

// mergeDetail overlays the richer release fields onto the search-derived
// record. Artist and label credits arrive as arrays of sub-objects and are
// joined into single display strings.
func mergeDetail(data *domain.VinylData, detail *releaseDetail) {
	if len(detail.Artists) > 0 {
		names := make([]string, 0, len(detail.Artists))
		for _, a := range detail.Artists {
			if a.Name != "" {
				names = append(names, a.Name)
			}
		}
		if len(names) > 0 {
			data.Artist = strings.Join(names, ", ")
		}
	}
	if len(detail.Labels) > 0 {
		if detail.Labels[0].Name != "" {
			data.Label = detail.Labels[0].Name
		}
		if detail.Labels[0].CatNo != "" {
			data.CatalogNumber = detail.Labels[0].CatNo
		}
	}
	if detail.Year != 0 {
		data.ReleaseYear = detail.Year
	}
	if detail.Country != "" {
		data.Country = detail.Country
	}
	if len(detail.Genres) > 0 {
		data.Genres = strings.Join(detail.Genres, ", ")
	}
	if len(detail.Styles) > 0 {
		data.Styles = strings.Join(detail.Styles, ", ")
	}
	if detail.Thumb != "" {
		data.ThumbURL = detail.Thumb
	}
	data.LowestPrice = detail.LowestPrice
	data.NumForSale = detail.NumForSale
	data.CommunityHave = detail.Community.Have
	data.CommunityWant = detail.Community.Want
}

func splitTitle(title string) (artist, album string) {
	parts := strings.SplitN(title, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return "", strings.TrimSpace(title)
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
