// Package domain holds the scan bounded context's core types: items detected
// by the vision model and the enrichment attached to them.
package domain

// ItemType classifies a detected item and drives enrichment routing.
type ItemType string

const (
	ItemTypeWine    ItemType = "wine"
	ItemTypeVinyl   ItemType = "vinyl"
	ItemTypeGeneral ItemType = "general"
)

// CollectorDetails is a variant record: the wine fields, the vinyl fields,
// or all nil for general items. The vision model fills in whichever set
// matches the item's type.
type CollectorDetails struct {
	Winery      *string `json:"winery"`
	Vintage     *int    `json:"vintage"`
	WineName    *string `json:"wineName"`
	Artist      *string `json:"artist"`
	Album       *string `json:"album"`
	ReleaseYear *int    `json:"releaseYear"`
}

// IsEmpty reports whether no collector detail field is set.
func (d CollectorDetails) IsEmpty() bool {
	return d.Winery == nil && d.Vintage == nil && d.WineName == nil &&
		d.Artist == nil && d.Album == nil && d.ReleaseYear == nil
}

// DetectedItem is one physical object recognized in an image.
// EstimatedValue is in EUR; the currency is implicit, never embedded.
type DetectedItem struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	EstimatedValue   *float64         `json:"estimatedValue"`
	Quantity         *int             `json:"quantity"`
	Accuracy         *float64         `json:"accuracy"`
	ItemType         ItemType         `json:"itemType"`
	Tags             []string         `json:"tags"`
	CollectorDetails CollectorDetails `json:"collectorDetails"`
}

// EnrichedItem is a DetectedItem plus its enrichment outcome.
// CollectorWarning is only ever set when CollectorCategory is non-nil and
// CollectorData is nil; enrichment never removes or fails the item itself.
type EnrichedItem struct {
	DetectedItem
	CollectorCategory *ItemType   `json:"collectorCategory"`
	CollectorData     interface{} `json:"collectorData"`
	CollectorWarning  *string     `json:"collectorWarning,omitempty"`
}

// WineData is the stable record mapped from the wine lookup provider.
// Every key is always present: missing strings map to "Unknown", missing
// numerics to zero.
type WineData struct {
	WineName     string  `json:"wineName"`
	Winery       string  `json:"winery"`
	Vintage      int     `json:"vintage"`
	Region       string  `json:"region"`
	Country      string  `json:"country"`
	Rating       float64 `json:"rating"`
	RatingCount  int     `json:"ratingCount"`
	AveragePrice float64 `json:"averagePrice"`
	Currency     string  `json:"currency"`
	ImageURL     string  `json:"imageUrl"`
}

// VinylData is the stable record mapped from the Discogs provider.
// The coarse search fields are always populated; the pricing/community
// fields stay zero when the detail lookup is unavailable.
type VinylData struct {
	Artist        string  `json:"artist"`
	Album         string  `json:"album"`
	ReleaseYear   int     `json:"releaseYear"`
	Label         string  `json:"label"`
	CatalogNumber string  `json:"catalogNumber"`
	Genres        string  `json:"genres"`
	Styles        string  `json:"styles"`
	Country       string  `json:"country"`
	ThumbURL      string  `json:"thumbUrl"`
	LowestPrice   float64 `json:"lowestPrice"`
	NumForSale    int     `json:"numForSale"`
	CommunityHave int     `json:"communityHave"`
	CommunityWant int     `json:"communityWant"`
}

// CollectorStats aggregates one response's item sequence. Purely derived,
// recomputed per response, never persisted.
type CollectorStats struct {
	Total    int `json:"total"`
	Wine     int `json:"wine"`
	Vinyl    int `json:"vinyl"`
	General  int `json:"general"`
	Warnings int `json:"warnings"`
}
