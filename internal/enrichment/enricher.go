// Package enrichment routes classified items to external lookup providers
// and fans the lookups out concurrently. Provider failures degrade to a
// per-item warning; they never fail the request.
package enrichment

import (
	"context"

	"curio_backend/internal/scan/domain"
)

// Enricher looks up collector data for one item. Implementations never
// return an error: every failure path yields an EnrichedItem with nil
// CollectorData and a populated CollectorWarning.
type Enricher interface {
	Enrich(ctx context.Context, item domain.DetectedItem) domain.EnrichedItem
}

// Router maps an item's declared type to its enrichment strategy. Anything
// other than the two known collector types maps to nil, including missing
// or malformed values.
type Router struct {
	wine  Enricher
	vinyl Enricher
}

func NewRouter(wine, vinyl Enricher) *Router {
	return &Router{wine: wine, vinyl: vinyl}
}

func (r *Router) Route(itemType domain.ItemType) Enricher {
	switch itemType {
	case domain.ItemTypeWine:
		return r.wine
	case domain.ItemTypeVinyl:
		return r.vinyl
	default:
		return nil
	}
}

// Passthrough wraps an item that needs no enrichment: no category, no data,
// no warning.
func Passthrough(item domain.DetectedItem) domain.EnrichedItem {
	return domain.EnrichedItem{DetectedItem: item}
}

// Failed wraps an item whose enrichment could not produce data. The item
// itself is carried through unmodified.
func Failed(item domain.DetectedItem, category domain.ItemType, warning string) domain.EnrichedItem {
	return domain.EnrichedItem{
		DetectedItem:      item,
		CollectorCategory: &category,
		CollectorWarning:  &warning,
	}
}

// Succeeded wraps an item with its provider data attached.
func Succeeded(item domain.DetectedItem, category domain.ItemType, data interface{}) domain.EnrichedItem {
	return domain.EnrichedItem{
		DetectedItem:      item,
		CollectorCategory: &category,
		CollectorData:     data,
	}
}
