package enrichment

import (
	"context"
	"testing"
	"time"

	"curio_backend/internal/scan/domain"
	"curio_backend/platform/logger"
)

type testEnrichmentConfig struct{}

func (testEnrichmentConfig) GetEnrichmentTimeout() time.Duration      { return 100 * time.Millisecond }
func (testEnrichmentConfig) GetEnrichmentBatchTimeout() time.Duration { return 1 * time.Second }
func (testEnrichmentConfig) GetEnrichmentConcurrency() int            { return 8 }

// delayedEnricher succeeds after a fixed delay, echoing the item name into
// the data so tests can check result alignment.
type delayedEnricher struct {
	category domain.ItemType
	delay    time.Duration
}

func (e *delayedEnricher) Enrich(ctx context.Context, item domain.DetectedItem) domain.EnrichedItem {
	select {
	case <-time.After(e.delay):
		return Succeeded(item, e.category, item.Name)
	case <-ctx.Done():
		return Failed(item, e.category, "lookup timed out")
	}
}

type failingEnricher struct {
	category domain.ItemType
}

func (e *failingEnricher) Enrich(ctx context.Context, item domain.DetectedItem) domain.EnrichedItem {
	return Failed(item, e.category, "provider unavailable")
}

func wineItem(name string) domain.DetectedItem {
	return domain.DetectedItem{Name: name, ItemType: domain.ItemTypeWine}
}

func vinylItem(name string) domain.DetectedItem {
	return domain.DetectedItem{Name: name, ItemType: domain.ItemTypeVinyl}
}

func newTestOrchestrator(wine, vinyl Enricher) *Orchestrator {
	return NewOrchestrator(NewRouter(wine, vinyl), testEnrichmentConfig{}, logger.New("test"))
}

func TestRouter_UnknownTypeRoutesToNil(t *testing.T) {
	router := NewRouter(&failingEnricher{}, &failingEnricher{})

	for _, itemType := range []domain.ItemType{domain.ItemTypeGeneral, "furniture", "", "WINE"} {
		if enricher := router.Route(itemType); enricher != nil {
			t.Fatalf("expected nil enricher for %q", itemType)
		}
	}
	if router.Route(domain.ItemTypeWine) == nil {
		t.Fatal("expected wine enricher")
	}
}

func TestEnrichAll_PreservesInputOrder(t *testing.T) {
	// wine lookups are slow, vinyl lookups fast: completion order inverts
	// input order, output order must not.
	o := newTestOrchestrator(
		&delayedEnricher{category: domain.ItemTypeWine, delay: 50 * time.Millisecond},
		&delayedEnricher{category: domain.ItemTypeVinyl, delay: time.Millisecond},
	)

	items := []domain.DetectedItem{
		wineItem("first"), vinylItem("second"), wineItem("third"), vinylItem("fourth"),
	}

	results, stats := o.EnrichAll(context.Background(), items)

	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, item := range items {
		if results[i].Name != item.Name {
			t.Fatalf("order broken at %d: expected %q, got %q", i, item.Name, results[i].Name)
		}
	}
	if stats.Wine != 2 || stats.Vinyl != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestEnrichAll_FailureIsolatedPerItem(t *testing.T) {
	o := newTestOrchestrator(
		&failingEnricher{category: domain.ItemTypeWine},
		&delayedEnricher{category: domain.ItemTypeVinyl, delay: time.Millisecond},
	)

	items := []domain.DetectedItem{wineItem("broken"), vinylItem("fine")}

	results, stats := o.EnrichAll(context.Background(), items)

	if results[0].CollectorData != nil {
		t.Fatal("expected nil data for failed enrichment")
	}
	if results[0].CollectorWarning == nil {
		t.Fatal("expected warning for failed enrichment")
	}
	if results[0].Name != "broken" {
		t.Fatalf("failed item mutated: %q", results[0].Name)
	}
	if results[1].CollectorData == nil || results[1].CollectorWarning != nil {
		t.Fatal("sibling enrichment affected by failure")
	}
	if stats.Warnings != 1 {
		t.Fatalf("expected 1 warning in stats, got %d", stats.Warnings)
	}
}

func TestEnrichAll_GeneralItemsPassThrough(t *testing.T) {
	o := newTestOrchestrator(&failingEnricher{}, &failingEnricher{})

	items := []domain.DetectedItem{{Name: "lamp", ItemType: domain.ItemTypeGeneral}}

	results, stats := o.EnrichAll(context.Background(), items)

	if results[0].CollectorCategory != nil {
		t.Fatal("expected nil category for general item")
	}
	if results[0].CollectorData != nil || results[0].CollectorWarning != nil {
		t.Fatal("expected no data and no warning for general item")
	}
	if stats.General != 1 || stats.Warnings != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestEnrichAll_TimeoutDegradesToWarning(t *testing.T) {
	o := newTestOrchestrator(
		&delayedEnricher{category: domain.ItemTypeWine, delay: 5 * time.Second},
		&delayedEnricher{category: domain.ItemTypeVinyl, delay: time.Millisecond},
	)

	items := []domain.DetectedItem{wineItem("slow"), vinylItem("fast")}

	results, _ := o.EnrichAll(context.Background(), items)

	if results[0].CollectorWarning == nil {
		t.Fatal("expected timeout warning")
	}
	if results[1].CollectorData == nil {
		t.Fatal("timeout cancelled a sibling lookup")
	}
}

func TestEnrichAll_EmptyBatch(t *testing.T) {
	o := newTestOrchestrator(&failingEnricher{}, &failingEnricher{})

	results, stats := o.EnrichAll(context.Background(), nil)

	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
	if stats.Total != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
