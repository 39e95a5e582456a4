package wine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"curio_backend/internal/scan/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func wineItem() domain.DetectedItem {
	return domain.DetectedItem{
		Name:     "Château Margaux 2015",
		ItemType: domain.ItemTypeWine,
		CollectorDetails: domain.CollectorDetails{
			WineName: strPtr("Château Margaux"),
			Winery:   strPtr("Château Margaux"),
			Vintage:  intPtr(2015),
		},
	}
}

func TestEnrich_SuccessfulMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wines/search" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("vintage") != "2015" {
			t.Fatalf("expected vintage query, got %q", r.URL.Query().Get("vintage"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches": [{
			"name": "Château Margaux",
			"winery": {"name": "Château Margaux"},
			"vintage": 2015,
			"region": {"name": "Margaux", "country": "France"},
			"statistics": {"ratings_average": 4.6, "ratings_count": 12043},
			"price": {"amount": 455.0, "currency": "EUR"},
			"image_url": "https://img.example/margaux.jpg"
		}]}`))
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-key"))
	result := enricher.Enrich(context.Background(), wineItem())

	if result.CollectorCategory == nil || *result.CollectorCategory != domain.ItemTypeWine {
		t.Fatalf("expected wine category, got %v", result.CollectorCategory)
	}
	if result.CollectorWarning != nil {
		t.Fatalf("unexpected warning: %s", *result.CollectorWarning)
	}

	data, ok := result.CollectorData.(domain.WineData)
	if !ok {
		t.Fatalf("expected WineData, got %T", result.CollectorData)
	}
	if data.Vintage != 2015 {
		t.Fatalf("expected vintage 2015, got %d", data.Vintage)
	}
	if data.Region != "Margaux" || data.Country != "France" {
		t.Fatalf("unexpected region mapping: %q / %q", data.Region, data.Country)
	}
	if data.Rating != 4.6 || data.RatingCount != 12043 {
		t.Fatalf("unexpected rating mapping: %v / %d", data.Rating, data.RatingCount)
	}
}

func TestEnrich_SparseResponseFillsEveryKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches": [{"name": "Some Wine"}]}`))
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-key"))
	result := enricher.Enrich(context.Background(), wineItem())

	data, ok := result.CollectorData.(domain.WineData)
	if !ok {
		t.Fatalf("expected WineData, got %T", result.CollectorData)
	}
	if data.Winery != "Unknown" || data.Region != "Unknown" || data.Country != "Unknown" {
		t.Fatalf("missing strings not mapped to Unknown: %+v", data)
	}
	if data.Currency != "EUR" {
		t.Fatalf("expected implicit EUR currency, got %q", data.Currency)
	}
	// detected vintage backfills the missing provider vintage
	if data.Vintage != 2015 {
		t.Fatalf("expected backfilled vintage 2015, got %d", data.Vintage)
	}
}

func TestEnrich_NoMatchProducesWarning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-key"))
	result := enricher.Enrich(context.Background(), wineItem())

	if result.CollectorData != nil {
		t.Fatal("expected nil data on no match")
	}
	if result.CollectorWarning == nil {
		t.Fatal("expected warning on no match")
	}
	if result.Name != "Château Margaux 2015" {
		t.Fatal("item mutated by failed enrichment")
	}
}

func TestEnrich_ProviderErrorProducesWarning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-key"))
	result := enricher.Enrich(context.Background(), wineItem())

	if result.CollectorData != nil || result.CollectorWarning == nil {
		t.Fatal("expected degraded result on provider error")
	}
}

func TestEnrich_FallsBackToItemName(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	item := domain.DetectedItem{Name: "Mystery Red", ItemType: domain.ItemTypeWine}
	enricher := NewEnricher(NewClient(server.URL, "test-key"))
	enricher.Enrich(context.Background(), item)

	if gotQuery != "Mystery Red" {
		t.Fatalf("expected fallback to item name, got query %q", gotQuery)
	}
}
