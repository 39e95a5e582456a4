package vinyl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"curio_backend/internal/scan/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func vinylItem() domain.DetectedItem {
	return domain.DetectedItem{
		Name:     "The Dark Side of the Moon",
		ItemType: domain.ItemTypeVinyl,
		CollectorDetails: domain.CollectorDetails{
			Artist:      strPtr("Pink Floyd"),
			Album:       strPtr("The Dark Side of the Moon"),
			ReleaseYear: intPtr(1973),
		},
	}
}

const searchBody = `{"results": [{
	"id": 367084,
	"title": "Pink Floyd - The Dark Side Of The Moon",
	"year": "1973",
	"label": ["Harvest"],
	"catno": "SHVL 804",
	"genre": ["Rock"],
	"style": ["Psychedelic Rock", "Prog Rock"],
	"country": "UK",
	"thumb": "https://img.example/dsotm-thumb.jpg"
}]}`

const detailBody = `{
	"year": 1973,
	"country": "UK",
	"artists": [{"name": "Pink Floyd"}],
	"labels": [{"name": "Harvest", "catno": "SHVL 804"}],
	"genres": ["Rock"],
	"styles": ["Psychedelic Rock", "Prog Rock"],
	"lowest_price": 24.99,
	"num_for_sale": 312,
	"community": {"have": 120543, "want": 45210}
}`

func TestEnrich_TwoTierLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/database/search":
			if r.URL.Query().Get("artist") != "Pink Floyd" {
				t.Fatalf("unexpected artist query %q", r.URL.Query().Get("artist"))
			}
			w.Write([]byte(searchBody))
		case "/releases/367084":
			w.Write([]byte(detailBody))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-token"))
	result := enricher.Enrich(context.Background(), vinylItem())

	if result.CollectorWarning != nil {
		t.Fatalf("unexpected warning: %s", *result.CollectorWarning)
	}
	data, ok := result.CollectorData.(domain.VinylData)
	if !ok {
		t.Fatalf("expected VinylData, got %T", result.CollectorData)
	}
	if data.LowestPrice != 24.99 || data.NumForSale != 312 {
		t.Fatalf("detail pricing not merged: %+v", data)
	}
	if data.CommunityHave != 120543 || data.CommunityWant != 45210 {
		t.Fatalf("community numbers not merged: %+v", data)
	}
	if data.CatalogNumber != "SHVL 804" {
		t.Fatalf("expected catalog number, got %q", data.CatalogNumber)
	}
}

func TestEnrich_DetailFailureFallsBackToSearchShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/database/search":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(searchBody))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-token"))
	result := enricher.Enrich(context.Background(), vinylItem())

	if result.CollectorWarning != nil {
		t.Fatalf("detail failure must not fail enrichment, got warning %s", *result.CollectorWarning)
	}
	data, ok := result.CollectorData.(domain.VinylData)
	if !ok {
		t.Fatalf("expected VinylData, got %T", result.CollectorData)
	}
	if data.Artist != "Pink Floyd" || data.Album != "The Dark Side Of The Moon" {
		t.Fatalf("search title not split: %q / %q", data.Artist, data.Album)
	}
	if data.ReleaseYear != 1973 {
		t.Fatalf("expected year 1973 from search shape, got %d", data.ReleaseYear)
	}
	// pricing only exists on the detail shape
	if data.LowestPrice != 0 || data.NumForSale != 0 {
		t.Fatalf("pricing fields present without detail lookup: %+v", data)
	}
}

func TestEnrich_MissingArtistOrAlbumSkipsLookup(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	item := domain.DetectedItem{
		Name:             "Some record",
		ItemType:         domain.ItemTypeVinyl,
		CollectorDetails: domain.CollectorDetails{Artist: strPtr("Pink Floyd")},
	}

	enricher := NewEnricher(NewClient(server.URL, "test-token"))
	result := enricher.Enrich(context.Background(), item)

	if called {
		t.Fatal("provider called without required fields")
	}
	if result.CollectorData != nil || result.CollectorWarning == nil {
		t.Fatal("expected skip warning with nil data")
	}
}

func TestEnrich_NoMatchProducesWarning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	enricher := NewEnricher(NewClient(server.URL, "test-token"))
	result := enricher.Enrich(context.Background(), vinylItem())

	if result.CollectorData != nil || result.CollectorWarning == nil {
		t.Fatal("expected degraded result on no match")
	}
	if result.CollectorCategory == nil || *result.CollectorCategory != domain.ItemTypeVinyl {
		t.Fatal("expected vinyl category preserved on miss")
	}
}
