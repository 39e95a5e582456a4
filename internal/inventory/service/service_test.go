package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"curio_backend/internal/events"
	"curio_backend/internal/inventory/repository"
	"curio_backend/internal/inventory/transport"
	"curio_backend/internal/scan/domain"
	"curio_backend/platform/logger"
)

type fakeRepo struct {
	inserted []repository.InsertItemParams
	items    []repository.Item
	total    int
	listArgs repository.ListItemsParams
}

func (f *fakeRepo) InsertBatch(ctx context.Context, params []repository.InsertItemParams) error {
	f.inserted = append(f.inserted, params...)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, params repository.ListItemsParams) ([]repository.Item, int, error) {
	f.listArgs = params
	return f.items, f.total, nil
}

func (f *fakeRepo) FindByName(ctx context.Context, tenantID uuid.UUID, name string, limit int) ([]repository.Item, error) {
	return f.items, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestRecordScan_PersistsCollectorEnvelope(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("test"))

	wine := domain.ItemTypeWine
	event := events.ScanCompleted{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		ImageKey: "tenant/scan.jpg",
		Items: []domain.EnrichedItem{
			{
				DetectedItem: domain.DetectedItem{
					Name:           "Barolo 2015",
					ItemType:       domain.ItemTypeWine,
					EstimatedValue: floatPtr(45),
					Quantity:       intPtr(1),
				},
				CollectorCategory: &wine,
				CollectorData:     domain.WineData{Winery: "Gaja"},
			},
			{
				DetectedItem: domain.DetectedItem{Name: "Old lamp", ItemType: domain.ItemTypeGeneral},
			},
		},
	}

	if err := svc.RecordScan(context.Background(), event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 inserts, got %d", len(repo.inserted))
	}

	var envelope collectorEnvelope
	if err := json.Unmarshal(repo.inserted[0].Collector, &envelope); err != nil {
		t.Fatalf("collector column is not valid JSON: %v", err)
	}
	if envelope.Category != domain.ItemTypeWine {
		t.Fatalf("expected wine category, got %q", envelope.Category)
	}

	if repo.inserted[1].Collector != nil {
		t.Fatal("general item must not carry collector data")
	}
	if repo.inserted[0].SourceImageKey != "tenant/scan.jpg" {
		t.Fatalf("unexpected source image key %q", repo.inserted[0].SourceImageKey)
	}
}

func TestListItems_PaginationDefaults(t *testing.T) {
	repo := &fakeRepo{total: 42}
	svc := New(repo, logger.New("test"))

	resp, err := svc.ListItems(context.Background(), uuid.New(), transport.ListItemsRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Page != 1 || resp.PageSize != defaultPageSize {
		t.Fatalf("expected defaults page=1 pageSize=%d, got %d/%d", defaultPageSize, resp.Page, resp.PageSize)
	}
	if repo.listArgs.Offset != 0 || repo.listArgs.Limit != defaultPageSize {
		t.Fatalf("unexpected offset/limit %d/%d", repo.listArgs.Offset, repo.listArgs.Limit)
	}
	if resp.Total != 42 {
		t.Fatalf("expected total 42, got %d", resp.Total)
	}
}

func TestListItems_OffsetFromPage(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("test"))

	_, err := svc.ListItems(context.Background(), uuid.New(), transport.ListItemsRequest{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.listArgs.Offset != 20 || repo.listArgs.Limit != 10 {
		t.Fatalf("unexpected offset/limit %d/%d", repo.listArgs.Offset, repo.listArgs.Limit)
	}
}
