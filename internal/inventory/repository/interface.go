package repository

import (
	"context"

	"github.com/google/uuid"
)

// Item is a persisted inventory item produced by a completed scan.
type Item struct {
	ID             uuid.UUID `db:"id"`
	TenantID       uuid.UUID `db:"tenant_id"`
	UserID         uuid.UUID `db:"user_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	EstimatedValue *float64  `db:"estimated_value"`
	Quantity       *int      `db:"quantity"`
	Accuracy       *float64  `db:"accuracy"`
	ItemType       string    `db:"item_type"`
	Tags           []string  `db:"tags"`
	Collector      []byte    `db:"collector"`
	SourceImageKey string    `db:"source_image_key"`
	CreatedAt      string    `db:"created_at"`
}

// InsertItemParams contains data for persisting one scanned item.
type InsertItemParams struct {
	TenantID       uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    string
	EstimatedValue *float64
	Quantity       *int
	Accuracy       *float64
	ItemType       string
	Tags           []string
	Collector      []byte
	SourceImageKey string
}

// ListItemsParams defines filters for listing inventory items.
type ListItemsParams struct {
	TenantID  uuid.UUID
	Search    string
	ItemType  string
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
}

// Repository defines inventory persistence operations.
type Repository interface {
	InsertBatch(ctx context.Context, params []InsertItemParams) error
	List(ctx context.Context, params ListItemsParams) ([]Item, int, error)
	FindByName(ctx context.Context, tenantID uuid.UUID, name string, limit int) ([]Item, error)
}
