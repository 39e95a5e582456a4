package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `id, tenant_id, user_id, name, description, estimated_value,
	quantity, accuracy, item_type, tags, collector, source_image_key, created_at`

// Repo implements the inventory repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// InsertBatch persists a batch of scanned items in a single round trip.
func (r *Repo) InsertBatch(ctx context.Context, params []InsertItemParams) error {
	if len(params) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO inventory_items (
			tenant_id, user_id, name, description, estimated_value,
			quantity, accuracy, item_type, tags, collector, source_image_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, p := range params {
		batch.Queue(query,
			p.TenantID, p.UserID, p.Name, p.Description, p.EstimatedValue,
			p.Quantity, p.Accuracy, p.ItemType, p.Tags, p.Collector, p.SourceImageKey,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range params {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert inventory item: %w", err)
		}
	}
	return nil
}

// List lists inventory items with filters and pagination.
func (r *Repo) List(ctx context.Context, params ListItemsParams) ([]Item, int, error) {
	whereClauses := []string{"tenant_id = $1"}
	args := []interface{}{params.TenantID}
	argIdx := 2

	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.ItemType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("item_type = $%d", argIdx))
		args = append(args, params.ItemType)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inventory_items WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory items: %w", err)
	}

	sortColumn := "created_at"
	switch params.SortBy {
	case "name":
		sortColumn = "name"
	case "estimatedValue":
		sortColumn = "estimated_value"
	case "itemType":
		sortColumn = "item_type"
	}

	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM inventory_items
		WHERE %s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d
	`, itemColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate inventory items: %w", rows.Err())
	}

	return items, total, nil
}

// FindByName finds items whose name matches the given term, newest first.
func (r *Repo) FindByName(ctx context.Context, tenantID uuid.UUID, name string, limit int) ([]Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inventory_items
		WHERE tenant_id = $1 AND name ILIKE $2
		ORDER BY created_at DESC
		LIMIT $3
	`, itemColumns)

	rows, err := r.pool.Query(ctx, query, tenantID, "%"+name+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("find inventory items by name: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate inventory items: %w", rows.Err())
	}

	return items, nil
}

func scanItem(rows pgx.Rows) (Item, error) {
	var item Item
	var createdAt time.Time
	if err := rows.Scan(
		&item.ID, &item.TenantID, &item.UserID, &item.Name, &item.Description,
		&item.EstimatedValue, &item.Quantity, &item.Accuracy, &item.ItemType,
		&item.Tags, &item.Collector, &item.SourceImageKey, &createdAt,
	); err != nil {
		return Item{}, fmt.Errorf("scan inventory item: %w", err)
	}
	item.CreatedAt = createdAt.Format(time.RFC3339)
	return item, nil
}
