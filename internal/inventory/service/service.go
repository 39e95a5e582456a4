// Package service implements inventory business logic.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"curio_backend/internal/events"
	"curio_backend/internal/inventory/repository"
	"curio_backend/internal/inventory/transport"
	"curio_backend/internal/scan/domain"
	"curio_backend/platform/logger"
)

const (
	defaultPageSize = 20
	maxVoiceMatches = 5
)

// Service coordinates inventory persistence and queries.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates the inventory service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// collectorEnvelope is the JSONB shape stored alongside each item.
type collectorEnvelope struct {
	Category domain.ItemType `json:"category"`
	Data     interface{}     `json:"data,omitempty"`
	Warning  *string         `json:"warning,omitempty"`
}

// RecordScan persists the enriched items of a completed scan.
func (s *Service) RecordScan(ctx context.Context, event events.ScanCompleted) error {
	params := make([]repository.InsertItemParams, 0, len(event.Items))
	for _, item := range event.Items {
		p, err := insertParams(event, item)
		if err != nil {
			return err
		}
		params = append(params, p)
	}

	if err := s.repo.InsertBatch(ctx, params); err != nil {
		return err
	}

	s.log.Info("scan items recorded",
		"tenantId", event.TenantID.String(),
		"count", len(params),
	)
	return nil
}

func insertParams(event events.ScanCompleted, item domain.EnrichedItem) (repository.InsertItemParams, error) {
	var collector []byte
	if item.CollectorCategory != nil {
		encoded, err := json.Marshal(collectorEnvelope{
			Category: *item.CollectorCategory,
			Data:     item.CollectorData,
			Warning:  item.CollectorWarning,
		})
		if err != nil {
			return repository.InsertItemParams{}, fmt.Errorf("encode collector data: %w", err)
		}
		collector = encoded
	}

	return repository.InsertItemParams{
		TenantID:       event.TenantID,
		UserID:         event.UserID,
		Name:           item.Name,
		Description:    item.Description,
		EstimatedValue: item.EstimatedValue,
		Quantity:       item.Quantity,
		Accuracy:       item.Accuracy,
		ItemType:       string(item.ItemType),
		Tags:           item.Tags,
		Collector:      collector,
		SourceImageKey: event.ImageKey,
	}, nil
}

// ListItems returns a paged inventory listing for the tenant.
func (s *Service) ListItems(ctx context.Context, tenantID uuid.UUID, req transport.ListItemsRequest) (*transport.ListItemsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	items, total, err := s.repo.List(ctx, repository.ListItemsParams{
		TenantID:  tenantID,
		Search:    req.Search,
		ItemType:  req.ItemType,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}

	return &transport.ListItemsResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// FindByName returns the newest items matching the given name, for the
// voice webhook lookup.
func (s *Service) FindByName(ctx context.Context, tenantID uuid.UUID, name string) ([]transport.ItemResponse, error) {
	items, err := s.repo.FindByName(ctx, tenantID, name, maxVoiceMatches)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, nil
}

func toItemResponse(item repository.Item) transport.ItemResponse {
	return transport.ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		EstimatedValue: item.EstimatedValue,
		Quantity:       item.Quantity,
		Accuracy:       item.Accuracy,
		ItemType:       item.ItemType,
		Tags:           item.Tags,
		Collector:      json.RawMessage(item.Collector),
		SourceImageKey: item.SourceImageKey,
		CreatedAt:      item.CreatedAt,
	}
}
