// Package service implements the voice webhook lookup logic.
package service

import (
	"context"

	"github.com/google/uuid"

	invtransport "curio_backend/internal/inventory/transport"
	"curio_backend/internal/voice/transport"
	"curio_backend/platform/logger"
)

// InventoryFinder is the read-only inventory surface the voice webhook needs.
type InventoryFinder interface {
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) ([]invtransport.ItemResponse, error)
}

// Service answers voice assistant lookups against the tenant's inventory.
type Service struct {
	inventory InventoryFinder
	log       *logger.Logger
}

// New creates the voice service.
func New(inventory InventoryFinder, log *logger.Logger) *Service {
	return &Service{inventory: inventory, log: log}
}

// Lookup finds items by name and composes a localized spoken reply.
func (s *Service) Lookup(ctx context.Context, tenantID uuid.UUID, req transport.WebhookRequest) (*transport.WebhookResponse, error) {
	language := resolveLanguage(req.Language)

	found, err := s.inventory.FindByName(ctx, tenantID, req.ItemName)
	if err != nil {
		return nil, err
	}

	items := make([]spokenItem, 0, len(found))
	for _, f := range found {
		items = append(items, spokenItem{
			Name:           f.Name,
			EstimatedValue: f.EstimatedValue,
			Quantity:       f.Quantity,
		})
	}

	s.log.Info("voice lookup",
		"tenantId", tenantID.String(),
		"language", language,
		"matches", len(items),
	)

	return &transport.WebhookResponse{
		SpokenText: buildSpokenText(language, req.ItemName, items),
		Matches:    len(items),
		Language:   language,
	}, nil
}
