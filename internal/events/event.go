// Package events provides domain event definitions for decoupled
// communication between modules. Infrastructure (Bus, Handler) is in
// platform/events.
package events

import (
	"github.com/google/uuid"

	"curio_backend/internal/scan/domain"
	"curio_backend/platform/events"
	"curio_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Scan Domain Events
// =============================================================================

// ScanCompleted is published after a scan request finished processing. The
// inventory module persists the enriched items in response.
type ScanCompleted struct {
	BaseEvent
	TenantID uuid.UUID             `json:"tenantId"`
	UserID   uuid.UUID             `json:"userId"`
	ImageKey string                `json:"imageKey"`
	Language string                `json:"language"`
	Items    []domain.EnrichedItem `json:"items"`
}

func (e ScanCompleted) EventName() string { return "scan.completed" }

// ScanImageProcessed is published when the source image is eligible for
// deferred deletion from storage.
type ScanImageProcessed struct {
	BaseEvent
	TenantID uuid.UUID `json:"tenantId"`
	ImageKey string    `json:"imageKey"`
}

func (e ScanImageProcessed) EventName() string { return "scan.image.processed" }
