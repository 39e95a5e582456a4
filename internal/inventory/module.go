// Package inventory provides the inventory bounded context module.
package inventory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"curio_backend/internal/events"
	apphttp "curio_backend/internal/http"
	"curio_backend/internal/inventory/handler"
	"curio_backend/internal/inventory/repository"
	"curio_backend/internal/inventory/service"
	"curio_backend/platform/logger"
	"curio_backend/platform/validator"
)

// Module is the inventory bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the inventory module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inventory"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts inventory routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/inventory/items", m.handler.ListItems)
}

// RegisterHandlers subscribes to domain events for persisting scan results.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.ScanCompleted{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ScanCompleted:
		return m.service.RecordScan(ctx, e)
	default:
		return nil
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
