// Package voice provides the voice assistant webhook module.
package voice

import (
	apphttp "curio_backend/internal/http"
	"curio_backend/internal/voice/handler"
	"curio_backend/internal/voice/service"
	"curio_backend/platform/logger"
	"curio_backend/platform/validator"
)

// Module is the voice bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the voice module.
func NewModule(inventory service.InventoryFinder, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(inventory, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "voice"
}

// RegisterRoutes mounts voice routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/voice/webhook", m.handler.Webhook)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
