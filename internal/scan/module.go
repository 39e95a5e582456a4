// Package scan provides the scan bounded context module: image analysis,
// parsing, enrichment and response assembly.
package scan

import (
	"context"

	"curio_backend/internal/adapters/storage"
	"curio_backend/internal/enrichment"
	"curio_backend/internal/enrichment/vinyl"
	"curio_backend/internal/enrichment/wine"
	"curio_backend/internal/events"
	apphttp "curio_backend/internal/http"
	"curio_backend/internal/scan/handler"
	"curio_backend/internal/scan/service"
	"curio_backend/internal/vision"
	"curio_backend/platform/config"
	"curio_backend/platform/logger"
	"curio_backend/platform/validator"
)

// Module is the scan bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// Config combines the configuration surfaces the scan module needs.
type Config interface {
	config.MinIOConfig
	config.VisionConfig
	config.WineLookupConfig
	config.DiscogsConfig
	config.EnrichmentConfig
	config.CleanupConfig
}

// NewModule creates and initializes the scan module.
func NewModule(
	ctx context.Context,
	storageSvc storage.Service,
	bus events.Bus,
	cleanup service.CleanupScheduler,
	val *validator.Validator,
	cfg Config,
	log *logger.Logger,
) (*Module, error) {
	analyzer, err := vision.NewGeminiClient(ctx, cfg.GetGeminiAPIKey(), cfg.GetVisionModel(), log)
	if err != nil {
		return nil, err
	}

	wineEnricher := wine.NewEnricher(wine.NewClient(cfg.GetWineAPIBaseURL(), cfg.GetWineAPIKey()))
	vinylEnricher := vinyl.NewEnricher(vinyl.NewClient(cfg.GetDiscogsBaseURL(), cfg.GetDiscogsToken()))

	orchestrator := enrichment.NewOrchestrator(
		enrichment.NewRouter(wineEnricher, vinylEnricher),
		cfg,
		log,
	)

	svc := service.New(
		storageSvc,
		cfg.GetMinioBucketScanUploads(),
		analyzer,
		orchestrator,
		bus,
		cleanup,
		cfg.GetImageRetention(),
		int(cfg.GetTokenWarnThreshold()),
		log,
	)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scan"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts scan routes on the provided router context.
// Scan endpoints carry the stricter rate limit: every accepted request
// triggers a paid vision call.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	scanGroup := ctx.Protected.Group("/scan")
	scanGroup.Use(ctx.ScanRateLimiter.RateLimit())
	scanGroup.POST("/process", m.handler.Process)
	scanGroup.POST("/process-single", m.handler.ProcessSingle)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
