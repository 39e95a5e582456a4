// Package service implements the scan processing pipeline: fetch image,
// call the vision model, parse and normalize its output, enrich classified
// items, and assemble the response.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"curio_backend/internal/adapters/storage"
	"curio_backend/internal/enrichment"
	"curio_backend/internal/events"
	"curio_backend/internal/scan/domain"
	"curio_backend/internal/scan/transport"
	"curio_backend/internal/vision"
	"curio_backend/platform/apperr"
	"curio_backend/platform/logger"
)

// CleanupScheduler schedules a deferred purge of a processed source image.
// Nil-safe: a nil scheduler disables deferred cleanup.
type CleanupScheduler interface {
	SchedulePurge(ctx context.Context, bucket, fileKey string, runAt time.Time) error
}

// Service orchestrates scan processing.
type Service struct {
	storage        storage.Service
	bucket         string
	analyzer       vision.Analyzer
	orchestrator   *enrichment.Orchestrator
	bus            events.Bus
	cleanup        CleanupScheduler
	retention      time.Duration
	warnThreshold  int
	log            *logger.Logger
}

func New(
	storageSvc storage.Service,
	bucket string,
	analyzer vision.Analyzer,
	orchestrator *enrichment.Orchestrator,
	bus events.Bus,
	cleanup CleanupScheduler,
	retention time.Duration,
	warnThreshold int,
	log *logger.Logger,
) *Service {
	return &Service{
		storage:       storageSvc,
		bucket:        bucket,
		analyzer:      analyzer,
		orchestrator:  orchestrator,
		bus:           bus,
		cleanup:       cleanup,
		retention:     retention,
		warnThreshold: warnThreshold,
		log:           log,
	}
}

// Process runs the multi-item pipeline over one uploaded image.
func (s *Service) Process(ctx context.Context, tenantID, userID uuid.UUID, req transport.ProcessRequest) (*transport.ProcessResponse, error) {
	start := time.Now()

	img, err := s.fetchImage(ctx, req.ImageKey)
	if err != nil {
		return nil, err
	}

	tags := ResolveTags(req.Tags)
	prompt := BuildScanPrompt(req.Language, tags)

	result, err := s.analyzer.Generate(ctx, prompt, []vision.Image{*img})
	if err != nil {
		return nil, err
	}

	items, dropped, err := ParseItems(result.Text)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.log.Warn("malformed items dropped from model output", "dropped", dropped, "kept", len(items))
	}

	enriched, stats := s.orchestrator.EnrichAll(ctx, items)

	usage := BuildTokenUsage(result.Usage)
	warnings := make([]string, 0, 1)
	if warning, ok := TokenWarning(usage, s.warnThreshold); ok {
		warnings = append(warnings, warning)
	}

	deleted := s.disposeSource(ctx, req.ImageKey)

	s.bus.Publish(ctx, events.ScanCompleted{
		BaseEvent: events.NewBaseEvent(),
		TenantID:  tenantID,
		UserID:    userID,
		ImageKey:  req.ImageKey,
		Language:  req.Language,
		Items:     enriched,
	})

	return &transport.ProcessResponse{
		Items:                 enriched,
		TokenUsage:            usage,
		Warnings:              warnings,
		ProcessingTimeSeconds: time.Since(start).Seconds(),
		CollectorStats:        stats,
		SourceImageDeleted:    deleted,
	}, nil
}

// ProcessSingle runs the single-item pipeline. Unlike Process, a malformed
// model record fails the request: there is no partial result to return.
func (s *Service) ProcessSingle(ctx context.Context, tenantID, userID uuid.UUID, req transport.ProcessSingleRequest) (*transport.ProcessSingleResponse, error) {
	start := time.Now()

	img, err := s.fetchImage(ctx, req.ImageKey)
	if err != nil {
		return nil, err
	}

	tags := ResolveTags(req.Tags)
	prompt := BuildSingleScanPrompt(req.Language, tags, req.ItemName)

	result, err := s.analyzer.Generate(ctx, prompt, []vision.Image{*img})
	if err != nil {
		return nil, err
	}

	item, err := ParseItem(result.Text)
	if err != nil {
		return nil, err
	}

	enriched, _ := s.orchestrator.EnrichAll(ctx, []domain.DetectedItem{*item})

	usage := BuildTokenUsage(result.Usage)
	warnings := make([]string, 0, 1)
	if warning, ok := TokenWarning(usage, s.warnThreshold); ok {
		warnings = append(warnings, warning)
	}

	deleted := s.disposeSource(ctx, req.ImageKey)

	s.bus.Publish(ctx, events.ScanCompleted{
		BaseEvent: events.NewBaseEvent(),
		TenantID:  tenantID,
		UserID:    userID,
		ImageKey:  req.ImageKey,
		Language:  req.Language,
		Items:     enriched,
	})

	resp := &transport.ProcessSingleResponse{
		Item:                  enriched[0],
		TokenUsage:            usage,
		Warnings:              warnings,
		ProcessingTimeSeconds: time.Since(start).Seconds(),
		SourceImageDeleted:    deleted,
	}
	if req.ItemName != "" {
		searched := req.ItemName
		resp.SearchedFor = &searched
	}
	return resp, nil
}

func (s *Service) fetchImage(ctx context.Context, fileKey string) (*vision.Image, error) {
	obj, err := s.storage.FetchObject(ctx, s.bucket, fileKey)
	if err != nil {
		s.log.StorageError("fetch", fileKey, err)
		return nil, apperr.Wrap(apperr.KindNotFound, "scan image could not be retrieved", err).WithOp("scan.fetch")
	}

	s.logExifDiagnostics(fileKey, obj.Data)

	return &vision.Image{Data: obj.Data, MIMEType: obj.ContentType}, nil
}

// disposeSource deletes the processed image. Best-effort: a failed delete
// is reported as false in the response and handed to the deferred cleanup
// worker instead, never raised as an error.
func (s *Service) disposeSource(ctx context.Context, fileKey string) bool {
	if err := s.storage.DeleteObject(ctx, s.bucket, fileKey); err != nil {
		s.log.StorageError("delete", fileKey, err)
		if s.cleanup != nil {
			if err := s.cleanup.SchedulePurge(ctx, s.bucket, fileKey, time.Now().Add(s.retention)); err != nil {
				s.log.Error("failed to schedule deferred image purge", "fileKey", fileKey, "error", err)
			}
		}
		return false
	}
	return true
}
