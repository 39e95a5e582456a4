package enrichment

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"curio_backend/internal/scan/domain"
	"curio_backend/platform/config"
	"curio_backend/platform/logger"
)

// Orchestrator runs enrichment over an item batch concurrently. Results are
// index-aligned with the input: output order equals input order regardless
// of which provider call finishes first.
type Orchestrator struct {
	router         *Router
	logger         *logger.Logger
	perItemTimeout time.Duration
	batchTimeout   time.Duration
	concurrency    int
}

func NewOrchestrator(router *Router, cfg config.EnrichmentConfig, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		router:         router,
		logger:         log,
		perItemTimeout: cfg.GetEnrichmentTimeout(),
		batchTimeout:   cfg.GetEnrichmentBatchTimeout(),
		concurrency:    cfg.GetEnrichmentConcurrency(),
	}
}

// EnrichAll fans out one enrichment per item and joins before returning.
// Each item's outcome is isolated in its own result slot: a timed-out or
// failed lookup degrades that one item and does not cancel its siblings.
// The batch timeout caps total fan-out latency on top of the per-item
// timeouts, so a large batch cannot outlive the caller indefinitely.
func (o *Orchestrator) EnrichAll(ctx context.Context, items []domain.DetectedItem) ([]domain.EnrichedItem, domain.CollectorStats) {
	results := make([]domain.EnrichedItem, len(items))
	if len(items) == 0 {
		return results, domain.CollectorStats{}
	}

	batchCtx, cancel := context.WithTimeout(ctx, o.batchTimeout)
	defer cancel()

	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			enricher := o.router.Route(item.ItemType)
			if enricher == nil {
				results[i] = Passthrough(item)
				return nil
			}

			itemCtx, itemCancel := context.WithTimeout(batchCtx, o.perItemTimeout)
			defer itemCancel()

			results[i] = enricher.Enrich(itemCtx, item)
			if results[i].CollectorWarning != nil {
				o.logger.EnrichmentMiss(string(item.ItemType), item.Name, *results[i].CollectorWarning)
			}
			return nil
		})
	}

	// Goroutines never return errors; Wait is purely the join point.
	_ = g.Wait()

	return results, Stats(results)
}

// Stats aggregates category and warning counts over an enriched batch.
func Stats(items []domain.EnrichedItem) domain.CollectorStats {
	stats := domain.CollectorStats{Total: len(items)}
	for _, item := range items {
		switch {
		case item.CollectorCategory == nil:
			stats.General++
		case *item.CollectorCategory == domain.ItemTypeWine:
			stats.Wine++
		case *item.CollectorCategory == domain.ItemTypeVinyl:
			stats.Vinyl++
		default:
			stats.General++
		}
		if item.CollectorWarning != nil {
			stats.Warnings++
		}
	}
	return stats
}
