package cleanup

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"curio_backend/internal/adapters/storage"
	"curio_backend/platform/config"
	"curio_backend/platform/logger"
)

// Worker processes deferred image purge tasks.
type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	storage storage.Service
	log     *logger.Logger
}

// NewWorker creates the cleanup worker.
func NewWorker(cfg config.CleanupConfig, storageSvc storage.Service, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:  server,
		mux:     mux,
		storage: storageSvc,
		log:     log,
	}

	mux.HandleFunc(TaskImagePurge, w.handleImagePurge)

	return w, nil
}

func (w *Worker) handleImagePurge(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseImagePurgePayload(task)
	if err != nil {
		return err
	}

	// Removing an already-deleted object succeeds, so a race with the
	// immediate delete path is harmless.
	if err := w.storage.DeleteObject(ctx, payload.Bucket, payload.FileKey); err != nil {
		return err
	}

	w.log.Info("source image purged",
		"bucket", payload.Bucket,
		"fileKey", payload.FileKey,
	)
	return nil
}

// Run starts the worker and blocks until the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("cleanup worker stopped", "error", err)
	}
}
