package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/bidscan/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of announcements analyzed at once.
const DefaultConcurrency = 4

// Job pairs an announcement with its fetched document.
type Job struct {
	Announcement model.Announcement
	Document     model.Document
}

// BatchProcessor assembles many announcements concurrently. Results are
// stored by index, so output order always equals input order.
type BatchProcessor struct {
	assembler   *Assembler
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent assemblies.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor around assembler.
func NewBatchProcessor(assembler *Assembler, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		assembler:   assembler,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch assembles every job. On cancellation the records assembled
// so far are returned together with the context error; unfinished slots
// hold zero records.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, jobs []Job) ([]model.AnnouncementRecord, error) {
	bp.logger.Info("starting batch processing",
		"total_announcements", len(jobs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()
	results := make([]model.AnnouncementRecord, len(jobs))

	err := bp.ProcessBatchWithCallback(ctx, jobs, func(record model.AnnouncementRecord, index int) {
		// Each index is written by exactly one goroutine.
		results[index] = record
	})

	bp.logger.Info("batch processing complete",
		"total_announcements", len(jobs),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// ProcessBatchWithCallback assembles every job and calls callback with each
// record and its job index as soon as it is ready. The callback runs on
// worker goroutines and must be safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	jobs []Job,
	callback func(record model.AnnouncementRecord, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			record, err := bp.assembler.Assemble(ctx, job.Announcement, job.Document)
			if err != nil {
				bp.logger.Warn("announcement failed",
					"title", job.Announcement.Title,
					"error", err,
				)
				return err
			}

			bp.logger.Debug("announcement assembled",
				"title", job.Announcement.Title,
				"index", i+1,
				"total", len(jobs),
				"outcome", record.Outcome.Label(),
			)

			callback(record, i)
			return nil
		})
	}

	return g.Wait()
}
