package crawls

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/services/analyzer"
	"metaaudit/internal/services/snapshots"
)

// Process runs a claimed (RUNNING) job to a terminal status. Items are
// processed one at a time. An item failure is logged, recorded as a page
// error and skipped. Only enumeration failures and failures to update the job
// record itself end the job as FAILED; those are also returned.
func (s *Service) Process(ctx context.Context, job domain.CrawlJob) error {
	log := s.log.With(logger.String("job_id", job.ID))
	started := s.now()
	log.Info("crawl job started", logger.Int("max_pages", job.MaxPages))

	items, err := s.content.ListPublished(ctx, job.MaxPages)
	if err != nil {
		return s.fail(ctx, job, started, fmt.Errorf("%w: %w", domain.ErrEnumerationFailed, err))
	}
	if len(items) > job.MaxPages {
		items = items[:job.MaxPages]
	}
	if err := s.jobs.SetPagesFound(ctx, job.ID, len(items)); err != nil {
		return s.stopOrFail(ctx, job, started, fmt.Errorf("set pages found: %w", err))
	}

	crawled, failed := 0, 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return s.fail(ctx, job, started, fmt.Errorf("crawl interrupted: %w", err))
		}
		if err := s.processItem(ctx, item); err != nil {
			failed++
			s.metrics.ItemProcessed(false)
			log.Warn("item processing failed", logger.String("url", item.URL), logger.String("content_id", item.ID), logger.Error(err))
			s.recordItemError(ctx, log, job.ID, item, err)
			continue
		}
		s.metrics.ItemProcessed(true)

		updated, err := s.jobs.AdvanceProgress(ctx, job.ID, crawled)
		if err != nil {
			return s.stopOrFail(ctx, job, started, fmt.Errorf("advance progress: %w", err))
		}
		crawled = updated.PagesCrawled
	}

	if err := s.jobs.CompleteJob(ctx, job.ID); err != nil {
		return s.stopOrFail(ctx, job, started, fmt.Errorf("complete job: %w", err))
	}
	s.metrics.JobFinished(string(domain.JobCompleted), s.now().Sub(started))
	log.Info("crawl job completed",
		logger.Int("pages_found", len(items)),
		logger.Int("pages_crawled", crawled),
		logger.Int("pages_failed", failed),
	)
	return nil
}

// processItem refreshes the snapshot and issue set of one content item.
func (s *Service) processItem(ctx context.Context, item domain.ContentItem) error {
	snap, err := snapshots.Build(item, s.now())
	if err != nil {
		return fmt.Errorf("%w: build snapshot: %w", domain.ErrItemProcessingFailed, err)
	}
	stored, err := s.snapshots.UpsertSnapshot(ctx, snap)
	if err != nil {
		return fmt.Errorf("%w: upsert snapshot: %w", domain.ErrItemProcessingFailed, err)
	}
	if err := s.snapshots.ReplaceIssues(ctx, stored.ID, analyzer.Analyze(stored)); err != nil {
		return fmt.Errorf("%w: replace issues: %w", domain.ErrItemProcessingFailed, err)
	}
	return nil
}

func (s *Service) recordItemError(ctx context.Context, log logger.Logger, jobID string, item domain.ContentItem, cause error) {
	err := s.jobs.RecordPageError(ctx, domain.PageCrawlError{
		ID:         uuid.NewString(),
		JobID:      jobID,
		URL:        item.URL,
		ContentID:  item.ID,
		Message:    cause.Error(),
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		log.Error("record page error failed", logger.String("url", item.URL), logger.Error(err))
	}
}

// stopOrFail ends the loop after a lost check-and-set. A job cancelled under
// us is left alone; anything else is an unrecoverable storage failure.
func (s *Service) stopOrFail(ctx context.Context, job domain.CrawlJob, started time.Time, cause error) error {
	if errors.Is(cause, domain.ErrConflict) {
		current, err := s.jobs.GetJob(ctx, job.ID)
		if err == nil && current.Status == domain.JobCancelled {
			s.metrics.JobFinished(string(domain.JobCancelled), s.now().Sub(started))
			s.log.Info("crawl job cancelled while running, stopping", logger.String("job_id", job.ID), logger.Int("pages_crawled", current.PagesCrawled))
			return nil
		}
	}
	return s.fail(ctx, job, started, cause)
}

// fail records cause on the job as FAILED. A job interrupted because ctx
// ended (shutdown, or a caller that stopped waiting) is requeued instead and
// nil is returned, so another worker runs it again from the start.
func (s *Service) fail(ctx context.Context, job domain.CrawlJob, started time.Time, cause error) error {
	if ctx.Err() != nil {
		s.requeue(ctx, job, cause)
		return nil
	}
	s.metrics.JobFinished(string(domain.JobFailed), s.now().Sub(started))
	s.log.Error("crawl job failed", logger.String("job_id", job.ID), logger.Error(cause))
	if err := s.jobs.FailJob(context.WithoutCancel(ctx), job.ID, cause.Error()); err != nil {
		s.log.Error("mark crawl job failed", logger.String("job_id", job.ID), logger.Error(err))
	}
	return cause
}

func (s *Service) requeue(ctx context.Context, job domain.CrawlJob, cause error) {
	err := s.jobs.RequeueJob(context.WithoutCancel(ctx), job.ID)
	switch {
	case err == nil:
		s.log.Info("crawl job interrupted, requeued", logger.String("job_id", job.ID), logger.Error(cause))
	case errors.Is(err, domain.ErrConflict):
		s.log.Info("crawl job interrupted after leaving RUNNING", logger.String("job_id", job.ID))
	default:
		s.log.Error("requeue crawl job", logger.String("job_id", job.ID), logger.Error(err))
	}
}

// ProcessInline claims a specific PENDING job and processes it synchronously
// with the same logic the background workers use. When a worker claimed the
// job first, ProcessInline follows that run until it ends or ctx is done.
// The returned job is the latest stored state; the error is the fatal cause
// when the job FAILED, or ctx.Err() when waiting was cut short.
func (s *Service) ProcessInline(ctx context.Context, jobID string) (domain.CrawlJob, error) {
	job, err := s.jobs.StartJob(ctx, jobID)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return s.await(ctx, jobID)
	}
	if err != nil {
		return domain.CrawlJob{}, err
	}
	procErr := s.Process(ctx, job)
	final, err := s.jobs.GetJob(context.WithoutCancel(ctx), jobID)
	if err != nil {
		return domain.CrawlJob{}, err
	}
	return final, procErr
}

// await polls a job until it reaches a terminal status.
func (s *Service) await(ctx context.Context, jobID string) (domain.CrawlJob, error) {
	ticker := time.NewTicker(s.waitInterval)
	defer ticker.Stop()
	for {
		job, err := s.jobs.GetJob(context.WithoutCancel(ctx), jobID)
		if err != nil {
			return domain.CrawlJob{}, err
		}
		if job.Status.Terminal() {
			return job, nil
		}
		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-ticker.C:
		}
	}
}
