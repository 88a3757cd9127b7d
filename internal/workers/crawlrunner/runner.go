// Package crawlrunner claims queued crawl jobs and runs them on a bounded
// set of worker goroutines.
package crawlrunner

import (
	"context"
	"sync"
	"time"

	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/ports"
)

// JobProcessor runs a claimed job to a terminal status.
type JobProcessor interface {
	Process(ctx context.Context, job domain.CrawlJob) error
}

// Queue is the part of the job repository the runner needs.
type Queue interface {
	ClaimNext(ctx context.Context) (job domain.CrawlJob, found bool, err error)
}

type Runner struct {
	queue        Queue
	processor    JobProcessor
	notifier     ports.JobNotifier
	log          logger.Logger
	concurrency  int
	pollInterval time.Duration
}

func New(queue Queue, processor JobProcessor, notifier ports.JobNotifier, log logger.Logger, concurrency int, pollInterval time.Duration) *Runner {
	return &Runner{
		queue:        queue,
		processor:    processor,
		notifier:     notifier,
		log:          log,
		concurrency:  concurrency,
		pollInterval: pollInterval,
	}
}

// Run claims jobs until ctx is cancelled and returns once every worker has
// finished its current job. A job is only claimed when a worker is free, so
// no claimed job waits in memory during shutdown.
func (r *Runner) Run(ctx context.Context) {
	if r.concurrency < 1 {
		return
	}
	jobsCh := make(chan domain.CrawlJob, r.concurrency)
	slots := make(chan struct{}, r.concurrency)

	var wg sync.WaitGroup
	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				if err := r.processor.Process(ctx, job); err != nil {
					r.log.Error("crawl job failed", logger.Int("worker", idx), logger.String("job_id", job.ID), logger.Error(err))
				}
				<-slots
			}
		}(i)
	}

	var wake <-chan string
	if r.notifier != nil {
		wake = r.notifier.Subscribe(ctx)
	}

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.dispatch(ctx, jobsCh, slots)
	for {
		select {
		case <-ctx.Done():
			close(jobsCh)
			wg.Wait()
			return
		case <-ticker.C:
		case _, ok := <-wake:
			if !ok {
				wake = nil
			}
		}
		r.dispatch(ctx, jobsCh, slots)
	}
}

// dispatch hands out PENDING jobs while workers are free.
func (r *Runner) dispatch(ctx context.Context, jobsCh chan<- domain.CrawlJob, slots chan struct{}) {
	for {
		select {
		case slots <- struct{}{}:
		default:
			return
		}
		job, found, err := r.queue.ClaimNext(ctx)
		if err != nil || !found {
			<-slots
			if err != nil && ctx.Err() == nil {
				r.log.Error("crawl job claim failed", logger.Error(err))
			}
			return
		}
		r.log.Debug("crawl job claimed", logger.String("job_id", job.ID))
		jobsCh <- job
	}
}
