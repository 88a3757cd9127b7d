// Package crawls owns the crawl job lifecycle: queueing, the sequential
// per-item loop, progress tracking and cancellation.
package crawls

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/metrics"
	"metaaudit/internal/ports"
)

// DefaultMaxPages applies when StartCrawl gets a non-positive page limit and
// no other default was configured.
const DefaultMaxPages = 100

const (
	defaultListLimit    = 20
	defaultWaitInterval = 100 * time.Millisecond
)

type Service struct {
	jobs      ports.CrawlJobRepository
	snapshots ports.SnapshotRepository
	content   ports.ContentStore
	notifier  ports.JobNotifier
	log       logger.Logger
	metrics   *metrics.Metrics

	defaultMaxPages int
	waitInterval    time.Duration
	now             func() time.Time
}

type Option func(*Service)

// WithNotifier wakes workers through n when a job is queued.
func WithNotifier(n ports.JobNotifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithDefaultMaxPages(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultMaxPages = n
		}
	}
}

// WithWaitInterval sets how often ProcessInline polls a job that a worker
// claimed first.
func WithWaitInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.waitInterval = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(jobs ports.CrawlJobRepository, snapshots ports.SnapshotRepository, content ports.ContentStore, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		jobs:            jobs,
		snapshots:       snapshots,
		content:         content,
		log:             log,
		defaultMaxPages: DefaultMaxPages,
		waitInterval:    defaultWaitInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartCrawl queues a PENDING job and returns its id without waiting for any
// work. Progress is observed by polling GetJob.
func (s *Service) StartCrawl(ctx context.Context, scope string, maxPages int) (string, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		scope = domain.ScopePublished
	}
	if scope != domain.ScopePublished {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidScope, scope)
	}
	if maxPages <= 0 {
		maxPages = s.defaultMaxPages
	}

	job := domain.CrawlJob{
		ID:        uuid.NewString(),
		Scope:     scope,
		MaxPages:  maxPages,
		Status:    domain.JobPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return "", fmt.Errorf("create crawl job: %w", err)
	}
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, job.ID); err != nil {
			// Workers poll as well; the job is picked up on the next tick.
			s.log.Warn("crawl job notification failed", logger.String("job_id", job.ID), logger.Error(err))
		}
	}
	s.log.Info("crawl job queued", logger.String("job_id", job.ID), logger.Int("max_pages", maxPages))
	return job.ID, nil
}

func (s *Service) GetJob(ctx context.Context, jobID string) (domain.CrawlJob, error) {
	return s.jobs.GetJob(ctx, jobID)
}

// ListJobs returns the most recent jobs first.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]domain.CrawlJob, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.jobs.ListJobs(ctx, limit)
}

// ListErrors returns the items that failed during a job.
func (s *Service) ListErrors(ctx context.Context, jobID string) ([]domain.PageCrawlError, error) {
	if _, err := s.jobs.GetJob(ctx, jobID); err != nil {
		return nil, err
	}
	return s.jobs.ListPageErrors(ctx, jobID)
}

// Cancel stops a PENDING or RUNNING job. A running loop notices at its next
// progress update and exits without touching the job again.
func (s *Service) Cancel(ctx context.Context, jobID string) (domain.CrawlJob, error) {
	job, err := s.jobs.CancelJob(ctx, jobID)
	if err != nil {
		return domain.CrawlJob{}, err
	}
	s.log.Info("crawl job cancelled", logger.String("job_id", jobID))
	return job, nil
}
