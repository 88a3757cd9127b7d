package ports

import (
	"context"

	"metaaudit/internal/domain"
)

// CrawlJobRepository persists crawl jobs. The crawl_jobs rows double as the
// durable work queue: PENDING rows are claimed by workers.
//
// Every mutation is a check-and-set on the job's current status (and, for
// progress, on the current counter) so readers in other processes always see
// a consistent row. A lost check-and-set returns domain.ErrConflict.
type CrawlJobRepository interface {
	CreateJob(ctx context.Context, job domain.CrawlJob) error
	GetJob(ctx context.Context, id string) (domain.CrawlJob, error)
	ListJobs(ctx context.Context, limit int) ([]domain.CrawlJob, error)

	// ClaimNext moves the oldest PENDING job to RUNNING.
	ClaimNext(ctx context.Context) (job domain.CrawlJob, found bool, err error)
	// StartJob moves a specific PENDING job to RUNNING.
	StartJob(ctx context.Context, id string) (domain.CrawlJob, error)
	SetPagesFound(ctx context.Context, id string, found int) error
	// AdvanceProgress increments pages_crawled when it still equals expected.
	AdvanceProgress(ctx context.Context, id string, expected int) (domain.CrawlJob, error)
	CompleteJob(ctx context.Context, id string) error
	FailJob(ctx context.Context, id string, reason string) error
	CancelJob(ctx context.Context, id string) (domain.CrawlJob, error)
	// RequeueJob puts a RUNNING job back to PENDING with its counters reset.
	RequeueJob(ctx context.Context, id string) error

	RecordPageError(ctx context.Context, e domain.PageCrawlError) error
	ListPageErrors(ctx context.Context, jobID string) ([]domain.PageCrawlError, error)
}
