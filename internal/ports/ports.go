package ports

import (
	"context"

	"metaaudit/internal/domain"
)

// ContentStore is the system of record for content items.
type ContentStore interface {
	ListPublished(ctx context.Context, limit int) ([]domain.ContentItem, error)
	UpdateMetaText(ctx context.Context, contentID string, text string) error
}

// Candidate is a generated meta text. Confidence is nil when the generator
// does not score its output.
type Candidate struct {
	Text       string
	Confidence *float64
}

// TextGenerator produces candidate meta text for a page.
type TextGenerator interface {
	GenerateMetaCandidate(ctx context.Context, title, contentPreview string) (Candidate, error)
}

// JobNotifier wakes crawl workers as soon as a job is queued. Workers still
// poll, so a notifier that drops messages only adds latency.
type JobNotifier interface {
	Notify(ctx context.Context, jobID string) error
	Subscribe(ctx context.Context) <-chan string
}

// Crawls starts and tracks crawl jobs.
type Crawls interface {
	StartCrawl(ctx context.Context, scope string, maxPages int) (jobID string, err error)
	ProcessInline(ctx context.Context, jobID string) (domain.CrawlJob, error)
	GetJob(ctx context.Context, jobID string) (domain.CrawlJob, error)
	ListJobs(ctx context.Context, limit int) ([]domain.CrawlJob, error)
	ListErrors(ctx context.Context, jobID string) ([]domain.PageCrawlError, error)
	Cancel(ctx context.Context, jobID string) (domain.CrawlJob, error)
}

// Pages reads snapshots with their issues and suggestions.
type Pages interface {
	List(ctx context.Context, limit, offset int) ([]domain.PageDetail, error)
	Get(ctx context.Context, snapshotID string) (domain.PageDetail, error)
}

// Suggestions generates candidate meta text for a snapshot and reads the
// suggestion history.
type Suggestions interface {
	Generate(ctx context.Context, snapshotID string) (domain.MetaSuggestion, error)
	Get(ctx context.Context, id string) (domain.MetaSuggestion, error)
	ListForSnapshot(ctx context.Context, snapshotID string) ([]domain.MetaSuggestion, error)
}

// Approvals resolves pending suggestions.
type Approvals interface {
	Resolve(ctx context.Context, suggestionID, action, approver string, editedText *string) (domain.MetaSuggestion, error)
}
