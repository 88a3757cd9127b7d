package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"metaaudit/internal/domain"
)

const jobColumns = `id, scope, max_pages, status, pages_found, pages_crawled, created_at, started_at, completed_at, last_error`

func scanJob(row pgx.Row) (domain.CrawlJob, error) {
	var j domain.CrawlJob
	var status string
	err := row.Scan(&j.ID, &j.Scope, &j.MaxPages, &status, &j.PagesFound, &j.PagesCrawled, &j.CreatedAt, &j.StartedAt, &j.CompletedAt, &j.LastError)
	if errors.Is(err, pgx.ErrNoRows) {
		return j, domain.ErrNotFound
	}
	j.Status = domain.JobStatus(status)
	return j, err
}

func (db *DB) CreateJob(ctx context.Context, job domain.CrawlJob) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO crawl_jobs (id, scope, max_pages, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, job.ID, job.Scope, job.MaxPages, string(job.Status), job.CreatedAt)
	return err
}

func (db *DB) GetJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	return scanJob(db.Pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM crawl_jobs WHERE id = $1`, id))
}

func (db *DB) ListJobs(ctx context.Context, limit int) ([]domain.CrawlJob, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+jobColumns+` FROM crawl_jobs ORDER BY created_at DESC LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CrawlJob{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// ClaimNext selects the oldest PENDING job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job domain.CrawlJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var id string
	err = tx.QueryRow(ctx, `
		SELECT id FROM crawl_jobs
		WHERE status = 'PENDING'
		ORDER BY created_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	job, err = scanJob(tx.QueryRow(ctx, `
		UPDATE crawl_jobs SET status = 'RUNNING', started_at = now()
		WHERE id = $1
		RETURNING `+jobColumns, id))
	if err != nil {
		return job, false, err
	}
	return job, true, nil
}

// StartJob marks a specific PENDING job as running.
func (db *DB) StartJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	job, err := scanJob(db.Pool.QueryRow(ctx, `
		UPDATE crawl_jobs SET status = 'RUNNING', started_at = now()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING `+jobColumns, id))
	if errors.Is(err, domain.ErrNotFound) {
		return job, db.missOr(ctx, id, domain.ErrInvalidTransition)
	}
	return job, err
}

func (db *DB) SetPagesFound(ctx context.Context, id string, found int) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE crawl_jobs SET pages_found = $2
		WHERE id = $1 AND status = 'RUNNING'
	`, id, found)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.missOr(ctx, id, domain.ErrConflict)
	}
	return nil
}

// AdvanceProgress is an optimistic update on the whole row: it only applies
// when the job is still RUNNING and nobody else moved the counter.
func (db *DB) AdvanceProgress(ctx context.Context, id string, expected int) (domain.CrawlJob, error) {
	job, err := scanJob(db.Pool.QueryRow(ctx, `
		UPDATE crawl_jobs SET pages_crawled = pages_crawled + 1
		WHERE id = $1 AND status = 'RUNNING' AND pages_crawled = $2 AND pages_crawled < pages_found
		RETURNING `+jobColumns, id, expected))
	if errors.Is(err, domain.ErrNotFound) {
		return job, db.missOr(ctx, id, domain.ErrConflict)
	}
	return job, err
}

func (db *DB) CompleteJob(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE crawl_jobs SET status = 'COMPLETED', completed_at = now()
		WHERE id = $1 AND status = 'RUNNING'
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.missOr(ctx, id, domain.ErrConflict)
	}
	return nil
}

func (db *DB) FailJob(ctx context.Context, id string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE crawl_jobs SET status = 'FAILED', completed_at = now(), last_error = $2
		WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
	`, id, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.missOr(ctx, id, domain.ErrConflict)
	}
	return nil
}

func (db *DB) CancelJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	job, err := scanJob(db.Pool.QueryRow(ctx, `
		UPDATE crawl_jobs SET status = 'CANCELLED', completed_at = now()
		WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
		RETURNING `+jobColumns, id))
	if errors.Is(err, domain.ErrNotFound) {
		return job, db.missOr(ctx, id, domain.ErrInvalidTransition)
	}
	return job, err
}

// RequeueJob hands an interrupted job back to the queue. The next claim
// starts it from scratch.
func (db *DB) RequeueJob(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE crawl_jobs SET status = 'PENDING', started_at = NULL, pages_found = 0, pages_crawled = 0
		WHERE id = $1 AND status = 'RUNNING'
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.missOr(ctx, id, domain.ErrConflict)
	}
	return nil
}

func (db *DB) RecordPageError(ctx context.Context, e domain.PageCrawlError) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO page_crawl_errors (id, job_id, url, content_id, message, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.JobID, e.URL, e.ContentID, e.Message, e.OccurredAt)
	return err
}

func (db *DB) ListPageErrors(ctx context.Context, jobID string) ([]domain.PageCrawlError, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, job_id, url, content_id, message, occurred_at
		FROM page_crawl_errors WHERE job_id = $1
		ORDER BY occurred_at, id
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PageCrawlError{}
	for rows.Next() {
		var e domain.PageCrawlError
		if err := rows.Scan(&e.ID, &e.JobID, &e.URL, &e.ContentID, &e.Message, &e.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// missOr tells a missing job apart from a lost check-and-set.
func (db *DB) missOr(ctx context.Context, id string, lost error) error {
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM crawl_jobs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return lost
}
