package memory

import (
	"context"

	"metaaudit/internal/domain"
)

// CrawlJobRepository

func (s *Store) CreateJob(ctx context.Context, job domain.CrawlJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = s.now().UTC()
	}
	s.jobs[job.ID] = copyJob(job)
	s.jobOrder = append(s.jobOrder, job.ID)
	return nil
}

func (s *Store) GetJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.CrawlJob{}, domain.ErrNotFound
	}
	return copyJob(job), nil
}

// ListJobs returns the newest jobs first.
func (s *Store) ListJobs(ctx context.Context, limit int) ([]domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.CrawlJob{}
	for i := len(s.jobOrder) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, copyJob(s.jobs[s.jobOrder[i]]))
	}
	return out, nil
}

func (s *Store) ClaimNext(ctx context.Context) (domain.CrawlJob, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.CrawlJob{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.jobOrder {
		if s.jobs[id].Status == domain.JobPending {
			return s.startLocked(id), true, nil
		}
	}
	return domain.CrawlJob{}, false, nil
}

func (s *Store) StartJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.CrawlJob{}, domain.ErrNotFound
	}
	if job.Status != domain.JobPending {
		return domain.CrawlJob{}, domain.ErrInvalidTransition
	}
	return s.startLocked(id), nil
}

func (s *Store) startLocked(id string) domain.CrawlJob {
	job := s.jobs[id]
	now := s.now().UTC()
	job.Status = domain.JobRunning
	job.StartedAt = &now
	s.jobs[id] = job
	return copyJob(job)
}

// mutateRunning applies fn to a RUNNING job, or returns ErrConflict.
func (s *Store) mutateRunning(id string, fn func(*domain.CrawlJob) error) (domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.CrawlJob{}, domain.ErrNotFound
	}
	if job.Status != domain.JobRunning {
		return domain.CrawlJob{}, domain.ErrConflict
	}
	if err := fn(&job); err != nil {
		return domain.CrawlJob{}, err
	}
	s.jobs[id] = job
	return copyJob(job), nil
}

func (s *Store) SetPagesFound(ctx context.Context, id string, found int) error {
	_, err := s.mutateRunning(id, func(j *domain.CrawlJob) error {
		j.PagesFound = found
		return nil
	})
	return err
}

func (s *Store) AdvanceProgress(ctx context.Context, id string, expected int) (domain.CrawlJob, error) {
	return s.mutateRunning(id, func(j *domain.CrawlJob) error {
		if j.PagesCrawled != expected || j.PagesCrawled >= j.PagesFound {
			return domain.ErrConflict
		}
		j.PagesCrawled++
		return nil
	})
}

func (s *Store) CompleteJob(ctx context.Context, id string) error {
	_, err := s.mutateRunning(id, func(j *domain.CrawlJob) error {
		now := s.now().UTC()
		j.Status = domain.JobCompleted
		j.CompletedAt = &now
		return nil
	})
	return err
}

func (s *Store) FailJob(ctx context.Context, id string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if job.Status.Terminal() {
		return domain.ErrConflict
	}
	now := s.now().UTC()
	job.Status = domain.JobFailed
	job.CompletedAt = &now
	job.LastError = &reason
	s.jobs[id] = job
	return nil
}

func (s *Store) CancelJob(ctx context.Context, id string) (domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.CrawlJob{}, domain.ErrNotFound
	}
	if job.Status.Terminal() {
		return domain.CrawlJob{}, domain.ErrInvalidTransition
	}
	now := s.now().UTC()
	job.Status = domain.JobCancelled
	job.CompletedAt = &now
	s.jobs[id] = job
	return copyJob(job), nil
}

func (s *Store) RequeueJob(ctx context.Context, id string) error {
	_, err := s.mutateRunning(id, func(j *domain.CrawlJob) error {
		j.Status = domain.JobPending
		j.StartedAt = nil
		j.PagesFound = 0
		j.PagesCrawled = 0
		return nil
	})
	return err
}

func (s *Store) RecordPageError(ctx context.Context, e domain.PageCrawlError) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[e.JobID]; !ok {
		return domain.ErrNotFound
	}
	s.pageErrors = append(s.pageErrors, e)
	return nil
}

func (s *Store) ListPageErrors(ctx context.Context, jobID string) ([]domain.PageCrawlError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.PageCrawlError{}
	for _, e := range s.pageErrors {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}
