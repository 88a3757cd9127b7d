// Package memory implements the storage ports in process. It backs the
// service when no DATABASE_URL is configured and is used throughout the
// tests. Check-and-set semantics match the Postgres adapter.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"metaaudit/internal/domain"
)

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	snapshots map[string]domain.PageSnapshot
	byURL     map[string]string
	issues    map[string][]domain.Issue

	suggestions     map[string]domain.MetaSuggestion
	suggestionOrder []string

	jobs       map[string]domain.CrawlJob
	jobOrder   []string
	pageErrors []domain.PageCrawlError
}

func New() *Store {
	return &Store{
		now:         time.Now,
		snapshots:   make(map[string]domain.PageSnapshot),
		byURL:       make(map[string]string),
		issues:      make(map[string][]domain.Issue),
		suggestions: make(map[string]domain.MetaSuggestion),
		jobs:        make(map[string]domain.CrawlJob),
	}
}

// WithClock replaces the time source used for server-side timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copySnapshot(s domain.PageSnapshot) domain.PageSnapshot {
	s.MetaText = copyString(s.MetaText)
	counts := make(map[string]int, len(s.HeadingCounts))
	for k, v := range s.HeadingCounts {
		counts[k] = v
	}
	s.HeadingCounts = counts
	return s
}

func copySuggestion(s domain.MetaSuggestion) domain.MetaSuggestion {
	s.ResolvedAt = copyTime(s.ResolvedAt)
	s.ResolvedBy = copyString(s.ResolvedBy)
	s.FinalText = copyString(s.FinalText)
	return s
}

func copyJob(j domain.CrawlJob) domain.CrawlJob {
	j.StartedAt = copyTime(j.StartedAt)
	j.CompletedAt = copyTime(j.CompletedAt)
	j.LastError = copyString(j.LastError)
	return j
}

// SnapshotRepository

func (s *Store) UpsertSnapshot(ctx context.Context, snap domain.PageSnapshot) (domain.PageSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.PageSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byURL[snap.URL]; ok {
		snap.ID = id
	} else {
		snap.ID = uuid.NewString()
		s.byURL[snap.URL] = snap.ID
	}
	s.snapshots[snap.ID] = copySnapshot(snap)
	return copySnapshot(snap), nil
}

func (s *Store) ReplaceIssues(ctx context.Context, snapshotID string, issues []domain.Issue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshots[snapshotID]; !ok {
		return domain.ErrNotFound
	}
	out := make([]domain.Issue, len(issues))
	for i, is := range issues {
		is.SnapshotID = snapshotID
		is.Position = i
		out[i] = is
	}
	s.issues[snapshotID] = out
	return nil
}

func (s *Store) GetSnapshot(ctx context.Context, id string) (domain.PageSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return domain.PageSnapshot{}, domain.ErrNotFound
	}
	return copySnapshot(snap), nil
}

func (s *Store) GetSnapshotByURL(ctx context.Context, url string) (domain.PageSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byURL[url]
	if !ok {
		return domain.PageSnapshot{}, domain.ErrNotFound
	}
	return copySnapshot(s.snapshots[id]), nil
}

func (s *Store) ListSnapshots(ctx context.Context, limit, offset int) ([]domain.PageSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.byURL))
	for u := range s.byURL {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	if offset >= len(urls) {
		return []domain.PageSnapshot{}, nil
	}
	urls = urls[offset:]
	if limit > 0 && len(urls) > limit {
		urls = urls[:limit]
	}
	out := make([]domain.PageSnapshot, 0, len(urls))
	for _, u := range urls {
		out = append(out, copySnapshot(s.snapshots[s.byURL[u]]))
	}
	return out, nil
}

func (s *Store) ListIssues(ctx context.Context, snapshotID string) ([]domain.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Issue{}, s.issues[snapshotID]...), nil
}

// SuggestionRepository

func (s *Store) CreateSuggestion(ctx context.Context, sg domain.MetaSuggestion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshots[sg.SnapshotID]; !ok {
		return domain.ErrNotFound
	}
	s.suggestions[sg.ID] = copySuggestion(sg)
	s.suggestionOrder = append(s.suggestionOrder, sg.ID)
	return nil
}

func (s *Store) GetSuggestion(ctx context.Context, id string) (domain.MetaSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg, ok := s.suggestions[id]
	if !ok {
		return domain.MetaSuggestion{}, domain.ErrNotFound
	}
	return copySuggestion(sg), nil
}

func (s *Store) ListSuggestions(ctx context.Context, snapshotID string) ([]domain.MetaSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.MetaSuggestion{}
	for _, id := range s.suggestionOrder {
		if sg := s.suggestions[id]; sg.SnapshotID == snapshotID {
			out = append(out, copySuggestion(sg))
		}
	}
	return out, nil
}

func (s *Store) ResolveSuggestion(ctx context.Context, id string, r domain.Resolution) (domain.MetaSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return domain.MetaSuggestion{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, ok := s.suggestions[id]
	if !ok {
		return domain.MetaSuggestion{}, domain.ErrNotFound
	}
	if sg.Status != domain.SuggestionPending {
		return domain.MetaSuggestion{}, domain.ErrInvalidTransition
	}
	at := r.ResolvedAt
	by := r.ResolvedBy
	sg.Status = r.Status
	sg.ResolvedAt = &at
	sg.ResolvedBy = &by
	sg.FinalText = copyString(r.FinalText)
	s.suggestions[id] = sg
	return copySuggestion(sg), nil
}

func (s *Store) RevertSuggestion(ctx context.Context, id string, from domain.SuggestionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, ok := s.suggestions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if sg.Status != from {
		return domain.ErrConflict
	}
	sg.Status = domain.SuggestionPending
	sg.ResolvedAt = nil
	sg.ResolvedBy = nil
	sg.FinalText = nil
	s.suggestions[id] = sg
	return nil
}
