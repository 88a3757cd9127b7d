package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaaudit/internal/domain"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t }
}

func TestUpsertSnapshot_ReusesIDForURL(t *testing.T) {
	ctx := context.Background()
	s := New()

	first, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a", Title: "v1"})
	require.NoError(t, err)
	second, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a", Title: "v2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	got, err := s.GetSnapshotByURL(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)

	all, err := s.ListSnapshots(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertSnapshot_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	snap, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a", HeadingCounts: map[string]int{"h1": 1}})
	require.NoError(t, err)

	snap.HeadingCounts["h1"] = 9
	got, err := s.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, got.HeadingCounts["h1"])
}

func TestReplaceIssues(t *testing.T) {
	ctx := context.Background()
	s := New()
	snap, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a"})
	require.NoError(t, err)

	require.NoError(t, s.ReplaceIssues(ctx, snap.ID, []domain.Issue{
		{Type: domain.IssueMissingMeta, Severity: domain.SeverityHigh},
		{Type: domain.IssueNoH1, Severity: domain.SeverityMedium},
	}))
	require.NoError(t, s.ReplaceIssues(ctx, snap.ID, []domain.Issue{
		{Type: domain.IssueTooShort, Severity: domain.SeverityLow},
	}))

	issues, err := s.ListIssues(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueTooShort, issues[0].Type)
	assert.Equal(t, snap.ID, issues[0].SnapshotID)
	assert.Equal(t, 0, issues[0].Position)

	assert.ErrorIs(t, s.ReplaceIssues(ctx, "missing", nil), domain.ErrNotFound)
}

func TestResolveSuggestion_OnlyFromPending(t *testing.T) {
	ctx := context.Background()
	s := New()
	snap, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a"})
	require.NoError(t, err)
	require.NoError(t, s.CreateSuggestion(ctx, domain.MetaSuggestion{ID: "s-1", SnapshotID: snap.ID, SuggestionText: "x", Status: domain.SuggestionPending}))

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resolved, err := s.ResolveSuggestion(ctx, "s-1", domain.Resolution{Status: domain.SuggestionApproved, ResolvedBy: "alice", ResolvedAt: at})
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionApproved, resolved.Status)
	assert.Equal(t, "alice", *resolved.ResolvedBy)
	assert.Equal(t, at, *resolved.ResolvedAt)

	_, err = s.ResolveSuggestion(ctx, "s-1", domain.Resolution{Status: domain.SuggestionRejected, ResolvedBy: "bob", ResolvedAt: at.Add(time.Hour)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := s.GetSuggestion(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionApproved, got.Status)
	assert.Equal(t, "alice", *got.ResolvedBy)

	_, err = s.ResolveSuggestion(ctx, "missing", domain.Resolution{Status: domain.SuggestionApproved})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveSuggestion_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := New()
	snap, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a"})
	require.NoError(t, err)
	require.NoError(t, s.CreateSuggestion(ctx, domain.MetaSuggestion{ID: "s-1", SnapshotID: snap.ID, Status: domain.SuggestionPending}))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ResolveSuggestion(ctx, "s-1", domain.Resolution{Status: domain.SuggestionRejected, ResolvedBy: "r"}); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRevertSuggestion(t *testing.T) {
	ctx := context.Background()
	s := New()
	snap, err := s.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a"})
	require.NoError(t, err)
	require.NoError(t, s.CreateSuggestion(ctx, domain.MetaSuggestion{ID: "s-1", SnapshotID: snap.ID, Status: domain.SuggestionPending}))
	_, err = s.ResolveSuggestion(ctx, "s-1", domain.Resolution{Status: domain.SuggestionApproved, ResolvedBy: "a"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.RevertSuggestion(ctx, "s-1", domain.SuggestionEdited), domain.ErrConflict)
	require.NoError(t, s.RevertSuggestion(ctx, "s-1", domain.SuggestionApproved))

	got, err := s.GetSuggestion(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionPending, got.Status)
	assert.Nil(t, got.ResolvedAt)
	assert.Nil(t, got.ResolvedBy)
}

func TestCreateSuggestion_RequiresSnapshot(t *testing.T) {
	err := New().CreateSuggestion(context.Background(), domain.MetaSuggestion{ID: "s-1", SnapshotID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(fixedClock())
	require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: "j-1", Scope: domain.ScopePublished, MaxPages: 3, Status: domain.JobPending}))

	job, ok, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.JobRunning, job.Status)
	require.NotNil(t, job.StartedAt)

	_, ok, err = s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetPagesFound(ctx, "j-1", 2))
	_, err = s.AdvanceProgress(ctx, "j-1", 0)
	require.NoError(t, err)
	_, err = s.AdvanceProgress(ctx, "j-1", 0)
	assert.ErrorIs(t, err, domain.ErrConflict, "stale expected counter")
	job, err = s.AdvanceProgress(ctx, "j-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, job.PagesCrawled)
	_, err = s.AdvanceProgress(ctx, "j-1", 2)
	assert.ErrorIs(t, err, domain.ErrConflict, "counter may not pass pagesFound")

	require.NoError(t, s.CompleteJob(ctx, "j-1"))
	job, err = s.GetJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	require.NotNil(t, job.CompletedAt)

	assert.ErrorIs(t, s.CompleteJob(ctx, "j-1"), domain.ErrConflict)
	assert.ErrorIs(t, s.FailJob(ctx, "j-1", "late"), domain.ErrConflict)
	_, err = s.CancelJob(ctx, "j-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelJob_StopsProgress(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: "j-1", Status: domain.JobPending}))
	_, err := s.StartJob(ctx, "j-1")
	require.NoError(t, err)
	require.NoError(t, s.SetPagesFound(ctx, "j-1", 5))

	cancelled, err := s.CancelJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobCancelled, cancelled.Status)

	_, err = s.AdvanceProgress(ctx, "j-1", 0)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, s.CompleteJob(ctx, "j-1"), domain.ErrConflict)
}

func TestRequeueJob(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: "j-1", Status: domain.JobPending}))
	assert.ErrorIs(t, s.RequeueJob(ctx, "j-1"), domain.ErrConflict, "only RUNNING jobs go back")

	_, err := s.StartJob(ctx, "j-1")
	require.NoError(t, err)
	require.NoError(t, s.SetPagesFound(ctx, "j-1", 3))
	_, err = s.AdvanceProgress(ctx, "j-1", 0)
	require.NoError(t, err)

	require.NoError(t, s.RequeueJob(ctx, "j-1"))
	job, err := s.GetJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobPending, job.Status)
	assert.Zero(t, job.PagesFound)
	assert.Zero(t, job.PagesCrawled)
	assert.Nil(t, job.StartedAt)

	_, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.ErrorIs(t, s.RequeueJob(ctx, "missing"), domain.ErrNotFound)
}

func TestStartJob_OnlyFromPending(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: "j-1", Status: domain.JobPending}))

	_, err := s.StartJob(ctx, "j-1")
	require.NoError(t, err)
	_, err = s.StartJob(ctx, "j-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = s.StartJob(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListJobs_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, id := range []string{"j-1", "j-2", "j-3"} {
		require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: id, Status: domain.JobPending}))
	}

	jobs, err := s.ListJobs(ctx, 2)
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Equal(t, "j-3", jobs[0].ID)
	assert.Equal(t, "j-2", jobs[1].ID)
}

func TestPageErrors(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateJob(ctx, domain.CrawlJob{ID: "j-1", Status: domain.JobPending}))

	require.NoError(t, s.RecordPageError(ctx, domain.PageCrawlError{ID: "e-1", JobID: "j-1", URL: "u", Message: "boom"}))
	assert.ErrorIs(t, s.RecordPageError(ctx, domain.PageCrawlError{ID: "e-2", JobID: "nope"}), domain.ErrNotFound)

	errs, err := s.ListPageErrors(ctx, "j-1")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Message)
}

func TestContentStore(t *testing.T) {
	ctx := context.Background()
	c := NewContentStore(
		domain.ContentItem{ID: "a", URL: "u/a", Status: domain.ContentPublished},
		domain.ContentItem{ID: "b", URL: "u/b", Status: domain.ContentDraft},
		domain.ContentItem{ID: "c", URL: "u/c", Status: domain.ContentPublished},
		domain.ContentItem{ID: "d", URL: "u/d", Status: domain.ContentPublished},
	)

	items, err := c.ListPublished(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)

	require.NoError(t, c.UpdateMetaText(ctx, "b", "new meta"))
	item, ok := c.Item("b")
	require.True(t, ok)
	assert.Equal(t, "new meta", *item.MetaText)

	assert.ErrorIs(t, c.UpdateMetaText(ctx, "zzz", "x"), domain.ErrNotFound)
}
