package crawls_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaaudit/internal/adapters/memory"
	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/services/crawls"
)

func runInline(t *testing.T, svc *crawls.Service, maxPages int) (domain.CrawlJob, error) {
	t.Helper()
	ctx := context.Background()
	id, err := svc.StartCrawl(ctx, "published", maxPages)
	require.NoError(t, err)
	return svc.ProcessInline(ctx, id)
}

func TestProcess_HonoursMaxPages(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(publishedItems(12)...), logger.NewNop())

	job, err := runInline(t, svc, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Equal(t, 5, job.PagesFound)
	assert.Equal(t, 5, job.PagesCrawled)
	require.NotNil(t, job.StartedAt)
	require.NotNil(t, job.CompletedAt)
	assert.Nil(t, job.LastError)

	snaps, err := store.ListSnapshots(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, snaps, 5)
}

func TestProcess_EmptyScopeCompletes(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(), logger.NewNop())

	job, err := runInline(t, svc, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Zero(t, job.PagesFound)
	assert.Zero(t, job.PagesCrawled)
}

func TestProcess_RecrawlIsIdempotent(t *testing.T) {
	store := memory.New()
	content := memory.NewContentStore(publishedItems(3)...)
	svc := crawls.New(store, store, content, logger.NewNop())
	ctx := context.Background()

	_, err := runInline(t, svc, 10)
	require.NoError(t, err)
	before, err := store.GetSnapshotByURL(ctx, "https://example.com/p/01")
	require.NoError(t, err)
	issuesBefore, err := store.ListIssues(ctx, before.ID)
	require.NoError(t, err)

	_, err = runInline(t, svc, 10)
	require.NoError(t, err)
	after, err := store.GetSnapshotByURL(ctx, "https://example.com/p/01")
	require.NoError(t, err)
	issuesAfter, err := store.ListIssues(ctx, after.ID)
	require.NoError(t, err)

	snaps, err := store.ListSnapshots(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, snaps, 3)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, issuesBefore, issuesAfter)
}

func TestProcess_RefreshesIssuesFromCurrentContent(t *testing.T) {
	store := memory.New()
	items := publishedItems(1)
	items[0].MetaText = nil
	content := memory.NewContentStore(items...)
	svc := crawls.New(store, store, content, logger.NewNop())
	ctx := context.Background()

	_, err := runInline(t, svc, 1)
	require.NoError(t, err)
	snap, err := store.GetSnapshotByURL(ctx, items[0].URL)
	require.NoError(t, err)
	issues, err := store.ListIssues(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueMissingMeta, issues[0].Type)

	require.NoError(t, content.UpdateMetaText(ctx, items[0].ID, "Long enough meta text that lands between one hundred and twenty and one hundred and sixty characters in total length, ok."))
	_, err = runInline(t, svc, 1)
	require.NoError(t, err)
	issues, err = store.ListIssues(ctx, snap.ID)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcess_ItemFailureIsSkipped(t *testing.T) {
	store := memory.New()
	items := publishedItems(3)
	items[1].Body = "broken \xff body"
	svc := crawls.New(store, store, memory.NewContentStore(items...), logger.NewNop())

	job, err := runInline(t, svc, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Equal(t, 3, job.PagesFound)
	assert.Equal(t, 2, job.PagesCrawled)

	pageErrs, err := svc.ListErrors(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, pageErrs, 1)
	assert.Equal(t, items[1].URL, pageErrs[0].URL)
	assert.Equal(t, items[1].ID, pageErrs[0].ContentID)
	assert.Contains(t, pageErrs[0].Message, domain.ErrItemProcessingFailed.Error())
}

type failingContent struct{}

func (failingContent) ListPublished(context.Context, int) ([]domain.ContentItem, error) {
	return nil, errors.New("cms unavailable")
}

func (failingContent) UpdateMetaText(context.Context, string, string) error { return nil }

func TestProcess_EnumerationFailureFailsJob(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, failingContent{}, logger.NewNop())

	job, err := runInline(t, svc, 10)

	assert.ErrorIs(t, err, domain.ErrEnumerationFailed)
	assert.Equal(t, domain.JobFailed, job.Status)
	require.NotNil(t, job.LastError)
	assert.Contains(t, *job.LastError, "cms unavailable")
	require.NotNil(t, job.CompletedAt)
}

// cancellingSnapshots cancels the job once the given number of snapshots
// has been written.
type cancellingSnapshots struct {
	*memory.Store
	after  int
	writes int
	jobID  func() string
}

func (c *cancellingSnapshots) UpsertSnapshot(ctx context.Context, snap domain.PageSnapshot) (domain.PageSnapshot, error) {
	out, err := c.Store.UpsertSnapshot(ctx, snap)
	c.writes++
	if c.writes == c.after {
		if _, cerr := c.Store.CancelJob(ctx, c.jobID()); cerr != nil {
			return out, cerr
		}
	}
	return out, err
}

func TestProcess_StopsWhenCancelled(t *testing.T) {
	store := memory.New()
	var jobID string
	snaps := &cancellingSnapshots{Store: store, after: 2, jobID: func() string { return jobID }}
	svc := crawls.New(store, snaps, memory.NewContentStore(publishedItems(6)...), logger.NewNop())
	ctx := context.Background()

	id, err := svc.StartCrawl(ctx, "published", 10)
	require.NoError(t, err)
	jobID = id
	job, err := svc.ProcessInline(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, domain.JobCancelled, job.Status)
	assert.Equal(t, 6, job.PagesFound)
	assert.Equal(t, 1, job.PagesCrawled)
	assert.Nil(t, job.LastError)
	assert.Equal(t, 2, snaps.writes, "loop exits at the first lost progress update")
}

func TestProcess_InterruptedContextRequeuesJob(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(publishedItems(2)...), logger.NewNop())
	id, err := svc.StartCrawl(context.Background(), "published", 10)
	require.NoError(t, err)
	job, err := store.StartJob(context.Background(), id)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = svc.Process(ctx, job)

	require.NoError(t, err)
	requeued, err := store.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobPending, requeued.Status)
	assert.Nil(t, requeued.StartedAt)
	assert.Nil(t, requeued.LastError)

	again, found, err := store.ClaimNext(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, svc.Process(context.Background(), again))
	final, err := store.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, final.Status)
	assert.Equal(t, 2, final.PagesCrawled)
}

func TestProcessInline_FollowsJobClaimedByWorker(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(publishedItems(3)...), logger.NewNop(),
		crawls.WithWaitInterval(time.Millisecond))
	ctx := context.Background()
	id, err := svc.StartCrawl(ctx, "published", 10)
	require.NoError(t, err)

	claimed, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	go func() { _ = svc.Process(ctx, claimed) }()

	job, err := svc.ProcessInline(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Equal(t, 3, job.PagesCrawled)
}

func TestProcessInline_StopsWaitingAtDeadline(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(), logger.NewNop(), crawls.WithWaitInterval(time.Millisecond))
	id, err := svc.StartCrawl(context.Background(), "published", 1)
	require.NoError(t, err)
	_, err = store.StartJob(context.Background(), id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	job, err := svc.ProcessInline(ctx, id)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, domain.JobRunning, job.Status)
}

func TestProcessInline_UnknownAndFinishedJobs(t *testing.T) {
	store := memory.New()
	svc := crawls.New(store, store, memory.NewContentStore(), logger.NewNop())

	_, err := svc.ProcessInline(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	job, err := runInline(t, svc, 1)
	require.NoError(t, err)
	again, err := svc.ProcessInline(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, again, "a finished job is returned as is")
}
