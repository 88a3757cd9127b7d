package approval_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaaudit/internal/adapters/memory"
	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/services/approval"
)

var resolvedAt = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memory.Store
	content *memory.ContentStore
	svc     *approval.Service
	snap    domain.PageSnapshot
}

func newFixture(t *testing.T, contentID string) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	content := memory.NewContentStore(domain.ContentItem{
		ID: "c-1", URL: "https://example.com/a", Title: "A", Status: domain.ContentPublished,
	})
	snap, err := store.UpsertSnapshot(ctx, domain.PageSnapshot{URL: "https://example.com/a", ContentID: contentID})
	require.NoError(t, err)
	require.NoError(t, store.CreateSuggestion(ctx, domain.MetaSuggestion{
		ID: "s-1", SnapshotID: snap.ID, SuggestionText: "X", Status: domain.SuggestionPending, Confidence: 0.75,
	}))
	svc := approval.New(store, store, content, logger.NewNop(), nil).WithClock(func() time.Time { return resolvedAt })
	return fixture{store: store, content: content, svc: svc, snap: snap}
}

func (f fixture) meta(t *testing.T) *string {
	t.Helper()
	item, ok := f.content.Item("c-1")
	require.True(t, ok)
	return item.MetaText
}

func TestResolve_Approve(t *testing.T) {
	f := newFixture(t, "c-1")

	sg, err := f.svc.Resolve(context.Background(), "s-1", "approve", "alice", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionApproved, sg.Status)
	assert.Equal(t, "alice", *sg.ResolvedBy)
	assert.Equal(t, resolvedAt, *sg.ResolvedAt)
	assert.Nil(t, sg.FinalText)
	require.NotNil(t, f.meta(t))
	assert.Equal(t, "X", *f.meta(t))
}

func TestResolve_Edit(t *testing.T) {
	f := newFixture(t, "c-1")

	sg, err := f.svc.Resolve(context.Background(), "s-1", "EDIT", "bob", ptr("  Y  "))

	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionEdited, sg.Status)
	require.NotNil(t, sg.FinalText)
	assert.Equal(t, "Y", *sg.FinalText)
	assert.Equal(t, "X", sg.SuggestionText)
	assert.Equal(t, "Y", *f.meta(t))
}

func TestResolve_RejectLeavesContentAlone(t *testing.T) {
	f := newFixture(t, "c-1")

	sg, err := f.svc.Resolve(context.Background(), "s-1", "reject", "carol", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionRejected, sg.Status)
	assert.Nil(t, f.meta(t))
}

func TestResolve_SecondResolutionFails(t *testing.T) {
	f := newFixture(t, "c-1")
	ctx := context.Background()
	_, err := f.svc.Resolve(ctx, "s-1", "approve", "alice", nil)
	require.NoError(t, err)

	_, err = f.svc.Resolve(ctx, "s-1", "reject", "bob", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	sg, err := f.store.GetSuggestion(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionApproved, sg.Status)
	assert.Equal(t, "alice", *sg.ResolvedBy)
	assert.Equal(t, resolvedAt, *sg.ResolvedAt)
}

func TestResolve_ValidatesInput(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		approver string
		edited   *string
		want     error
	}{
		{"unknown action", "publish", "alice", nil, domain.ErrInvalidAction},
		{"missing approver", "approve", "  ", nil, domain.ErrApproverRequired},
		{"edit without text", "edit", "alice", nil, domain.ErrEditedTextRequired},
		{"edit with blank text", "edit", "alice", ptr("   "), domain.ErrEditedTextRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "c-1")

			_, err := f.svc.Resolve(context.Background(), "s-1", tt.action, tt.approver, tt.edited)

			assert.ErrorIs(t, err, tt.want)
			sg, err := f.store.GetSuggestion(context.Background(), "s-1")
			require.NoError(t, err)
			assert.Equal(t, domain.SuggestionPending, sg.Status)
		})
	}
}

func TestResolve_UnknownSuggestion(t *testing.T) {
	f := newFixture(t, "c-1")

	_, err := f.svc.Resolve(context.Background(), "nope", "approve", "alice", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_WriteBackFailureRevertsToPending(t *testing.T) {
	f := newFixture(t, "c-missing")
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, "s-1", "approve", "alice", nil)

	assert.ErrorIs(t, err, domain.ErrWriteBackFailed)
	sg, err := f.store.GetSuggestion(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionPending, sg.Status)
	assert.Nil(t, sg.ResolvedAt)
	assert.Nil(t, sg.ResolvedBy)
	assert.Nil(t, sg.FinalText)
}

func TestResolve_ConcurrentResolutionsHaveOneWinner(t *testing.T) {
	f := newFixture(t, "c-1")
	actions := []string{"approve", "reject", "approve", "reject", "approve", "reject", "approve", "reject"}

	var (
		mu      sync.Mutex
		wins    []domain.MetaSuggestion
		losses  int
		wg      sync.WaitGroup
		barrier = make(chan struct{})
	)
	for _, a := range actions {
		wg.Add(1)
		go func(action string) {
			defer wg.Done()
			<-barrier
			sg, err := f.svc.Resolve(context.Background(), "s-1", action, "reviewer", nil)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins = append(wins, sg)
				return
			}
			if assert.ErrorIs(t, err, domain.ErrInvalidTransition) {
				losses++
			}
		}(a)
	}
	close(barrier)
	wg.Wait()

	require.Len(t, wins, 1)
	assert.Equal(t, len(actions)-1, losses)
	stored, err := f.store.GetSuggestion(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, wins[0].Status, stored.Status)
}

func TestParseAction(t *testing.T) {
	a, err := approval.ParseAction(" Approve ")
	require.NoError(t, err)
	assert.Equal(t, approval.ActionApprove, a)

	_, err = approval.ParseAction("")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func ptr(s string) *string { return &s }
