package ports

import (
	"context"

	"metaaudit/internal/domain"
)

// SnapshotRepository stores one snapshot per URL and the issue set attached to it.
type SnapshotRepository interface {
	// UpsertSnapshot inserts or fully overwrites the snapshot keyed by URL and
	// returns the stored row. An existing row keeps its ID.
	UpsertSnapshot(ctx context.Context, s domain.PageSnapshot) (domain.PageSnapshot, error)
	// ReplaceIssues atomically swaps the issue set of a snapshot.
	ReplaceIssues(ctx context.Context, snapshotID string, issues []domain.Issue) error
	GetSnapshot(ctx context.Context, id string) (domain.PageSnapshot, error)
	GetSnapshotByURL(ctx context.Context, url string) (domain.PageSnapshot, error)
	ListSnapshots(ctx context.Context, limit, offset int) ([]domain.PageSnapshot, error)
	ListIssues(ctx context.Context, snapshotID string) ([]domain.Issue, error)
}

// SuggestionRepository keeps the suggestion history per snapshot.
type SuggestionRepository interface {
	CreateSuggestion(ctx context.Context, s domain.MetaSuggestion) error
	GetSuggestion(ctx context.Context, id string) (domain.MetaSuggestion, error)
	ListSuggestions(ctx context.Context, snapshotID string) ([]domain.MetaSuggestion, error)
	// ResolveSuggestion moves a PENDING suggestion to a terminal status with a
	// single check-and-set. It returns domain.ErrInvalidTransition when the
	// suggestion is no longer PENDING.
	ResolveSuggestion(ctx context.Context, id string, r domain.Resolution) (domain.MetaSuggestion, error)
	// RevertSuggestion puts a suggestion currently in status from back to
	// PENDING and clears its resolution fields.
	RevertSuggestion(ctx context.Context, id string, from domain.SuggestionStatus) error
}
