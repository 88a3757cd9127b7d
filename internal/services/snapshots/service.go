package snapshots

import (
	"context"
	"fmt"

	"metaaudit/internal/domain"
	"metaaudit/internal/ports"
)

// DefaultListLimit applies when List is called with a non-positive limit.
const DefaultListLimit = 50

// Service is the read side for snapshots.
type Service struct {
	snapshots   ports.SnapshotRepository
	suggestions ports.SuggestionRepository
}

func New(snapshots ports.SnapshotRepository, suggestions ports.SuggestionRepository) *Service {
	return &Service{snapshots: snapshots, suggestions: suggestions}
}

// List returns snapshots with their issues. Suggestions are left out; use Get
// for the full history of one page.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.PageDetail, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	snaps, err := s.snapshots.ListSnapshots(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	out := make([]domain.PageDetail, 0, len(snaps))
	for _, snap := range snaps {
		issues, err := s.snapshots.ListIssues(ctx, snap.ID)
		if err != nil {
			return nil, fmt.Errorf("list issues of %s: %w", snap.ID, err)
		}
		out = append(out, domain.PageDetail{Snapshot: snap, Issues: issues})
	}
	return out, nil
}

// Get returns one snapshot with its issues and every suggestion ever made for it.
func (s *Service) Get(ctx context.Context, snapshotID string) (domain.PageDetail, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return domain.PageDetail{}, err
	}
	issues, err := s.snapshots.ListIssues(ctx, snapshotID)
	if err != nil {
		return domain.PageDetail{}, fmt.Errorf("list issues of %s: %w", snapshotID, err)
	}
	suggestions, err := s.suggestions.ListSuggestions(ctx, snapshotID)
	if err != nil {
		return domain.PageDetail{}, fmt.Errorf("list suggestions of %s: %w", snapshotID, err)
	}
	return domain.PageDetail{Snapshot: snap, Issues: issues, Suggestions: suggestions}, nil
}
