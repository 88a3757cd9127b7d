// Package approval resolves pending meta suggestions and commits the
// accepted text to the content store.
package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/metrics"
	"metaaudit/internal/ports"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionEdit    Action = "edit"
)

// ParseAction maps a case-insensitive action name to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionApprove, ActionReject, ActionEdit:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidAction, s)
}

func (a Action) target() domain.SuggestionStatus {
	switch a {
	case ActionApprove:
		return domain.SuggestionApproved
	case ActionReject:
		return domain.SuggestionRejected
	default:
		return domain.SuggestionEdited
	}
}

type Service struct {
	snapshots   ports.SnapshotRepository
	suggestions ports.SuggestionRepository
	content     ports.ContentStore
	log         logger.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

func New(snapshots ports.SnapshotRepository, suggestions ports.SuggestionRepository, content ports.ContentStore, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{snapshots: snapshots, suggestions: suggestions, content: content, log: log, metrics: m, now: time.Now}
}

// WithClock replaces the time source used for resolvedAt.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Resolve moves a PENDING suggestion to APPROVED, REJECTED or EDITED.
//
// The status change is a storage-level check-and-set, so of two concurrent
// resolutions exactly one wins and the other gets ErrInvalidTransition. For
// approve and edit the resolution only stands once the content store accepts
// the new text; on write-back failure the suggestion goes back to PENDING.
func (s *Service) Resolve(ctx context.Context, suggestionID, action, approver string, editedText *string) (domain.MetaSuggestion, error) {
	act, err := ParseAction(action)
	if err != nil {
		return domain.MetaSuggestion{}, err
	}
	approver = strings.TrimSpace(approver)
	if approver == "" {
		return domain.MetaSuggestion{}, domain.ErrApproverRequired
	}
	var final *string
	if act == ActionEdit {
		if editedText == nil || strings.TrimSpace(*editedText) == "" {
			return domain.MetaSuggestion{}, domain.ErrEditedTextRequired
		}
		t := strings.TrimSpace(*editedText)
		final = &t
	}

	log := s.log.With(logger.String("suggestion_id", suggestionID), logger.String("action", string(act)))

	resolved, err := s.suggestions.ResolveSuggestion(ctx, suggestionID, domain.Resolution{
		Status:     act.target(),
		ResolvedBy: approver,
		ResolvedAt: s.now().UTC(),
		FinalText:  final,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			log.Info("resolve rejected: suggestion is not pending")
		}
		return domain.MetaSuggestion{}, err
	}

	if act == ActionReject {
		s.metrics.SuggestionResolved(string(resolved.Status))
		log.Info("suggestion rejected", logger.String("approver", approver))
		return resolved, nil
	}

	if err := s.writeBack(ctx, resolved); err != nil {
		log.Error("write-back failed, reverting to pending", logger.Error(err))
		s.metrics.WriteBackFailed()
		if rerr := s.suggestions.RevertSuggestion(context.WithoutCancel(ctx), resolved.ID, resolved.Status); rerr != nil {
			log.Error("revert to pending failed", logger.Error(rerr))
			return domain.MetaSuggestion{}, fmt.Errorf("%w: %w (revert: %v)", domain.ErrWriteBackFailed, err, rerr)
		}
		return domain.MetaSuggestion{}, fmt.Errorf("%w: %w", domain.ErrWriteBackFailed, err)
	}

	s.metrics.SuggestionResolved(string(resolved.Status))
	log.Info("suggestion committed", logger.String("approver", approver), logger.String("status", string(resolved.Status)))
	return resolved, nil
}

func (s *Service) writeBack(ctx context.Context, sg domain.MetaSuggestion) error {
	snap, err := s.snapshots.GetSnapshot(ctx, sg.SnapshotID)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", sg.SnapshotID, err)
	}
	return s.content.UpdateMetaText(ctx, snap.ContentID, sg.AppliedText())
}
