// Package suggestions asks the text generator for candidate meta
// descriptions and keeps every candidate as a PENDING suggestion.
package suggestions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
	"metaaudit/internal/metrics"
	"metaaudit/internal/ports"
)

// DefaultConfidence applies when the generator does not score its output.
const DefaultConfidence = 0.75

type Service struct {
	snapshots   ports.SnapshotRepository
	suggestions ports.SuggestionRepository
	generator   ports.TextGenerator
	log         logger.Logger
	metrics     *metrics.Metrics

	defaultConfidence float64
	now               func() time.Time
}

type Option func(*Service)

// WithDefaultConfidence overrides DefaultConfidence.
func WithDefaultConfidence(c float64) Option {
	return func(s *Service) { s.defaultConfidence = clamp(c) }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(snapshots ports.SnapshotRepository, suggestions ports.SuggestionRepository, generator ports.TextGenerator, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		snapshots:         snapshots,
		suggestions:       suggestions,
		generator:         generator,
		log:               log,
		defaultConfidence: DefaultConfidence,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate asks the text generator for a meta description of the snapshot
// and stores it as a new PENDING suggestion. Earlier suggestions for the page
// are kept. A generator failure persists nothing and is not retried.
func (s *Service) Generate(ctx context.Context, snapshotID string) (domain.MetaSuggestion, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return domain.MetaSuggestion{}, err
	}
	log := s.log.With(logger.String("snapshot_id", snap.ID), logger.String("url", snap.URL))

	cand, err := s.generator.GenerateMetaCandidate(ctx, snap.Title, snap.ContentPreview)
	if err != nil {
		log.Warn("meta generation failed", logger.Error(err))
		s.metrics.SuggestionGenerated(false)
		return domain.MetaSuggestion{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	text := strings.TrimSpace(cand.Text)
	if text == "" {
		log.Warn("meta generation returned empty text")
		s.metrics.SuggestionGenerated(false)
		return domain.MetaSuggestion{}, fmt.Errorf("%w: empty candidate", domain.ErrGenerationFailed)
	}

	confidence := s.defaultConfidence
	if cand.Confidence != nil {
		confidence = clamp(*cand.Confidence)
	}
	sg := domain.MetaSuggestion{
		ID:             uuid.NewString(),
		SnapshotID:     snap.ID,
		SuggestionText: text,
		Status:         domain.SuggestionPending,
		Confidence:     confidence,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.suggestions.CreateSuggestion(ctx, sg); err != nil {
		return domain.MetaSuggestion{}, fmt.Errorf("store suggestion: %w", err)
	}
	s.metrics.SuggestionGenerated(true)
	log.Info("meta suggestion created", logger.String("suggestion_id", sg.ID), logger.Float64("confidence", confidence))
	return sg, nil
}

// Get returns a single suggestion.
func (s *Service) Get(ctx context.Context, id string) (domain.MetaSuggestion, error) {
	return s.suggestions.GetSuggestion(ctx, id)
}

// ListForSnapshot returns the suggestion history of a snapshot, oldest first.
func (s *Service) ListForSnapshot(ctx context.Context, snapshotID string) ([]domain.MetaSuggestion, error) {
	if _, err := s.snapshots.GetSnapshot(ctx, snapshotID); err != nil {
		return nil, err
	}
	return s.suggestions.ListSuggestions(ctx, snapshotID)
}

func clamp(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
