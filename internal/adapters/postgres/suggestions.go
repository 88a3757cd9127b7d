package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"metaaudit/internal/domain"
)

const suggestionColumns = `id, snapshot_id, suggestion_text, status, confidence, created_at, resolved_at, resolved_by, final_text`

func scanSuggestion(row pgx.Row) (domain.MetaSuggestion, error) {
	var s domain.MetaSuggestion
	var status string
	err := row.Scan(&s.ID, &s.SnapshotID, &s.SuggestionText, &status, &s.Confidence, &s.CreatedAt, &s.ResolvedAt, &s.ResolvedBy, &s.FinalText)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, domain.ErrNotFound
	}
	s.Status = domain.SuggestionStatus(status)
	return s, err
}

func (db *DB) CreateSuggestion(ctx context.Context, s domain.MetaSuggestion) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO meta_suggestions (`+suggestionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, s.SnapshotID, s.SuggestionText, string(s.Status), s.Confidence, s.CreatedAt, s.ResolvedAt, s.ResolvedBy, s.FinalText)
	return err
}

func (db *DB) GetSuggestion(ctx context.Context, id string) (domain.MetaSuggestion, error) {
	return scanSuggestion(db.Pool.QueryRow(ctx, `SELECT `+suggestionColumns+` FROM meta_suggestions WHERE id = $1`, id))
}

func (db *DB) ListSuggestions(ctx context.Context, snapshotID string) ([]domain.MetaSuggestion, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+suggestionColumns+` FROM meta_suggestions
		WHERE snapshot_id = $1
		ORDER BY created_at, id
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MetaSuggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ResolveSuggestion is the only PENDING -> terminal path: the status guard in
// the WHERE clause makes concurrent resolutions mutually exclusive.
func (db *DB) ResolveSuggestion(ctx context.Context, id string, r domain.Resolution) (domain.MetaSuggestion, error) {
	s, err := scanSuggestion(db.Pool.QueryRow(ctx, `
		UPDATE meta_suggestions
		SET status = $2, resolved_at = $3, resolved_by = $4, final_text = $5
		WHERE id = $1 AND status = 'PENDING'
		RETURNING `+suggestionColumns,
		id, string(r.Status), r.ResolvedAt, r.ResolvedBy, r.FinalText,
	))
	if errors.Is(err, domain.ErrNotFound) {
		if _, gerr := db.GetSuggestion(ctx, id); gerr != nil {
			return s, gerr
		}
		return s, domain.ErrInvalidTransition
	}
	return s, err
}

func (db *DB) RevertSuggestion(ctx context.Context, id string, from domain.SuggestionStatus) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE meta_suggestions
		SET status = 'PENDING', resolved_at = NULL, resolved_by = NULL, final_text = NULL
		WHERE id = $1 AND status = $2
	`, id, string(from))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
