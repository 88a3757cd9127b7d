package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"metaaudit/internal/domain"
)

const snapshotColumns = `id, url, content_id, title, meta_text, content_preview, heading_counts, word_count, last_crawled_at`

func scanSnapshot(row pgx.Row) (domain.PageSnapshot, error) {
	var s domain.PageSnapshot
	err := row.Scan(&s.ID, &s.URL, &s.ContentID, &s.Title, &s.MetaText, &s.ContentPreview, &s.HeadingCounts, &s.WordCount, &s.LastCrawledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, domain.ErrNotFound
	}
	if s.HeadingCounts == nil {
		s.HeadingCounts = map[string]int{}
	}
	return s, err
}

// UpsertSnapshot overwrites every column of the row with the same url; the
// row keeps its id.
func (db *DB) UpsertSnapshot(ctx context.Context, s domain.PageSnapshot) (domain.PageSnapshot, error) {
	counts := s.HeadingCounts
	if counts == nil {
		counts = map[string]int{}
	}
	return scanSnapshot(db.Pool.QueryRow(ctx, `
		INSERT INTO page_snapshots (`+snapshotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (url) DO UPDATE SET
			content_id      = EXCLUDED.content_id,
			title           = EXCLUDED.title,
			meta_text       = EXCLUDED.meta_text,
			content_preview = EXCLUDED.content_preview,
			heading_counts  = EXCLUDED.heading_counts,
			word_count      = EXCLUDED.word_count,
			last_crawled_at = EXCLUDED.last_crawled_at
		RETURNING `+snapshotColumns,
		uuid.NewString(), s.URL, s.ContentID, s.Title, s.MetaText, s.ContentPreview, counts, s.WordCount, s.LastCrawledAt,
	))
}

// ReplaceIssues deletes and re-inserts the issue set in one transaction, so
// readers see either the old set or the new one. The snapshot row is locked
// to serialize concurrent replacements.
func (db *DB) ReplaceIssues(ctx context.Context, snapshotID string, issues []domain.Issue) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var one int
	err = tx.QueryRow(ctx, `SELECT 1 FROM page_snapshots WHERE id = $1 FOR UPDATE`, snapshotID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM page_issues WHERE snapshot_id = $1`, snapshotID); err != nil {
		return err
	}
	if len(issues) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(issues))
	for i, is := range issues {
		rows = append(rows, []any{snapshotID, i, string(is.Type), string(is.Severity), is.Description})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"page_issues"},
		[]string{"snapshot_id", "position", "type", "severity", "description"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("insert issues: %w", err)
	}
	return nil
}

func (db *DB) GetSnapshot(ctx context.Context, id string) (domain.PageSnapshot, error) {
	return scanSnapshot(db.Pool.QueryRow(ctx, `SELECT `+snapshotColumns+` FROM page_snapshots WHERE id = $1`, id))
}

func (db *DB) GetSnapshotByURL(ctx context.Context, url string) (domain.PageSnapshot, error) {
	return scanSnapshot(db.Pool.QueryRow(ctx, `SELECT `+snapshotColumns+` FROM page_snapshots WHERE url = $1`, url))
}

func (db *DB) ListSnapshots(ctx context.Context, limit, offset int) ([]domain.PageSnapshot, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+snapshotColumns+` FROM page_snapshots
		ORDER BY url
		LIMIT $1 OFFSET $2
	`, limitArg(limit), offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PageSnapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) ListIssues(ctx context.Context, snapshotID string) ([]domain.Issue, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT snapshot_id, position, type, severity, description
		FROM page_issues WHERE snapshot_id = $1
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Issue{}
	for rows.Next() {
		var is domain.Issue
		var typ, sev string
		if err := rows.Scan(&is.SnapshotID, &is.Position, &typ, &sev, &is.Description); err != nil {
			return nil, err
		}
		is.Type = domain.IssueType(typ)
		is.Severity = domain.Severity(sev)
		out = append(out, is)
	}
	return out, rows.Err()
}
