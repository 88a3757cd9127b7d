package postgres

import (
	"context"
	"strings"

	"metaaudit/internal/domain"
)

// ContentStore reads content items from the content_items table. Item URLs
// are the site base URL joined with the item path.
type ContentStore struct {
	db      *DB
	baseURL string
}

func NewContentStore(db *DB, baseURL string) *ContentStore {
	return &ContentStore{db: db, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *ContentStore) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *ContentStore) ListPublished(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	rows, err := c.db.Pool.Query(ctx, `
		SELECT id, path, title, meta_description, body, status
		FROM content_items
		WHERE status = 'published'
		ORDER BY path
		LIMIT $1
	`, limitArg(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ContentItem{}
	for rows.Next() {
		var it domain.ContentItem
		var path, status string
		if err := rows.Scan(&it.ID, &path, &it.Title, &it.MetaText, &it.Body, &status); err != nil {
			return nil, err
		}
		it.URL = c.url(path)
		it.Status = domain.ContentStatus(status)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (c *ContentStore) UpdateMetaText(ctx context.Context, contentID string, text string) error {
	tag, err := c.db.Pool.Exec(ctx, `
		UPDATE content_items SET meta_description = $2, updated_at = now()
		WHERE id = $1
	`, contentID, text)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
