package memory

import (
	"context"
	"sync"

	"metaaudit/internal/domain"
)

// ContentStore holds content items in insertion order.
type ContentStore struct {
	mu    sync.Mutex
	items []domain.ContentItem
}

func NewContentStore(items ...domain.ContentItem) *ContentStore {
	c := &ContentStore{}
	for _, it := range items {
		c.Put(it)
	}
	return c
}

// Put inserts the item or replaces the one with the same ID.
func (c *ContentStore) Put(item domain.ContentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item.MetaText = copyString(item.MetaText)
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Item returns a copy of the item with the given ID.
func (c *ContentStore) Item(id string) (domain.ContentItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			it.MetaText = copyString(it.MetaText)
			return it, true
		}
	}
	return domain.ContentItem{}, false
}

func (c *ContentStore) ListPublished(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []domain.ContentItem{}
	for _, it := range c.items {
		if it.Status != domain.ContentPublished {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		it.MetaText = copyString(it.MetaText)
		out = append(out, it)
	}
	return out, nil
}

func (c *ContentStore) UpdateMetaText(ctx context.Context, contentID string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == contentID {
			c.items[i].MetaText = &text
			return nil
		}
	}
	return domain.ErrNotFound
}
