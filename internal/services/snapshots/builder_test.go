package snapshots

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaaudit/internal/domain"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuild_ExtractsStructure(t *testing.T) {
	meta := "A short description"
	item := domain.ContentItem{
		ID:       "c-1",
		URL:      "https://example.com/articles/review",
		Title:    "  Review  ",
		MetaText: &meta,
		Body: `<article>
			<h1>Review</h1>
			<p>The quick brown fox.</p><p>Jumps over</p>
			<h2>Details</h2><h2>More</h2>
			<script>var ignored = "do not count";</script>
			<style>.x { color: red }</style>
		</article>`,
		Status: domain.ContentPublished,
	}

	snap, err := Build(item, now)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/articles/review", snap.URL)
	assert.Equal(t, "c-1", snap.ContentID)
	assert.Equal(t, "Review", snap.Title)
	require.NotNil(t, snap.MetaText)
	assert.Equal(t, meta, *snap.MetaText)
	assert.Equal(t, map[string]int{"h1": 1, "h2": 2}, snap.HeadingCounts)
	assert.Equal(t, "Review The quick brown fox. Jumps over Details More", snap.ContentPreview)
	assert.Equal(t, 9, snap.WordCount)
	assert.Equal(t, now, snap.LastCrawledAt)
	assert.Empty(t, snap.ID)
}

func TestBuild_CopiesMetaText(t *testing.T) {
	meta := "original"
	item := domain.ContentItem{ID: "c-1", URL: "https://example.com/a", MetaText: &meta}

	snap, err := Build(item, now)
	require.NoError(t, err)
	meta = "changed"

	assert.Equal(t, "original", *snap.MetaText)
}

func TestBuild_PlainTextBody(t *testing.T) {
	item := domain.ContentItem{ID: "c-2", URL: "https://example.com/b", Title: "Plain", Body: "just   some\nplain text"}

	snap, err := Build(item, now)

	require.NoError(t, err)
	assert.Equal(t, "just some plain text", snap.ContentPreview)
	assert.Equal(t, 4, snap.WordCount)
	assert.Empty(t, snap.HeadingCounts)
	assert.Nil(t, snap.MetaText)
}

func TestBuild_EmptyBody(t *testing.T) {
	snap, err := Build(domain.ContentItem{ID: "c-3", URL: "https://example.com/c"}, now)

	require.NoError(t, err)
	assert.Equal(t, 0, snap.WordCount)
	assert.Equal(t, "", snap.ContentPreview)
	assert.NotNil(t, snap.HeadingCounts)
}

func TestBuild_PreviewIsBounded(t *testing.T) {
	body := "<p>" + strings.Repeat("wörd ", 400) + "</p>"
	item := domain.ContentItem{ID: "c-4", URL: "https://example.com/d", Body: body}

	snap, err := Build(item, now)

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(snap.ContentPreview)), PreviewLength)
	assert.True(t, strings.HasSuffix(snap.ContentPreview, "wörd"))
	assert.Equal(t, 400, snap.WordCount)
}

func TestBuild_RejectsMalformedItems(t *testing.T) {
	tests := []struct {
		name string
		item domain.ContentItem
	}{
		{"missing url", domain.ContentItem{ID: "c-5", Body: "x"}},
		{"invalid utf8 body", domain.ContentItem{ID: "c-6", URL: "https://example.com/e", Body: "bad \xff\xfe"}},
		{"invalid utf8 title", domain.ContentItem{ID: "c-7", URL: "https://example.com/f", Title: "\xc3\x28"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.item, now)
			assert.Error(t, err)
		})
	}
}

func TestBuild_IsRepeatable(t *testing.T) {
	item := domain.ContentItem{ID: "c-8", URL: "https://example.com/g", Title: "T", Body: "<h1>a</h1><h1>b</h1><p>c</p>"}

	first, err := Build(item, now)
	require.NoError(t, err)
	second, err := Build(item, now.Add(time.Hour))
	require.NoError(t, err)

	second.LastCrawledAt = first.LastCrawledAt
	assert.Equal(t, first, second)
}
