// Package snapshots builds page snapshots from content items and serves the
// read side (snapshots with their issues and suggestion history).
package snapshots

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"metaaudit/internal/domain"
)

// PreviewLength bounds ContentPreview, in runes.
const PreviewLength = 500

var (
	errNoURL       = errors.New("content item has no url")
	errInvalidUTF8 = errors.New("content body is not valid UTF-8")
)

// skipped elements never contribute text.
const skipped = "script, style, noscript, template"

// Build extracts a snapshot from a content item. The body may be HTML or
// plain text. The returned snapshot has no ID; the store assigns one.
func Build(item domain.ContentItem, now time.Time) (domain.PageSnapshot, error) {
	if strings.TrimSpace(item.URL) == "" {
		return domain.PageSnapshot{}, fmt.Errorf("content %s: %w", item.ID, errNoURL)
	}
	if !utf8.ValidString(item.Body) || !utf8.ValidString(item.Title) {
		return domain.PageSnapshot{}, fmt.Errorf("content %s: %w", item.ID, errInvalidUTF8)
	}

	root, err := html.Parse(strings.NewReader(item.Body))
	if err != nil {
		return domain.PageSnapshot{}, fmt.Errorf("parse body of %s: %w", item.ID, err)
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find(skipped).Remove()

	words := strings.Fields(plainText(root))

	var meta *string
	if item.MetaText != nil {
		m := *item.MetaText
		meta = &m
	}

	return domain.PageSnapshot{
		URL:            item.URL,
		ContentID:      item.ID,
		Title:          strings.TrimSpace(item.Title),
		MetaText:       meta,
		ContentPreview: preview(words, PreviewLength),
		HeadingCounts:  headingCounts(doc),
		WordCount:      len(words),
		LastCrawledAt:  now.UTC(),
	}, nil
}

// headingCounts counts h1..h6 elements; absent levels are omitted.
func headingCounts(doc *goquery.Document) map[string]int {
	counts := make(map[string]int)
	for level := 1; level <= 6; level++ {
		tag := "h" + strconv.Itoa(level)
		if n := doc.Find(tag).Length(); n > 0 {
			counts[tag] = n
		}
	}
	return counts
}

// plainText joins every text node with a separator so adjacent block
// elements do not glue their words together.
func plainText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// preview joins words with single spaces and cuts the result at limit runes,
// backing off to the last word boundary when one exists.
func preview(words []string, limit int) string {
	joined := strings.Join(words, " ")
	if utf8.RuneCountInString(joined) <= limit {
		return joined
	}
	runes := []rune(joined)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}
