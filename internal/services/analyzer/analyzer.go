// Package analyzer evaluates page snapshots against the metadata-quality
// rules. Analyze is pure: the same snapshot always yields the same issues in
// the same order.
package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"metaaudit/internal/domain"
)

const (
	MaxMetaLength = 160
	MinMetaLength = 120
)

// rule reports an issue description when it fires, or "" when it does not.
type rule struct {
	issue    domain.IssueType
	severity domain.Severity
	check    func(s domain.PageSnapshot) string
}

// rules are evaluated in this order and never short-circuit.
var rules = []rule{
	{domain.IssueMissingTitle, domain.SeverityCritical, missingTitle},
	{domain.IssueMissingMeta, domain.SeverityHigh, missingMeta},
	{domain.IssueTooLong, domain.SeverityMedium, tooLong},
	{domain.IssueTooShort, domain.SeverityLow, tooShort},
	{domain.IssueNoH1, domain.SeverityHigh, noH1},
	{domain.IssueMultipleH1, domain.SeverityMedium, multipleH1},
}

// Analyze returns every issue that applies to the snapshot. Issues carry the
// snapshot ID and their position in the list.
func Analyze(s domain.PageSnapshot) []domain.Issue {
	issues := make([]domain.Issue, 0, len(rules))
	for _, r := range rules {
		desc := r.check(s)
		if desc == "" {
			continue
		}
		issues = append(issues, domain.Issue{
			SnapshotID:  s.ID,
			Position:    len(issues),
			Type:        r.issue,
			Severity:    r.severity,
			Description: desc,
		})
	}
	return issues
}

// metaLength returns the rune length of the trimmed meta text and whether
// the meta text is present at all.
func metaLength(s domain.PageSnapshot) (int, bool) {
	if s.MetaText == nil {
		return 0, false
	}
	trimmed := strings.TrimSpace(*s.MetaText)
	if trimmed == "" {
		return 0, false
	}
	return utf8.RuneCountInString(trimmed), true
}

func missingTitle(s domain.PageSnapshot) string {
	if strings.TrimSpace(s.Title) == "" {
		return "page has no title"
	}
	return ""
}

func missingMeta(s domain.PageSnapshot) string {
	if _, ok := metaLength(s); !ok {
		return "page has no meta description"
	}
	return ""
}

func tooLong(s domain.PageSnapshot) string {
	if n, ok := metaLength(s); ok && n > MaxMetaLength {
		return fmt.Sprintf("meta description is %d characters; the maximum is %d", n, MaxMetaLength)
	}
	return ""
}

func tooShort(s domain.PageSnapshot) string {
	if n, ok := metaLength(s); ok && n < MinMetaLength {
		return fmt.Sprintf("meta description is %d characters; the minimum is %d", n, MinMetaLength)
	}
	return ""
}

func noH1(s domain.PageSnapshot) string {
	if s.HeadingCounts["h1"] == 0 {
		return "page has no h1 heading"
	}
	return ""
}

func multipleH1(s domain.PageSnapshot) string {
	if n := s.HeadingCounts["h1"]; n > 1 {
		return fmt.Sprintf("page has %d h1 headings; expected exactly one", n)
	}
	return ""
}
