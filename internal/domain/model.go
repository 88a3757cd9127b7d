package domain

import "time"

// Core domain models used across services and adapters. HTTP payloads are
// shaped from these in internal/adapters/http.

type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentPublished ContentStatus = "published"
	ContentArchived  ContentStatus = "archived"
)

// ContentItem is owned by the content store; this service only reads it and
// writes back the meta text.
type ContentItem struct {
	ID       string
	URL      string
	Title    string
	MetaText *string
	Body     string
	Status   ContentStatus
}

type PageSnapshot struct {
	ID             string
	URL            string
	ContentID      string
	Title          string
	MetaText       *string
	ContentPreview string
	HeadingCounts  map[string]int
	WordCount      int
	LastCrawledAt  time.Time
}

// PageDetail is a snapshot with its current issue set and suggestion history.
type PageDetail struct {
	Snapshot    PageSnapshot
	Issues      []Issue
	Suggestions []MetaSuggestion
}

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

type IssueType string

const (
	IssueMissingTitle IssueType = "MISSING_TITLE"
	IssueMissingMeta  IssueType = "MISSING_META"
	IssueTooLong      IssueType = "TOO_LONG"
	IssueTooShort     IssueType = "TOO_SHORT"
	IssueNoH1         IssueType = "NO_H1"
	IssueMultipleH1   IssueType = "MULTIPLE_H1"
)

type Issue struct {
	SnapshotID  string
	Position    int
	Type        IssueType
	Severity    Severity
	Description string
}

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "PENDING"
	SuggestionApproved SuggestionStatus = "APPROVED"
	SuggestionRejected SuggestionStatus = "REJECTED"
	SuggestionEdited   SuggestionStatus = "EDITED"
)

type MetaSuggestion struct {
	ID             string
	SnapshotID     string
	SuggestionText string
	Status         SuggestionStatus
	Confidence     float64
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	ResolvedBy     *string
	FinalText      *string // set only when Status is EDITED
}

// AppliedText is the text committed to the content store for a resolved
// suggestion, or "" when nothing is written back.
func (s MetaSuggestion) AppliedText() string {
	switch s.Status {
	case SuggestionApproved:
		return s.SuggestionText
	case SuggestionEdited:
		if s.FinalText != nil {
			return *s.FinalText
		}
	}
	return ""
}

// Resolution describes a PENDING -> terminal transition.
type Resolution struct {
	Status     SuggestionStatus
	ResolvedBy string
	ResolvedAt time.Time
	FinalText  *string
}

type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
	JobCancelled JobStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed || s == JobCancelled
}

// ScopePublished is the only crawl scope: every published content item.
const ScopePublished = "published"

type CrawlJob struct {
	ID           string
	Scope        string
	MaxPages     int
	Status       JobStatus
	PagesFound   int
	PagesCrawled int
	CreatedAt    time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	LastError    *string
}

// PageCrawlError records an item that could not be processed during a job.
type PageCrawlError struct {
	ID         string
	JobID      string
	URL        string
	ContentID  string
	Message    string
	OccurredAt time.Time
}
