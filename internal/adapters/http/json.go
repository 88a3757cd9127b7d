package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	api "metaaudit/internal/api"
	"metaaudit/internal/domain"
	"metaaudit/internal/logger"
)

func toJob(j domain.CrawlJob) api.CrawlJob {
	return api.CrawlJob{
		Id:           j.ID,
		Scope:        j.Scope,
		MaxPages:     j.MaxPages,
		Status:       api.CrawlJobStatus(j.Status),
		PagesFound:   j.PagesFound,
		PagesCrawled: j.PagesCrawled,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt,
		CompletedAt:  j.CompletedAt,
		LastError:    j.LastError,
	}
}

func toPageError(e domain.PageCrawlError) api.PageCrawlError {
	return api.PageCrawlError{Url: e.URL, ContentId: e.ContentID, Message: e.Message, OccurredAt: e.OccurredAt}
}

func toSuggestion(s domain.MetaSuggestion) api.Suggestion {
	return api.Suggestion{
		Id:             s.ID,
		SnapshotId:     s.SnapshotID,
		SuggestionText: s.SuggestionText,
		Status:         api.SuggestionStatus(s.Status),
		Confidence:     s.Confidence,
		CreatedAt:      s.CreatedAt,
		ResolvedAt:     s.ResolvedAt,
		ResolvedBy:     s.ResolvedBy,
		FinalText:      s.FinalText,
	}
}

func toPage(p domain.PageDetail) api.Page {
	issues := make([]api.Issue, 0, len(p.Issues))
	for _, is := range p.Issues {
		issues = append(issues, api.Issue{Type: string(is.Type), Severity: string(is.Severity), Description: is.Description})
	}
	s := p.Snapshot
	page := api.Page{
		Id:             s.ID,
		Url:            s.URL,
		ContentId:      s.ContentID,
		Title:          s.Title,
		MetaText:       s.MetaText,
		ContentPreview: s.ContentPreview,
		HeadingCounts:  s.HeadingCounts,
		WordCount:      s.WordCount,
		LastCrawledAt:  s.LastCrawledAt,
		Issues:         issues,
	}
	if len(p.Suggestions) > 0 {
		history := make([]api.Suggestion, 0, len(p.Suggestions))
		for _, sg := range p.Suggestions {
			history = append(history, toSuggestion(sg))
		}
		page.Suggestions = &history
	}
	return page
}

// badRequest marks failures to bind the path, query or body.
type badRequest struct{ err error }

func (e *badRequest) Error() string { return e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }

func statusFor(err error) int {
	var br *badRequest
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrEditedTextRequired),
		errors.Is(err, domain.ErrApproverRequired),
		errors.Is(err, domain.ErrInvalidScope):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGenerationFailed),
		errors.Is(err, domain.ErrWriteBackFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requestError handles parameter binding and body decoding failures from the
// generated wrappers.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, &badRequest{err: err})
}

// responseError handles errors returned by the strict handlers.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, err)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", logger.Error(err))
		msg = http.StatusText(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
