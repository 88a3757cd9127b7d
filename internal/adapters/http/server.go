package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "metaaudit/internal/api"
	"metaaudit/internal/logger"
	"metaaudit/internal/ports"
)

const (
	defaultWaitTimeout = 30 * time.Second
	maxBodyBytes       = 1 << 20
)

// Server implements the generated StrictServerInterface.
type Server struct {
	crawls      ports.Crawls
	pages       ports.Pages
	suggestions ports.Suggestions
	approvals   ports.Approvals
	metrics     http.Handler
	log         logger.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(crawls ports.Crawls, pages ports.Pages, suggestions ports.Suggestions, approvals ports.Approvals, metrics http.Handler, log logger.Logger) *Server {
	return &Server{crawls: crawls, pages: pages, suggestions: suggestions, approvals: approvals, metrics: metrics, log: log}
}

// Routes returns a chi.Router mounting the generated handlers and /metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(limitBody)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) PostCrawls(ctx context.Context, req api.PostCrawlsRequestObject) (api.PostCrawlsResponseObject, error) {
	var scope string
	var maxPages int
	if req.Body != nil {
		scope = deref(req.Body.Scope)
		maxPages = deref(req.Body.MaxPages)
	}
	id, err := s.crawls.StartCrawl(ctx, scope, maxPages)
	if err != nil {
		return nil, err
	}

	// Blocking path for scripts and tests.
	if !deref(req.Params.Wait) {
		return api.PostCrawls202JSONResponse{JobId: id}, nil
	}
	timeout := defaultWaitTimeout
	if t := deref(req.Params.Timeout); t > 0 {
		timeout = time.Duration(t) * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	job, err := s.crawls.ProcessInline(waitCtx, id)
	if job.ID == "" {
		return nil, err
	}
	// A FAILED job is still a result; LastError carries the cause. So is a
	// job still running when the timeout hit.
	return api.PostCrawls200JSONResponse(toJob(job)), nil
}

func (s *Server) GetCrawls(ctx context.Context, req api.GetCrawlsRequestObject) (api.GetCrawlsResponseObject, error) {
	jobs, err := s.crawls.ListJobs(ctx, deref(req.Params.Limit))
	if err != nil {
		return nil, err
	}
	out := make(api.GetCrawls200JSONResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJob(j))
	}
	return out, nil
}

func (s *Server) GetCrawlsId(ctx context.Context, req api.GetCrawlsIdRequestObject) (api.GetCrawlsIdResponseObject, error) {
	job, err := s.crawls.GetJob(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetCrawlsId200JSONResponse(toJob(job)), nil
}

func (s *Server) GetCrawlsIdErrors(ctx context.Context, req api.GetCrawlsIdErrorsRequestObject) (api.GetCrawlsIdErrorsResponseObject, error) {
	errs, err := s.crawls.ListErrors(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.GetCrawlsIdErrors200JSONResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, toPageError(e))
	}
	return out, nil
}

func (s *Server) PostCrawlsIdCancel(ctx context.Context, req api.PostCrawlsIdCancelRequestObject) (api.PostCrawlsIdCancelResponseObject, error) {
	job, err := s.crawls.Cancel(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.PostCrawlsIdCancel200JSONResponse(toJob(job)), nil
}

func (s *Server) GetPages(ctx context.Context, req api.GetPagesRequestObject) (api.GetPagesResponseObject, error) {
	pages, err := s.pages.List(ctx, deref(req.Params.Limit), deref(req.Params.Offset))
	if err != nil {
		return nil, err
	}
	out := make(api.GetPages200JSONResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, toPage(p))
	}
	return out, nil
}

func (s *Server) GetPagesId(ctx context.Context, req api.GetPagesIdRequestObject) (api.GetPagesIdResponseObject, error) {
	page, err := s.pages.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetPagesId200JSONResponse(toPage(page)), nil
}

func (s *Server) GetPagesIdSuggestions(ctx context.Context, req api.GetPagesIdSuggestionsRequestObject) (api.GetPagesIdSuggestionsResponseObject, error) {
	history, err := s.suggestions.ListForSnapshot(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.GetPagesIdSuggestions200JSONResponse, 0, len(history))
	for _, sg := range history {
		out = append(out, toSuggestion(sg))
	}
	return out, nil
}

func (s *Server) PostPagesIdSuggestions(ctx context.Context, req api.PostPagesIdSuggestionsRequestObject) (api.PostPagesIdSuggestionsResponseObject, error) {
	sg, err := s.suggestions.Generate(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.PostPagesIdSuggestions201JSONResponse(toSuggestion(sg)), nil
}

func (s *Server) GetSuggestionsId(ctx context.Context, req api.GetSuggestionsIdRequestObject) (api.GetSuggestionsIdResponseObject, error) {
	sg, err := s.suggestions.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetSuggestionsId200JSONResponse(toSuggestion(sg)), nil
}

func (s *Server) PostSuggestionsIdResolve(ctx context.Context, req api.PostSuggestionsIdResolveRequestObject) (api.PostSuggestionsIdResolveResponseObject, error) {
	body := req.Body
	sg, err := s.approvals.Resolve(ctx, req.Id, string(body.Action), body.Approver, body.EditedText)
	if err != nil {
		return nil, err
	}
	return api.PostSuggestionsIdResolve200JSONResponse(toSuggestion(sg)), nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
