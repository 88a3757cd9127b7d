package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	anthropicadapter "metaaudit/internal/adapters/anthropic"
	httpadapter "metaaudit/internal/adapters/http"
	"metaaudit/internal/adapters/memory"
	pg "metaaudit/internal/adapters/postgres"
	redisadapter "metaaudit/internal/adapters/redis"
	"metaaudit/internal/config"
	"metaaudit/internal/logger"
	"metaaudit/internal/metrics"
	"metaaudit/internal/ports"
	"metaaudit/internal/services/approval"
	"metaaudit/internal/services/crawls"
	"metaaudit/internal/services/snapshots"
	"metaaudit/internal/services/suggestions"
	"metaaudit/internal/workers/crawlrunner"
)

type repositories interface {
	ports.SnapshotRepository
	ports.SuggestionRepository
	ports.CrawlJobRepository
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "metaaudit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.Env == "development"})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repos   repositories
		content ports.ContentStore
	)
	if cfg.InMemory() {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		repos = memory.New()
		content = memory.NewContentStore()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		repos = db
		content = pg.NewContentStore(db, cfg.SiteBaseURL)
	}

	var notifier ports.JobNotifier
	if cfg.RedisAddr != "" {
		client := redisadapter.NewClient(cfg.RedisAddr)
		defer func() { _ = client.Close() }()
		n := redisadapter.NewNotifier(client, log)
		if err := n.Ping(ctx); err != nil {
			log.Warn("redis unavailable, workers will poll only", logger.Error(err))
		} else {
			notifier = n
		}
	}

	if cfg.AnthropicAPIKey == "" {
		log.Warn("ANTHROPIC_API_KEY not set, suggestion generation will fail")
	}
	generator := anthropicadapter.New(cfg.AnthropicModel, option.WithAPIKey(cfg.AnthropicAPIKey))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	crawlSvc := crawls.New(repos, repos, content, log,
		crawls.WithNotifier(notifier),
		crawls.WithMetrics(m),
		crawls.WithDefaultMaxPages(cfg.CrawlDefaultMaxPages),
	)
	pageSvc := snapshots.New(repos, repos)
	suggestionSvc := suggestions.New(repos, repos, generator, log,
		suggestions.WithDefaultConfidence(cfg.DefaultConfidence),
		suggestions.WithMetrics(m),
	)
	approvalSvc := approval.New(repos, repos, content, log, m)

	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		crawlrunner.New(repos, crawlSvc, notifier, log, cfg.CrawlWorkers, cfg.CrawlPollInterval).Run(ctx)
	}()
	log.Info("crawl workers started", logger.Int("workers", cfg.CrawlWorkers))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpadapter.New(crawlSvc, pageSvc, suggestionSvc, approvalSvc, metrics.Handler(reg), log).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("listening", logger.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", logger.String("signal", sig.String()))
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", logger.Error(err))
	}
	cancel()
	<-runnerDone
	return nil
}
