package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/metrics"
	"feed-admin/cmd/api/router"
	"feed-admin/cmd/api/services"
	"feed-admin/cmd/internal/eventbus"
	"feed-admin/cmd/internal/logger"
	"feed-admin/cmd/internal/moderation"
	"feed-admin/config"
)

const shutdownTimeout = 15 * time.Second

// @title           Feed Admin API
// @version         1.0
// @description     Moderation dashboard backend for the social feed
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := feedclient.New(cfg.FeedAPI)
	dispatcher := moderation.NewDispatcher(feed)
	dispatcher.Subscribe(metrics.RecordAction)

	var audit *eventbus.AuditPublisher
	if cfg.Audit.Enabled {
		audit = startAudit(ctx, cfg.Audit, dispatcher)
	}

	views := services.NewViewService(feed, dispatcher, services.ViewConfig{
		PostsPageSize:      cfg.Paging.PostsPageSize,
		EngagementPageSize: cfg.Paging.EngagementPageSize,
		DedupeEngagement:   cfg.Paging.DedupeEngagement,
		IdleTimeout:        cfg.Views.IdleTimeout,
		SweepInterval:      cfg.Views.SweepInterval,
		DedupeCapacity:     cfg.Notifications.DedupeCapacity,
		MaxPending:         cfg.Notifications.MaxPending,
	}, metrics.PagingObserver{})
	admin := services.NewAdminService(feed, cfg.Paging.PostsPageSize)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		views.Run(ctx)
	}()

	r := router.New(router.Deps{Views: views, Admin: admin})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.WithCORS(r, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("starting feed admin api", logger.Fields{
			"addr":          cfg.Server.Addr,
			"feed_base_url": cfg.FeedAPI.BaseURL,
			"audit":         cfg.Audit.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("http server stopped", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down feed admin api...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("http server shutdown failed", logger.Fields{"error": err.Error()})
	}

	cancel()
	wg.Wait()
	views.Close()
	if audit != nil {
		audit.Close()
	}

	logger.Log.Info("feed admin api stopped")
}

// startAudit 는 모더레이션 결과를 Kafka 감사 토픽으로 발행하도록 Dispatcher 에 연결한다.
// Kafka 연결에 실패하면 감사 없이 계속 동작한다.
func startAudit(ctx context.Context, cfg config.AuditConfig, dispatcher *moderation.Dispatcher) *eventbus.AuditPublisher {
	if err := eventbus.EnsureTopic(ctx, cfg.Brokers, cfg.Topic, 1); err != nil {
		logger.WarnWithFields("audit topic ensure failed", logger.Fields{"topic": cfg.Topic, "error": err.Error()})
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		logger.ErrorWithFields("audit disabled: kafka producer init failed", logger.Fields{"error": err.Error()})
		return nil
	}
	audit := eventbus.NewAuditPublisher(bus, cfg.Topic)
	dispatcher.Subscribe(audit.Listen)
	return audit
}
