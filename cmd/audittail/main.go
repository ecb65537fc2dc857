package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"feed-admin/cmd/internal/eventbus"
	"feed-admin/cmd/internal/logger"
	"feed-admin/config"
)

// audittail 은 모더레이션 감사 토픽을 구독해 각 결과를 구조화 로그로 남긴다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if cfg.Audit.Brokers == "" {
		logger.Log.Error("audit.brokers (or KAFKA_BOOTSTRAP_SERVERS) is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := eventbus.EnsureTopic(ctx, cfg.Audit.Brokers, cfg.Audit.Topic, 1); err != nil {
		logger.Log.Errorf("failed to ensure audit topic %s: %v", cfg.Audit.Topic, err)
	}

	bus, err := eventbus.NewKafkaEventBus(cfg.Audit.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	groupID := os.Getenv("AUDIT_GROUP_ID")
	if groupID == "" {
		groupID = "feed-admin-audittail"
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := bus.Subscribe(ctx, groupID, cfg.Audit.Topic, eventbus.AuditHandler(logAudit))
		if err != nil && err != context.Canceled {
			logger.Log.Errorf("audit subscribe error: %v", err)
		}
	}()

	logger.Log.Info("starting audit tail...")

	select {
	case <-sigChan:
		logger.Log.Info("received shutdown signal, shutting down audit tail...")
	case <-done:
	}
	cancel()
	<-done

	logger.Log.Info("audit tail stopped")
}

func logAudit(_ context.Context, a eventbus.ModerationAudit) error {
	fields := logger.Fields{
		"action_id":  a.ActionID,
		"post_id":    a.PostID,
		"kind":       string(a.Kind),
		"succeeded":  a.Succeeded,
		"request_id": a.RequestID,
		"elapsed_ms": a.ElapsedMillis,
		"at":         a.CompletedAt,
	}
	if a.Reason != "" {
		fields["reason"] = a.Reason
	}
	if a.DurationHours != nil {
		fields["duration_hours"] = *a.DurationHours
	}
	if !a.Succeeded {
		fields["error"] = a.Error
		logger.WarnWithFields("moderation action failed", fields)
		return nil
	}
	logger.InfoWithFields("moderation action", fields)
	return nil
}
