package eventbus

import (
	"context"
	"sync"
	"time"

	"feed-admin/cmd/api/trace"
	"feed-admin/cmd/internal/logger"
	"feed-admin/cmd/internal/moderation"
)

const EventTypeModerationAction = "moderation.action"

// ModerationAudit 는 감사 토픽에 기록되는 모더레이션 결과다.
type ModerationAudit struct {
	ActionID      string          `json:"action_id"`
	PostID        string          `json:"post_id"`
	Kind          moderation.Kind `json:"kind"`
	Reason        string          `json:"reason,omitempty"`
	DurationHours *int            `json:"duration_hours,omitempty"`
	Succeeded     bool            `json:"succeeded"`
	Error         string          `json:"error,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	CompletedAt   time.Time       `json:"completed_at"`
	ElapsedMillis int64           `json:"elapsed_ms"`
}

func NewModerationAudit(ctx context.Context, ev moderation.Event) ModerationAudit {
	a := ModerationAudit{
		ActionID:      ev.ID,
		PostID:        ev.PostID,
		Kind:          ev.Action.Kind,
		Reason:        ev.Action.Reason,
		DurationHours: ev.Action.DurationHours,
		Succeeded:     ev.Succeeded(),
		RequestID:     trace.RequestIDFromContext(ctx),
		CompletedAt:   ev.At.UTC(),
		ElapsedMillis: ev.Elapsed.Milliseconds(),
	}
	if ev.Err != nil {
		a.Error = ev.Err.Error()
	}
	return a
}

// AuditPublisher 는 Dispatcher 이벤트를 받아 비동기로 감사 토픽에 발행한다.
// 발행 실패는 로그만 남기며 모더레이션 결과에는 영향을 주지 않는다.
type AuditPublisher struct {
	bus     EventBus
	topic   string
	timeout time.Duration

	wg sync.WaitGroup
}

func NewAuditPublisher(bus EventBus, topic string) *AuditPublisher {
	return &AuditPublisher{bus: bus, topic: topic, timeout: 10 * time.Second}
}

// Listen 은 moderation.Listener 로 등록된다.
func (p *AuditPublisher) Listen(ctx context.Context, ev moderation.Event) {
	audit := NewModerationAudit(ctx, ev)
	evt, err := NewJSONEvent(ev.ID, EventTypeModerationAction, audit)
	if err != nil {
		logger.ErrorWithFields("audit event build failed", logger.Fields{"action_id": ev.ID, "error": err.Error()})
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// 요청 컨텍스트는 응답 후 취소되므로 별도 타임아웃을 사용한다.
		pubCtx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := p.bus.Publish(pubCtx, p.topic, evt); err != nil {
			logger.ErrorWithFields("audit publish failed", logger.Fields{
				"action_id": ev.ID,
				"post_id":   ev.PostID,
				"topic":     p.topic,
				"error":     err.Error(),
			})
			return
		}
		logger.DebugWithFields("audit published", logger.Fields{"action_id": ev.ID, "topic": p.topic})
	}()
}

// Close 는 진행 중인 발행을 기다린 뒤 버스를 닫는다.
func (p *AuditPublisher) Close() {
	p.wg.Wait()
	p.bus.Close()
}

// AuditHandler 는 감사 토픽의 이벤트 중 모더레이션 결과만 디코딩해 fn 에 넘긴다.
// 다른 타입의 이벤트는 무시한다.
func AuditHandler(fn func(ctx context.Context, a ModerationAudit) error) EventHandler {
	return func(ctx context.Context, evt Event) error {
		if evt.Type != EventTypeModerationAction {
			return nil
		}
		a, err := DecodeJSON[ModerationAudit](evt)
		if err != nil {
			return err
		}
		return fn(ctx, a)
	}
}
