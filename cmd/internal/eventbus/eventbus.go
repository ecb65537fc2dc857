package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventBus 인터페이스는 이벤트 발행의 추상화를 정의합니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// EventHandler 는 구독한 이벤트 하나를 처리합니다.
type EventHandler func(ctx context.Context, evt Event) error

// Subscriber 는 감사 토픽을 읽는 쪽(audittail)이 사용합니다.
type Subscriber interface {
	Subscribe(ctx context.Context, groupID, topic string, handler EventHandler) error
}

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 UUID 를 생성합니다.
func NewJSONEvent(id, eventType string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:         id,
		Type:       eventType,
		Payload:    b,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// DecodeJSON은 Event.Payload를 제네릭 타입으로 언마샬합니다.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("payload unmarshal 실패: %w", err)
	}
	return out, nil
}
