package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"feed-admin/cmd/internal/logger"
)

// KafkaEventBus는 confluent-kafka-go 라이브러리를 사용한 EventBus 구현체입니다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

// NewKafkaEventBus는 Kafka Producer를 초기화합니다.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5, // Producer는 일시적인 오류 발생 시 최대 5회 재시도합니다.
	})
	if err != nil {
		return nil, fmt.Errorf("kafka Producer 생성 실패: %w", err)
	}

	// Producer 이벤트를 처리하는 고루틴 (전달 보고서 등)
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.ErrorWithFields("kafka message delivery failed", logger.Fields{
						"topic_partition": ev.TopicPartition.String(),
						"error":           ev.TopicPartition.Error.Error(),
					})
				}
			case kafka.Error:
				logger.ErrorWithFields("kafka error", logger.Fields{"error": ev.Error()})
			}
		}
	}()

	return &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// Close는 Producer를 안전하게 종료합니다.
func (k *KafkaEventBus) Close() {
	if k.Producer != nil {
		// 5초 동안 남은 메시지를 모두 플러시합니다.
		if remaining := k.Producer.Flush(5000); remaining > 0 {
			logger.WarnWithFields("kafka messages left after flush", logger.Fields{"remaining": remaining})
		}
		k.Producer.Close()
		logger.Log.Info("Kafka Producer 종료.")
	}
}

// Publish는 지정된 토픽에 이벤트를 발행하고 전달 결과를 기다립니다.
// 메시지 키는 key 가 있으면 key, 없으면 event.ID 를 사용합니다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	return k.PublishKeyed(ctx, topic, event.ID, event)
}

// PublishKeyed 는 같은 key 의 메시지가 같은 파티션으로 가도록 key 를 지정해 발행합니다.
func (k *KafkaEventBus) PublishKeyed(ctx context.Context, topic, key string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}
	if key == "" {
		key = event.ID
	}

	deliveryChan := make(chan kafka.Event, 1)

	// 메시지 생성 및 전송
	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(key),
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}

	// 전달 성공/실패 대기
	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("예상치 못한 전달 이벤트: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("메시지 전달 실패: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// Subscribe 는 topic 을 구독하고 메시지마다 handler 를 실행합니다.
// 감사 로그는 읽기 전용이므로 재시도/DLQ 없이 실패를 기록한 뒤 오프셋을 커밋합니다.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID, topic string, handler EventHandler) error {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  k.Brokers,
		"group.id":           groupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return fmt.Errorf("kafka Consumer 생성 실패: %w", err)
	}
	defer c.Close()

	if err := c.SubscribeTopics([]string{topic}, nil); err != nil {
		return fmt.Errorf("토픽 구독 실패 %s: %w", topic, err)
	}
	logger.InfoWithFields("consumer started", logger.Fields{"group_id": groupID, "topic": topic})

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("컨슈머 종료 중.")
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(100 * time.Millisecond)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			logger.WarnWithFields("kafka read failed", logger.Fields{"topic": topic, "error": err.Error()})
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.ErrorWithFields("event payload decode failed, skipping", logger.Fields{
				"topic":     topic,
				"partition": msg.TopicPartition.Partition,
				"offset":    msg.TopicPartition.Offset.String(),
				"error":     err.Error(),
			})
		} else if err := handler(ctx, evt); err != nil {
			logger.ErrorWithFields("event handler failed", logger.Fields{"event_id": evt.ID, "topic": topic, "error": err.Error()})
		}

		if _, err := c.CommitMessage(msg); err != nil {
			logger.ErrorWithFields("offset commit failed", logger.Fields{"topic": topic, "error": err.Error()})
		}
	}
}
