package invalidation

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaConfig describes the change topic.
type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

type kafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSource consumes change events with a consumer group.
type KafkaSource struct {
	reader kafkaReader
}

// NewKafkaSource creates a consumer-group reader on the change topic.
func NewKafkaSource(cfg KafkaConfig) *KafkaSource {
	return &KafkaSource{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{cfg.Broker},
			Topic:          cfg.Topic,
			GroupID:        cfg.GroupID,
			MinBytes:       1,
			MaxBytes:       1 << 20,
			CommitInterval: time.Second,
		}),
	}
}

// Next reads the next message; offsets are committed by the reader.
func (s *KafkaSource) Next(ctx context.Context) ([]byte, error) {
	msg, err := s.reader.ReadMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read kafka message: %w", err)
	}
	return msg.Value, nil
}

func (s *KafkaSource) Close() error {
	return s.reader.Close()
}

// KafkaPublisher writes change events keyed by entity and id.
type KafkaPublisher struct {
	writer kafkaWriter
}

// NewKafkaPublisher creates a synchronous writer for the change topic.
func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Broker),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	data, err := event.Encode()
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(string(event.Entity) + ":" + event.ID),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
