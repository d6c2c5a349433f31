package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/invalidation"
	"github.com/light-bringer/shopcat-service/internal/pkg/clock"
)

var (
	transport = flag.String("transport", getEnvOrDefault("INVALIDATION", "kafka"), "Change transport: kafka or nats")
	entity    = flag.String("entity", "product", "Changed entity: product or category")
	id        = flag.String("id", "", "Changed record id")
	action    = flag.String("action", "updated", "Change action: created, updated or deleted")

	kafkaBroker = flag.String("kafka-broker", getEnvOrDefault("KAFKA_BROKER", "localhost:9092"), "Kafka broker address")
	kafkaTopic  = flag.String("kafka-topic", getEnvOrDefault("KAFKA_TOPIC", "catalog.changes"), "Kafka topic")
	natsURL     = flag.String("nats-url", getEnvOrDefault("NATS_URL", "nats://localhost:4222"), "NATS server URL")
	natsSubject = flag.String("nats-subject", getEnvOrDefault("NATS_SUBJECT", "catalog.changes"), "NATS subject")
)

func main() {
	flag.Parse()

	event := invalidation.NewEvent(invalidation.Entity(*entity), *id, invalidation.Action(*action), clock.NewRealClock().Now())
	if err := event.Validate(); err != nil {
		log.Fatalf("Invalid event: %v", err)
	}

	publisher, err := newPublisher()
	if err != nil {
		log.Fatalf("Failed to create publisher: %v", err)
	}
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		log.Fatalf("Failed to publish: %v", err)
	}

	log.Printf("Published %s %s %s via %s", event.Entity, event.ID, event.Action, *transport)
}

func newPublisher() (invalidation.Publisher, error) {
	switch *transport {
	case "nats":
		conn, err := invalidation.ConnectNATS(*natsURL)
		if err != nil {
			return nil, err
		}
		return &closingPublisher{Publisher: invalidation.NewNATSPublisher(conn, *natsSubject), close: conn.Close}, nil
	default:
		return invalidation.NewKafkaPublisher(invalidation.KafkaConfig{
			Broker: *kafkaBroker,
			Topic:  *kafkaTopic,
		}), nil
	}
}

// closingPublisher also closes the connection the publisher runs on.
type closingPublisher struct {
	invalidation.Publisher
	close func()
}

func (p *closingPublisher) Close() error {
	err := p.Publisher.Close()
	p.close()
	return err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
