package invalidation

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

type natsSubscription interface {
	NextMsgWithContext(ctx context.Context) (*nats.Msg, error)
	Unsubscribe() error
}

// ConnectNATS opens a connection that keeps reconnecting after outages.
func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("shopcat-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return conn, nil
}

// NATSSource reads change events from a core NATS subject.
type NATSSource struct {
	sub natsSubscription
}

// NewNATSSource subscribes to subject. The caller owns conn.
func NewNATSSource(conn *nats.Conn, subject string) (*NATSSource, error) {
	sub, err := conn.SubscribeSync(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	return &NATSSource{sub: sub}, nil
}

// Next waits for the next message on the subject.
func (s *NATSSource) Next(ctx context.Context) ([]byte, error) {
	msg, err := s.sub.NextMsgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read nats message: %w", err)
	}
	return msg.Data, nil
}

func (s *NATSSource) Close() error {
	return s.sub.Unsubscribe()
}

// NATSPublisher publishes change events on a subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher creates a publisher. The caller owns conn.
func NewNATSPublisher(conn *nats.Conn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

// Publish sends one event and waits for the server to acknowledge the flush.
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	data, err := event.Encode()
	if err != nil {
		return err
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush nats connection: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	return nil
}
