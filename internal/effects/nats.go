package effects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// natsConn is the subset of *nats.Conn used here.
type natsConn interface {
	Publish(subject string, data []byte) error
}

// ConnectNATS dials the NATS server and keeps reconnecting on its own.
func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("auction-marketplace"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: connect %s: %w", url, err)
	}
	return conn, nil
}

// NATSPublisher publishes JSON payloads under a subject prefix, e.g.
// "auction.notification.auction_won".
type NATSPublisher struct {
	conn   natsConn
	prefix string
}

func NewNATSPublisher(conn natsConn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("nats: marshal %s payload: %w", subject, err)
	}
	full := subject
	if p.prefix != "" {
		full = p.prefix + "." + subject
	}
	if err := p.conn.Publish(full, data); err != nil {
		return fmt.Errorf("nats: publish %s: %w", full, err)
	}
	return nil
}

// NATSMailer hands emails to an external mail relay subscribed on "<prefix>.email".
type NATSMailer struct {
	publisher *NATSPublisher
}

func NewNATSMailer(publisher *NATSPublisher) *NATSMailer {
	return &NATSMailer{publisher: publisher}
}

func (m *NATSMailer) Send(ctx context.Context, email Email) error {
	return m.publisher.Publish(ctx, "email", email)
}

var (
	_ Publisher = (*NATSPublisher)(nil)
	_ Mailer    = (*NATSMailer)(nil)
)
