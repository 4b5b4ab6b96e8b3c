package events

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher sends a payload to a subject. Publish must not block on the network.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes on a core NATS connection. The client buffers
// outgoing messages, so Publish returns without waiting for the server.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url string, timeout time.Duration) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("sushibar"),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}

// Close flushes buffered messages and closes the connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
