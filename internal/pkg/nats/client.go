package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	reconnectWait = 2 * time.Second
	maxReconnects = 10
)

// Client wraps a NATS connection used to publish domain events. Event
// delivery is fire-and-forget; callers log publish failures and move on.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server. The connection retries on its
// own after broker restarts, so a transient outage does not take the
// service down with it.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("campuspool"),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// IsConnected reports whether the client holds a live connection
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Publish sends an event payload to the given subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

// Close drains the connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
