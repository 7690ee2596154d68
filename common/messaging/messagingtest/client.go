// Package messagingtest provides an in-memory messaging.Client for tests.
package messagingtest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/telhawk-systems/telhawk-audit/common/messaging"
)

// ErrClosed is returned by operations on a closed Client.
var ErrClosed = errors.New("messagingtest: client closed")

// Client delivers published messages synchronously to matching queue
// subscriptions and records everything published.
type Client struct {
	mu        sync.Mutex
	subs      []*subscription
	published []*messaging.Message
	closed    bool

	// PublishErr, when set, is returned from every publish call.
	PublishErr error
}

// NewClient returns a connected in-memory client.
func NewClient() *Client {
	return &Client{}
}

// Publish records a message with no headers and delivers it.
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	return c.PublishMsg(ctx, &messaging.Message{Subject: subject, Data: data})
}

// PublishMsg records msg and delivers it to the first valid subscription
// on the same subject. Handler errors are returned to the caller.
func (c *Client) PublishMsg(ctx context.Context, msg *messaging.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.PublishErr != nil {
		c.mu.Unlock()
		return c.PublishErr
	}
	m := *msg
	m.Timestamp = time.Now()
	c.published = append(c.published, &m)

	var target *subscription
	for _, s := range c.subs {
		if s.valid && s.subject == msg.Subject {
			target = s
			break
		}
	}
	c.mu.Unlock()

	if target == nil {
		return nil
	}
	return target.handler(ctx, &m)
}

// QueueSubscribe registers handler for subject. The queue name is recorded
// but every subscription on a subject shares one delivery slot.
func (c *Client) QueueSubscribe(subject, queue string, handler messaging.MessageHandler) (messaging.Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	s := &subscription{client: c, subject: subject, queue: queue, handler: handler, valid: true}
	c.subs = append(c.subs, s)
	return s, nil
}

// Published returns the messages published on subject, in order.
// An empty subject returns all of them.
func (c *Client) Published(subject string) []*messaging.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*messaging.Message
	for _, m := range c.published {
		if subject == "" || m.Subject == subject {
			out = append(out, m)
		}
	}
	return out
}

// Close unsubscribes everything and marks the client disconnected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.subs {
		s.valid = false
	}
	c.subs = nil
	c.closed = true
	return nil
}

// Drain is equivalent to Close.
func (c *Client) Drain() error {
	return c.Close()
}

// IsConnected reports whether Close has not been called.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

type subscription struct {
	client  *Client
	subject string
	queue   string
	handler messaging.MessageHandler
	valid   bool
}

func (s *subscription) Unsubscribe() error {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	s.valid = false
	return nil
}

func (s *subscription) Subject() string {
	return s.subject
}

func (s *subscription) IsValid() bool {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	return s.valid
}

var _ messaging.Client = (*Client)(nil)
