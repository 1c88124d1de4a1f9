package mock

import (
	"context"
	"sync"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
)

// Notifier is a configurable mock implementation of domain.Notifier.
// It records every message handed to Send for later inspection.
type Notifier struct {
	err error

	mu   sync.Mutex
	sent []domain.NotificationMessage
}

// NewNotifier creates a new mock notifier that accepts every message.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// WithError configures the notifier to fail every delivery.
func (n *Notifier) WithError(err error) *Notifier {
	n.err = err
	return n
}

// Send implements domain.Notifier.Send.
func (n *Notifier) Send(ctx context.Context, msg domain.NotificationMessage) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if n.err != nil {
		return n.err
	}

	n.mu.Lock()
	n.sent = append(n.sent, msg)
	n.mu.Unlock()
	return nil
}

// Sent returns a copy of the messages delivered so far, in order.
func (n *Notifier) Sent() []domain.NotificationMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.NotificationMessage, len(n.sent))
	copy(out, n.sent)
	return out
}

// SendCount returns the number of successful deliveries.
func (n *Notifier) SendCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// Ensure Notifier implements domain.Notifier at compile time.
var _ domain.Notifier = (*Notifier)(nil)
