// Package notify fans ledger-change signals out to connected board
// clients. The hub carries only ticket identifiers: subscribers re-query
// the board they care about, so a signal lost to a slow consumer costs
// one refresh, never correctness.
package notify

import (
	"sync"

	"resto/internal/core/domain/model/kernel"
)

const subscriberBuffer = 16

// Hub implements ports.OrderPublisher over in-process channels.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan string]struct{}),
	}
}

// PublishOrderChanged signals that an order changed. Fire and forget: a
// subscriber whose buffer is full misses the signal.
func (h *Hub) PublishOrderChanged(id kernel.TicketID) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- id.String():
		default:
		}
	}
}

// Subscribe registers a listener. The returned cancel func must be
// called when the listener disconnects.
func (h *Hub) Subscribe() (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subscribers, ch)
		h.mu.Unlock()
	}

	return ch, cancel
}
