// Package broker fans committed document snapshots out to the streams that
// follow them. Hub delivers inside one process; RedisBroker carries the same
// events between server instances.
package broker

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// Event is a committed document snapshot.
type Event struct {
	Identity document.Identity `json:"identity"`
	Body     document.Raw      `json:"body"`
	Version  int64             `json:"version"`
}

// Broker publishes events and hands out per-identity subscriptions.
type Broker interface {
	Publish(ctx context.Context, ev Event) error
	// Subscribe returns a channel of events for id and a function that ends
	// the subscription and closes the channel.
	Subscribe(id document.Identity) (<-chan Event, func())
}

type subscription struct {
	ch chan Event
}

// Hub is an in-process Broker. Each subscriber holds at most one pending
// event; a newer event replaces an undelivered older one.
type Hub struct {
	mu   sync.Mutex
	subs map[document.Identity]map[*subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[document.Identity]map[*subscription]struct{}{}}
}

func (h *Hub) Publish(_ context.Context, ev Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs[ev.Identity] {
		select {
		case s.ch <- ev:
			continue
		default:
		}
		// drop the stale pending event
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- ev:
		default:
		}
	}
	return nil
}

func (h *Hub) Subscribe(id document.Identity) (<-chan Event, func()) {
	s := &subscription{ch: make(chan Event, 1)}

	h.mu.Lock()
	set, ok := h.subs[id]
	if !ok {
		set = map[*subscription]struct{}{}
		h.subs[id] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[id], s)
			if len(h.subs[id]) == 0 {
				delete(h.subs, id)
			}
			close(s.ch)
		})
	}
}

// Subscribers reports how many subscriptions follow id.
func (h *Hub) Subscribers(id document.Identity) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}
