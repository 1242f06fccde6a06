// Package eventbus is an in-process publish/subscribe hub. A Bus is constructed
// explicitly and closed at shutdown; there is no package-level instance.
package eventbus

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const DefaultBuffer = 16

type Filter[E any] func(event E) bool

type Bus[E any] struct {
	mu     sync.RWMutex
	subs   map[*Subscription[E]]struct{}
	buffer int
	closed bool
}

func New[E any](buffer int) *Bus[E] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return &Bus[E]{
		subs:   map[*Subscription[E]]struct{}{},
		buffer: buffer,
	}
}

type Subscription[E any] struct {
	C <-chan E

	ch     chan E
	bus    *Bus[E]
	filter Filter[E]
	once   sync.Once
}

// Subscribe registers a subscriber receiving every event accepted by filter.
// A nil filter accepts everything. Subscribing to a closed bus yields a
// subscription whose channel is already closed.
func (b *Bus[E]) Subscribe(filter Filter[E]) *Subscription[E] {
	ch := make(chan E, b.buffer)
	sub := &Subscription[E]{C: ch, ch: ch, bus: b, filter: filter}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		sub.once.Do(func() { close(ch) })

		return sub
	}

	b.subs[sub] = struct{}{}

	return sub
}

// Publish never blocks. A subscriber whose buffer is full misses the event.
func (b *Bus[E]) Publish(event E) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subs {
		if sub.filter != nil && !sub.filter(event) {
			continue
		}

		select {
		case sub.ch <- event:
		default:
			log.Warn().Msg("event bus subscriber is full, dropping event")
		}
	}
}

// Subscribers reports the number of open subscriptions.
func (b *Bus[E]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close closes every subscription. Later publishes are no-ops.
func (b *Bus[E]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for sub := range b.subs {
		sub.once.Do(func() { close(sub.ch) })
		delete(b.subs, sub)
	}
}

func (s *Subscription[E]) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	delete(s.bus.subs, s)
	s.once.Do(func() { close(s.ch) })
}
