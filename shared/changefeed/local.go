package changefeed

import (
	"context"
	"sync"
)

// Local is an in-process Feed. It backs single-node setups and tests.
type Local struct {
	mu        sync.Mutex
	listeners map[string]map[*localListener]struct{}
}

func NewLocal() *Local {
	return &Local{listeners: map[string]map[*localListener]struct{}{}}
}

func (f *Local) Publish(_ context.Context, topic string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for l := range f.listeners[topic] {
		notify(l.signal)
	}

	return nil
}

func (f *Local) Listen(_ context.Context, topic string) (Listener, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l := &localListener{feed: f, topic: topic, signal: make(chan struct{}, 1)}

	if f.listeners[topic] == nil {
		f.listeners[topic] = map[*localListener]struct{}{}
	}

	f.listeners[topic][l] = struct{}{}

	return l, nil
}

// Listeners reports how many listeners are registered on topic.
func (f *Local) Listeners(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.listeners[topic])
}

type localListener struct {
	feed   *Local
	topic  string
	signal chan struct{}
	once   sync.Once
}

func (l *localListener) C() <-chan struct{} {
	return l.signal
}

func (l *localListener) Close() error {
	l.once.Do(func() {
		l.feed.mu.Lock()
		defer l.feed.mu.Unlock()

		delete(l.feed.listeners[l.topic], l)
		close(l.signal)
	})

	return nil
}
