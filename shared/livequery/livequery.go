// Package livequery turns a one-shot store query into a sequence of snapshots
// that is refreshed whenever the change feed reports a write on its topic.
package livequery

import (
	"context"
	"flexwork/shared/changefeed"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Snapshot is the full current result of a query. When Err is set Items is nil
// and the subscription stays open.
type Snapshot[T any] struct {
	Items []T
	Err   error
}

type QueryFunc[T any] func(ctx context.Context) ([]T, error)

type Subscription[T any] struct {
	C <-chan Snapshot[T]

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Watch registers a listener on topic, emits the initial snapshot and then one
// snapshot per change signal. The subscription ends when ctx is done, the feed
// stops, or Close is called.
func Watch[T any](ctx context.Context, feed changefeed.Feed, topic string, query QueryFunc[T]) (*Subscription[T], error) {
	listener, err := feed.Listen(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", topic, err)
	}

	out := make(chan Snapshot[T])
	sub := &Subscription[T]{
		C:    out,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go sub.run(ctx, listener, topic, query, out)

	return sub, nil
}

func (s *Subscription[T]) run(ctx context.Context, listener changefeed.Listener, topic string, query QueryFunc[T], out chan<- Snapshot[T]) {
	defer close(s.done)
	defer close(out)
	defer func() {
		if err := listener.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close live query listener")
		}
	}()

	if !s.emit(ctx, query, out) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case _, ok := <-listener.C():
			if !ok {
				return
			}

			if !s.emit(ctx, query, out) {
				return
			}
		}
	}
}

func (s *Subscription[T]) emit(ctx context.Context, query QueryFunc[T], out chan<- Snapshot[T]) bool {
	items, err := query(ctx)

	snapshot := Snapshot[T]{Items: items, Err: err}
	if err != nil {
		snapshot.Items = nil
	}

	select {
	case out <- snapshot:
		return true
	case <-ctx.Done():
		return false
	case <-s.stop:
		return false
	}
}

// Close stops the subscription and returns once the feed listener is released.
// It is safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		close(s.stop)
	})

	<-s.done
}
