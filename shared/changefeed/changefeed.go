// Package changefeed announces that a table changed so live queries can re-run.
//
// Messages carry no payload beyond the topic; subscribers always re-read the
// store, which keeps a snapshot authoritative even when notifications coalesce.
package changefeed

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	TopicBookings      = "bookings"
	TopicNotifications = "notifications"

	channelPrefix = "changefeed:"
)

type Feed interface {
	Publish(ctx context.Context, topic string) error
	Listen(ctx context.Context, topic string) (Listener, error)
}

// Listener delivers one signal per observed change. Signals coalesce while the
// receiver is busy. Close is idempotent and returns after delivery stopped.
type Listener interface {
	C() <-chan struct{}
	Close() error
}

type redisFeed struct {
	client *redis.Client
}

func NewRedisFeed(client *redis.Client) Feed {
	return &redisFeed{client: client}
}

func (f *redisFeed) Publish(ctx context.Context, topic string) error {
	if err := f.client.Publish(ctx, channelPrefix+topic, topic).Err(); err != nil {
		return fmt.Errorf("failed to publish change on %s: %w", topic, err)
	}

	return nil
}

func (f *redisFeed) Listen(ctx context.Context, topic string) (Listener, error) {
	pubsub := f.client.Subscribe(ctx, channelPrefix+topic)

	// Receive blocks until the subscription is confirmed so no change published after
	// Listen returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, fmt.Errorf("failed to listen on %s: %w", topic, err)
	}

	l := &redisListener{
		pubsub: pubsub,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	go l.forward(topic)

	return l, nil
}

type redisListener struct {
	pubsub *redis.PubSub
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
	err    error
}

func (l *redisListener) forward(topic string) {
	defer close(l.done)
	defer close(l.signal)

	for range l.pubsub.Channel() {
		notify(l.signal)
	}

	log.Debug().Str("topic", topic).Msg("change feed listener stopped")
}

func (l *redisListener) C() <-chan struct{} {
	return l.signal
}

func (l *redisListener) Close() error {
	l.once.Do(func() {
		l.err = l.pubsub.Close()
		<-l.done
	})

	if l.err != nil {
		return fmt.Errorf("failed to close change feed listener: %w", l.err)
	}

	return nil
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
