package livequery_test

import (
	"context"
	"errors"
	"flexwork/shared/changefeed"
	"flexwork/shared/livequery"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topic = changefeed.TopicBookings

func receive[T any](t *testing.T, sub *livequery.Subscription[T]) livequery.Snapshot[T] {
	t.Helper()

	select {
	case snap, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")

		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	return livequery.Snapshot[T]{}
}

func TestWatch_EmitsInitialSnapshotAndRefreshes(t *testing.T) {
	ctx := context.Background()
	feed := changefeed.NewLocal()

	var calls atomic.Int32

	sub, err := livequery.Watch(ctx, feed, topic, func(context.Context) ([]int, error) {
		n := int(calls.Add(1))

		return []int{n}, nil
	})
	require.NoError(t, err)
	defer sub.Close()

	first := receive(t, sub)
	require.NoError(t, first.Err)
	assert.Equal(t, []int{1}, first.Items)

	require.NoError(t, feed.Publish(ctx, topic))

	second := receive(t, sub)
	require.NoError(t, second.Err)
	assert.Equal(t, []int{2}, second.Items)
}

func TestWatch_ErrorSnapshotKeepsSubscriptionOpen(t *testing.T) {
	ctx := context.Background()
	feed := changefeed.NewLocal()

	var calls atomic.Int32

	sub, err := livequery.Watch(ctx, feed, topic, func(context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			return []string{"stale"}, errors.New("store unavailable")
		}

		return []string{"b-1"}, nil
	})
	require.NoError(t, err)
	defer sub.Close()

	failed := receive(t, sub)
	assert.EqualError(t, failed.Err, "store unavailable")
	assert.Nil(t, failed.Items)

	require.NoError(t, feed.Publish(ctx, topic))

	recovered := receive(t, sub)
	assert.NoError(t, recovered.Err)
	assert.Equal(t, []string{"b-1"}, recovered.Items)
}

func TestSubscription_CloseUnregistersListener(t *testing.T) {
	ctx := context.Background()
	feed := changefeed.NewLocal()

	sub, err := livequery.Watch(ctx, feed, topic, func(context.Context) ([]int, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Listeners(topic))

	// Nobody reads the initial snapshot; Close must still return.
	sub.Close()
	sub.Close()

	assert.Equal(t, 0, feed.Listeners(topic))

	_, open := <-sub.C
	assert.False(t, open)
}

func TestWatch_ContextCancelEndsSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := changefeed.NewLocal()

	sub, err := livequery.Watch(ctx, feed, topic, func(context.Context) ([]int, error) {
		return []int{1}, nil
	})
	require.NoError(t, err)

	receive(t, sub)
	cancel()

	select {
	case _, open := <-sub.C:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription did not end after cancel")
	}

	assert.Equal(t, 0, feed.Listeners(topic))
}
