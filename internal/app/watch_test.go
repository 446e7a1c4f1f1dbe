package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"fitfuel/internal/adapter/broker"
	"fitfuel/internal/app"
	"fitfuel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func next[T any](t *testing.T, ch <-chan app.Snapshot[T]) app.Snapshot[T] {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "stream closed")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	panic("unreachable")
}

func TestWatch_InitialAndPerChange(t *testing.T) {
	b := broker.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	ch := app.Watch(ctx, b, func(context.Context) (int32, error) {
		return runs.Add(1), nil
	}, domain.KindMeal)

	assert.Equal(t, int32(1), next(t, ch).Value)

	b.Publish(domain.KindGrocery) // not watched
	b.Publish(domain.KindMeal)
	assert.Equal(t, int32(2), next(t, ch).Value)

	b.Publish(domain.KindMeal)
	assert.Equal(t, int32(3), next(t, ch).Value)
}

func TestWatch_ErrorKeepsStreamOpen(t *testing.T) {
	b := broker.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("boom")
	var fail atomic.Bool
	fail.Store(true)
	ch := app.Watch(ctx, b, func(context.Context) (string, error) {
		if fail.Load() {
			return "", boom
		}
		return "ok", nil
	})

	s := next(t, ch)
	assert.ErrorIs(t, s.Err, boom)

	fail.Store(false)
	b.Publish(domain.KindProfile)
	s = next(t, ch)
	require.NoError(t, s.Err)
	assert.Equal(t, "ok", s.Value)
}

func TestWatch_CancelClosesAndUnsubscribes(t *testing.T) {
	b := broker.New()
	ctx, cancel := context.WithCancel(context.Background())

	ch := app.Watch(ctx, b, func(context.Context) (int, error) { return 0, nil }, domain.KindMeal)
	next(t, ch)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return b.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_BrokerCloseEndsStream(t *testing.T) {
	b := broker.New()
	ch := app.Watch(context.Background(), b, func(context.Context) (int, error) { return 0, nil })
	next(t, ch)
	b.Close()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("stream not closed")
	}
}
