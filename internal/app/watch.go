package app

import (
	"context"

	"fitfuel/internal/domain"
)

// Snapshot is one pushed result of a watched query.
type Snapshot[T any] struct {
	Value T
	Err   error
}

// Watch runs query once and again after every change to kinds, sending each
// result on the returned channel until ctx is done. Query errors are sent as
// snapshots; the stream stays open. Changes that arrive while a result is
// still unread collapse into a single re-run.
func Watch[T any](ctx context.Context, n domain.Notifier, query func(context.Context) (T, error), kinds ...domain.Kind) <-chan Snapshot[T] {
	// Subscribe before the first query so no change can slip in between.
	events, cancel := n.Subscribe(kinds...)
	out := make(chan Snapshot[T])

	go func() {
		defer close(out)
		defer cancel()

		for {
			v, err := query(ctx)
			select {
			case out <- Snapshot[T]{Value: v, Err: err}:
			case <-ctx.Done():
				return
			}

			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
