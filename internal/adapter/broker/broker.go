// Package broker fans record-change events out to in-process subscribers.
package broker

import (
	"sync"

	"fitfuel/internal/domain"
)

type subscriber struct {
	ch    chan domain.Kind
	kinds map[domain.Kind]struct{}
}

func (s *subscriber) wants(k domain.Kind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[k]
	return ok
}

// Broker implements domain.Notifier. The zero value is not usable; call New.
type Broker struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	closed bool
}

// New creates an empty broker.
func New() *Broker {
	return &Broker{subs: make(map[*subscriber]struct{})}
}

var _ domain.Notifier = (*Broker)(nil)

// Subscribe registers interest in kinds (all kinds when none are given).
// Each subscriber has a one-slot buffer: a notification that arrives while
// one is pending is dropped, since the pending one already means "re-query".
func (b *Broker) Subscribe(kinds ...domain.Kind) (<-chan domain.Kind, func()) {
	s := &subscriber{
		ch:    make(chan domain.Kind, 1),
		kinds: make(map[domain.Kind]struct{}, len(kinds)),
	}
	for _, k := range kinds {
		s.kinds[k] = struct{}{}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[s]; ok {
				delete(b.subs, s)
				close(s.ch)
			}
			b.mu.Unlock()
		})
	}
	return s.ch, cancel
}

// Publish notifies every subscriber interested in k. It never blocks.
func (b *Broker) Publish(k domain.Kind) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		if !s.wants(k) {
			continue
		}
		select {
		case s.ch <- k:
		default:
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscription channel. Later subscriptions receive an
// already-closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
		delete(b.subs, s)
	}
}
