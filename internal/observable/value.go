// Package observable holds a value that state holders publish and front-ends watch.
package observable

import (
	"context"
	"sync"

	"github.com/smallnest/chanx"
)

// subscription is one subscriber's unbounded queue
type subscription[T any] struct {
	queue  *chanx.UnboundedChan[T]
	cancel context.CancelFunc
}

// Value stores the latest T and pushes every change to its subscribers.
// Publishing never blocks: each subscriber has its own unbounded queue.
type Value[T any] struct {
	mu          sync.RWMutex
	current     T
	closed      bool
	subscribers map[<-chan T]*subscription[T]
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:     initial,
		subscribers: make(map[<-chan T]*subscription[T]),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the current value and notifies subscribers
func (v *Value[T]) Set(next T) {
	v.Update(func(T) T { return next })
}

// Update applies fn to the current value under the lock, stores and publishes the result
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = fn(v.current)
	if !v.closed {
		for _, sub := range v.subscribers {
			sub.queue.In <- v.current
		}
	}
	return v.current
}

// Subscribe returns a channel that first receives the current value and then every change.
// The channel is closed by Unsubscribe or Close.
func (v *Value[T]) Subscribe() <-chan T {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription[T]{
		queue:  chanx.NewUnboundedChan[T](ctx, 8),
		cancel: cancel,
	}
	if v.closed {
		cancel()
		close(sub.queue.In)
		return sub.queue.Out
	}

	v.subscribers[sub.queue.Out] = sub
	sub.queue.In <- v.current
	return sub.queue.Out
}

// Unsubscribe stops delivery to ch and closes it
func (v *Value[T]) Unsubscribe(ch <-chan T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sub, ok := v.subscribers[ch]; ok {
		delete(v.subscribers, ch)
		sub.stop()
	}
}

// Close unsubscribes everyone. The value can still be read and updated afterwards.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	for ch, sub := range v.subscribers {
		delete(v.subscribers, ch)
		sub.stop()
	}
}

// Subscribers reports how many channels are currently attached
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subscribers)
}

func (s *subscription[T]) stop() {
	s.cancel()
	close(s.queue.In)
}
