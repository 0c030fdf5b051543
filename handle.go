// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import "code.hybscloud.com/atomix"

// Unbounded is a handle to a shared lock-free multi-producer multi-consumer
// unbounded FIFO queue.
//
// The queue grows by fixed-capacity nodes, so Enqueue never reports full;
// Dequeue reports ErrWouldBlock when the queue is observed empty.
//
// Handles are reference counted. Clone is the sanctioned way to share the
// queue across goroutines: each producer and consumer holds its own clone
// and calls Release when done. The final Release tears the core down,
// passing every still-queued item to the release hook installed by
// NewUnboundedFunc, if any.
//
// A handle itself belongs to one goroutine; the shared core behind it is
// what Clone hands out. Using a handle after Release is a usage error.
type Unbounded[T any] struct {
	core     *inner[T]
	released atomix.Bool
}

// NewUnbounded creates a new unbounded MPMC queue and returns its first
// handle.
func NewUnbounded[T any]() *Unbounded[T] {
	return NewUnboundedFunc[T](nil)
}

// NewUnboundedFunc creates a new unbounded MPMC queue whose final Release
// passes each item still in the queue to release. The hook runs on the
// goroutine performing the final Release, after all other handles are
// gone. Items returned by Dequeue are never passed to the hook.
func NewUnboundedFunc[T any](release func(T)) *Unbounded[T] {
	return &Unbounded[T]{core: newInner(release)}
}

// Enqueue adds an element to the queue. The element is copied into the
// queue's internal buffer.
//
// The queue is unbounded: Enqueue always returns nil. The error result is
// kept for Producer interface compatibility across the queue ecosystem.
func (q *Unbounded[T]) Enqueue(elem *T) error {
	q.core.push(*elem)
	return nil
}

// Dequeue removes and returns an element from the queue (non-blocking).
// Returns (zero-value, ErrWouldBlock) if the queue is observed empty.
func (q *Unbounded[T]) Dequeue() (T, error) {
	return q.core.pop()
}

// Clone returns a new handle to the same queue core.
func (q *Unbounded[T]) Clone() *Unbounded[T] {
	if q.released.Load() {
		panic("ulfq: clone of released handle")
	}
	q.core.refs.Add(1)
	return &Unbounded[T]{core: q.core}
}

// Release drops this handle. The final Release across all clones tears
// down the core: remaining items are passed to the release hook and every
// node is unlinked. Releasing a handle twice panics.
func (q *Unbounded[T]) Release() {
	if q.released.Load() {
		panic("ulfq: double release of handle")
	}
	q.released.Store(true)
	if q.core.refs.AddAcqRel(-1) == 0 {
		q.core.teardown()
	}
}
