// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import "unsafe"

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
//
// On an unbounded queue Enqueue always succeeds; the error result exists
// so producers and consumers of bounded and unbounded queues share one
// interface shape across the queue ecosystem.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into the queue's internal buffer.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value, copied out of the queue's internal
// buffer; the slot is cleared so referenced objects stay collectable.
// For large types, consider the Ptr variant instead to avoid copy
// overhead.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is observed empty.
	Dequeue() (T, error)
}

// Handle is the shared-ownership surface of a queue handle.
//
// Clone duplicates the handle for another goroutine; Release drops it.
// The final Release across all clones tears the shared core down. H is
// the concrete handle type, so Clone round-trips without assertions:
//
//	func worker[H Handle[H]](h H) {
//	    mine := h.Clone()
//	    defer mine.Release()
//	    ...
//	}
type Handle[H any] interface {
	// Clone returns a new handle sharing the same queue core.
	Clone() H

	// Release drops this handle; the final release tears down the core.
	Release()
}

// ProducerIndirect enqueues uintptr values (non-blocking).
//
// Indirect queues pass indices or handles instead of full objects, which
// suits buffer pools and other index-based structures.
type ProducerIndirect interface {
	// Enqueue adds an element to the queue. Never blocks.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (0, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (uintptr, error)
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
//
// Ptr queues pass pointers without copying the pointed-to object. The
// producer transfers ownership: after enqueueing, it must not touch the
// object again.
type ProducerPtr interface {
	// Enqueue adds an element to the queue. Never blocks.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (nil, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (unsafe.Pointer, error)
}
