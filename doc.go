// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ulfq provides an unbounded lock-free MPMC FIFO queue.
//
// The queue is a single-process shared-memory primitive: any number of
// producer and consumer goroutines operate on it concurrently without
// locks. Storage grows by fixed-capacity nodes linked into a chain, so
// Enqueue never blocks and never reports full; Dequeue is non-blocking
// and reports [ErrWouldBlock] when the queue is observed empty.
//
// # Quick Start
//
//	q := ulfq.NewUnbounded[Event]()
//	defer q.Release()
//
//	ev := Event{ID: 1}
//	q.Enqueue(&ev)          // always succeeds
//
//	got, err := q.Dequeue() // ErrWouldBlock when empty
//
// # Sharing Across Goroutines
//
// Handles are reference counted. Clone the handle once per goroutine and
// Release each clone when done; the final Release tears down the queue:
//
//	q := ulfq.NewUnbounded[Task]()
//
//	for range numWorkers {
//	    h := q.Clone()
//	    go func() {
//	        defer h.Release()
//	        backoff := iox.Backoff{}
//	        for {
//	            task, err := h.Dequeue()
//	            if err != nil {
//	                backoff.Wait() // empty; adaptive wait
//	                continue
//	            }
//	            backoff.Reset()
//	            task.Run()
//	        }
//	    }()
//	}
//
//	q.Release()
//
// Items still queued at the final Release can be handed to a drop hook:
//
//	q := ulfq.NewUnboundedFunc[*Conn](func(c *Conn) { c.Close() })
//
// # Queue Variants
//
// Three flavors cover the common payload shapes:
//
//	NewUnbounded[T]()      - Generic type-safe queue for any type
//	NewUnboundedIndirect() - Queue for uintptr values (pool indices, handles)
//	NewUnboundedPtr()      - Queue for unsafe.Pointer (zero-copy handoff)
//
// # Algorithm
//
// The queue keeps two independently advancing cursors, head and tail, each
// naming a position in a chain of fixed-capacity nodes. An operation
// reserves its slot with a single CAS on its cursor; the producer then
// publishes the item through a per-slot state word, and the consumer
// re-synchronizes on that state word rather than on the cursor. Cursor
// positions are globally monotonic, so a cursor CAS can never succeed
// against a recycled position (no ABA).
//
// The producer that fills a node's last slot installs the successor node;
// the consumer that empties the last slot begins retiring the node, and
// whichever reader leaves the node last finishes the retirement. Enqueue and Dequeue are lock-free: some
// operation always completes in a bounded number of steps, though an
// individual caller may retry under contention. They are not wait-free.
//
// Dequeue returning ErrWouldBlock is a point-in-time verdict: at some
// instant during the call the head and tail cursors were equal. Waiting
// for data is the caller's concern: poll with an iox.Backoff, yield, or
// park on an external condition.
//
// Length and peek are intentionally not provided: an accurate count or a
// stable view in a lock-free structure would require cross-core
// synchronization the hot path does not pay for. Track counts in
// application logic when needed.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm
// verification. The slot handshake establishes happens-before through
// atomic memory orderings on a separate state word, which the detector
// cannot observe, so it may report false positives on the item field.
// Tests incompatible with race detection are skipped via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package ulfq
