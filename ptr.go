// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import "unsafe"

// UnboundedPtr is a handle to an unbounded MPMC queue of unsafe.Pointer
// values.
//
// Ptr queues enable zero-copy object handoff between goroutines: the
// producer enqueues a pointer, the consumer receives the same pointer.
// Ownership transfers with the pointer — after Enqueue the producer must
// not touch the object.
type UnboundedPtr struct {
	h *Unbounded[unsafe.Pointer]
}

// NewUnboundedPtr creates a new unbounded MPMC queue for unsafe.Pointer
// values and returns its first handle.
func NewUnboundedPtr() *UnboundedPtr {
	return &UnboundedPtr{h: NewUnbounded[unsafe.Pointer]()}
}

// Enqueue adds a pointer to the queue. Never blocks.
func (q *UnboundedPtr) Enqueue(elem unsafe.Pointer) error {
	return q.h.Enqueue(&elem)
}

// Dequeue removes and returns a pointer from the queue.
// Returns (nil, ErrWouldBlock) if the queue is observed empty.
func (q *UnboundedPtr) Dequeue() (unsafe.Pointer, error) {
	return q.h.Dequeue()
}

// Clone returns a new handle to the same queue core.
func (q *UnboundedPtr) Clone() *UnboundedPtr {
	return &UnboundedPtr{h: q.h.Clone()}
}

// Release drops this handle; the final release tears down the core.
func (q *UnboundedPtr) Release() {
	q.h.Release()
}

// UnboundedIndirect is a handle to an unbounded MPMC queue of uintptr
// values, for pool indices and similar handles.
type UnboundedIndirect struct {
	h *Unbounded[uintptr]
}

// NewUnboundedIndirect creates a new unbounded MPMC queue for uintptr
// values and returns its first handle.
func NewUnboundedIndirect() *UnboundedIndirect {
	return &UnboundedIndirect{h: NewUnbounded[uintptr]()}
}

// Enqueue adds an element to the queue. Never blocks.
func (q *UnboundedIndirect) Enqueue(elem uintptr) error {
	return q.h.Enqueue(&elem)
}

// Dequeue removes and returns an element from the queue.
// Returns (0, ErrWouldBlock) if the queue is observed empty.
func (q *UnboundedIndirect) Dequeue() (uintptr, error) {
	return q.h.Dequeue()
}

// Clone returns a new handle to the same queue core.
func (q *UnboundedIndirect) Clone() *UnboundedIndirect {
	return &UnboundedIndirect{h: q.h.Clone()}
}

// Release drops this handle; the final release tears down the core.
func (q *UnboundedIndirect) Release() {
	q.h.Release()
}
