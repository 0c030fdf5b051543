// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Cursor index encoding. The index is a global monotonic position counter
// shifted left by markShift. Positions never repeat, which makes every
// cursor CAS ABA-safe without a separate tag. Bit 0 is the mark bit,
// meaningful on the head cursor only: when set, head and tail are known to
// be in different nodes and Dequeue skips the empty-queue check.
const (
	markShift uint64 = 1
	markBit   uint64 = 1
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// cursor names the next position for one role: a monotonic shifted index
// plus the node that position falls in. The index advances first (by CAS);
// the node pointer follows at node boundaries.
type cursor[T any] struct {
	index atomix.Uint64
	node  atomic.Pointer[node[T]]
}

// inner is the queue core shared by all handles.
type inner[T any] struct {
	_        pad
	tail     cursor[T]
	_        pad
	head     cursor[T]
	_        pad
	refs     atomix.Int64
	installs atomix.Uint64
	release  func(T)
}

func newInner[T any](release func(T)) *inner[T] {
	first := &node[T]{}
	c := &inner[T]{release: release}
	c.tail.node.Store(first)
	c.head.node.Store(first)
	c.refs.Store(1)
	return c
}

// push reserves the tail position, writes the item, and publishes it.
// The successful tail CAS is the linearization point; the item becomes
// visible to its consumer through the slot's release-publish.
func (c *inner[T]) push(item T) {
	sw := spin.Wait{}
	tailIdx := c.tail.index.LoadAcquire()
	tailNode := c.tail.node.Load()

	for {
		offset := (tailIdx >> markShift) % nodeSize

		// Parked at the node boundary: the producer that reserved the last
		// slot is installing the successor. Wait it out.
		if offset == nodeCap {
			sw.Once()
			tailIdx = c.tail.index.LoadAcquire()
			tailNode = c.tail.node.Load()
			continue
		}

		// Plain CompareAndSwap is seq-cst: cursor CASes and the tail load
		// in Dequeue's empty check must form a single total order.
		if c.tail.index.CompareAndSwap(tailIdx, tailIdx+(1<<markShift)) {
			// Winner of the last slot installs the successor before
			// touching its own slot: store the new tail node, move the
			// index past the boundary position, then publish the link for
			// consumers crossing over.
			if offset+1 == nodeCap {
				next := &node[T]{}
				c.tail.node.Store(next)
				c.tail.index.AddAcqRel(1 << markShift)
				tailNode.next.Store(next)
				c.installs.Add(1)
			}

			s := &tailNode.slots[offset]
			s.item = item
			s.state.AddAcqRel(stateFilled)
			return
		}

		tailIdx = c.tail.index.LoadAcquire()
		tailNode = c.tail.node.Load()
	}
}

// pop reserves the head position and takes its item, or reports empty.
// The successful head CAS is the linearization point; an empty verdict
// holds at the instant of the tail load below.
func (c *inner[T]) pop() (T, error) {
	sw := spin.Wait{}
	headIdx := c.head.index.LoadAcquire()
	headNode := c.head.node.Load()

	for {
		offset := (headIdx >> markShift) % nodeSize

		// Parked at the node boundary while the consumer that took the
		// last slot swings the head cursor over.
		if offset == nodeCap {
			sw.Once()
			headIdx = c.head.index.LoadAcquire()
			headNode = c.head.node.Load()
			continue
		}

		nextIdx := headIdx + (1 << markShift)

		// The mark bit records that head and tail were seen in different
		// nodes, in which case the queue cannot be empty and the tail load
		// is skipped.
		if nextIdx&markBit == 0 {
			tailIdx := c.tail.index.Load()
			if headIdx>>markShift == tailIdx>>markShift {
				var zero T
				return zero, ErrWouldBlock
			}
			if (headIdx>>markShift)/nodeSize != (tailIdx>>markShift)/nodeSize {
				nextIdx |= markBit
			}
		}

		if c.head.index.CompareAndSwap(headIdx, nextIdx) {
			// Taker of the last slot swings the head cursor to the
			// successor node before reading, releasing the boundary for
			// other consumers.
			if offset+1 == nodeCap {
				next := headNode.waitNext()
				nextIndex := (nextIdx &^ markBit) + (1 << markShift)
				if next.next.Load() != nil {
					nextIndex |= markBit
				}
				c.head.node.Store(next)
				c.head.index.StoreRelease(nextIndex)
			}

			s := &headNode.slots[offset]
			s.waitFilled()
			item := s.item
			var zero T
			s.item = zero

			if offset+1 == nodeCap {
				// Head has left the node and this reader is done with the
				// last slot: begin retiring the node.
				headNode.drain(0)
			} else if prev := s.state.AddAcqRel(stateReading) - stateReading; prev&stateDraining != 0 {
				// Retirement reached this slot while we were reading;
				// continue it from the next slot.
				headNode.drain(offset + 1)
			}

			return item, nil
		}

		headIdx = c.head.index.LoadAcquire()
		headNode = c.head.node.Load()
	}
}

// teardown drops every item still in the queue. It runs on the final
// handle release only, so it is single-threaded and uses relaxed reads.
func (c *inner[T]) teardown() {
	head := c.head.index.LoadRelaxed() >> markShift
	tail := c.tail.index.LoadRelaxed() >> markShift
	n := c.head.node.Load()

	for pos := head; pos != tail && n != nil; pos++ {
		offset := pos % nodeSize
		if offset == nodeCap {
			next := n.next.Load()
			n.next.Store(nil)
			n = next
			continue
		}

		s := &n.slots[offset]
		st := s.state.LoadRelaxed()
		// A slot reserved but never published (a producer dropped its
		// handle mid-write) holds no item and is skipped.
		if st&stateFilled != 0 && st&stateReading == 0 {
			if c.release != nil {
				c.release(s.item)
			}
			var zero T
			s.item = zero
		}
	}

	c.head.node.Store(nil)
	c.tail.node.Store(nil)
}
