// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// Each node accounts for nodeSize positions in the cursor position space.
// The final position is not a slot: it is the parked state a cursor sits in
// while the node's successor is being installed, so a node carries
// nodeCap = nodeSize - 1 usable slots.
const (
	nodeSize uint64 = 8
	nodeCap  uint64 = nodeSize - 1
)

// node is the unit of queue growth and retirement: a fixed array of slots
// plus a link to the successor node.
//
// The next link is set exactly once, by the producer that reserved this
// node's last slot. Links use sync/atomic.Pointer rather than a packed
// word so the garbage collector keeps every reachable node alive while
// lagging producers and consumers still hold references into it.
type node[T any] struct {
	next  atomic.Pointer[node[T]]
	slots [nodeCap]slot[T]
}

// waitNext spins until the successor node is installed. Only reachable
// after some producer has reserved the last slot, which makes that
// producer responsible for installing next; the wait is bounded by its
// progress.
func (n *node[T]) waitNext() *node[T] {
	sw := spin.Wait{}
	for {
		if next := n.next.Load(); next != nil {
			return next
		}
		sw.Once()
	}
}

// drain retires n after the head cursor has moved past it. Slots before
// start are known to be read. The thread that reads a node's last slot
// calls drain(0); if an earlier slot is still being read, the draining
// mark is handed to that reader, which continues from the following slot
// when it finishes. The last slot needs no mark: its reader is the one
// that began the drain.
//
// Once every slot is read, no thread can touch n again, and the outgoing
// link is severed so a goroutine still holding a stale reference to n
// cannot retain the nodes the queue has already moved on to. Reclaiming
// the storage itself is the collector's job.
func (n *node[T]) drain(start uint64) {
	for i := start; i < nodeCap-1; i++ {
		s := &n.slots[i]
		if s.state.LoadAcquire()&stateReading == 0 {
			if prev := s.state.AddAcqRel(stateDraining) - stateDraining; prev&stateReading == 0 {
				// A reader is still inside this slot; it observes the
				// draining mark and takes over.
				return
			}
		}
	}
	n.next.Store(nil)
}
