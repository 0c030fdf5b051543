// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Slot state bit flags. A slot's state only moves forward: no flag is ever
// cleared and each is set at most once in the slot's lifetime:
//
//	stateFilled    item published by the producer
//	stateReading   item taken by a consumer (not set on a node's last
//	               slot, whose reader begins node retirement instead)
//	stateDraining  node retirement reached this slot while its reader had
//	               not finished; it may be set before stateReading and
//	               even before stateFilled
//
// Because each flag is set by at most one thread at most once, flag
// publication uses a single atomic add, which is an exact fetch-or for a
// clear bit and returns the prior state by subtraction.
const (
	stateFilled   uint64 = 1 << 0
	stateReading  uint64 = 1 << 1
	stateDraining uint64 = 1 << 2
)

// slot holds one queued item plus the producer/consumer handshake word.
//
// Reservation of a slot happens through the queue cursors; the state word
// only publishes the item bytes (producer side) and the read/retire
// progress (consumer side). A consumer can therefore be reserved onto a
// slot whose item is still being written and must wait on the state, not
// on the cursor.
type slot[T any] struct {
	item  T
	state atomix.Uint64
}

// waitFilled spins until the producer's release-publish of stateFilled is
// visible. The producer that reserved this slot has already won its cursor
// CAS and committed to publish, so the wait is bounded by that producer's
// progress.
func (s *slot[T]) waitFilled() {
	sw := spin.Wait{}
	for s.state.LoadAcquire()&stateFilled == 0 {
		sw.Once()
	}
}
