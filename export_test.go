// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulfq

// NodeCap is the per-node slot capacity, exported for rollover tests.
const NodeCap = int(nodeCap)

// NodeInstalls reports how many successor nodes the queue core behind q
// has installed since creation.
func NodeInstalls[T any](q *Unbounded[T]) uint64 {
	return q.core.installs.Load()
}
