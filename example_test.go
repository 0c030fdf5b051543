// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package ulfq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ulfq"
)

// ExampleNewUnbounded demonstrates basic FIFO use from a single goroutine.
func ExampleNewUnbounded() {
	q := ulfq.NewUnbounded[int]()
	defer q.Release()

	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleUnbounded_Clone demonstrates sharing the queue across goroutines
// through cloned handles: a worker pool draining work pushed by several
// submitters.
func ExampleUnbounded_Clone() {
	q := ulfq.NewUnbounded[string]()

	const total = 6

	var wg sync.WaitGroup
	for p := range 3 {
		h := q.Clone()
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer h.Release()
			for i := range total / 3 {
				msg := fmt.Sprintf("job-%d-%d", id, i)
				h.Enqueue(&msg)
			}
		}(p)
	}

	var mu sync.Mutex
	jobs := make([]string, 0, total)
	for range 2 {
		h := q.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer h.Release()
			backoff := iox.Backoff{}
			for {
				job, err := h.Dequeue()
				if err != nil {
					mu.Lock()
					done := len(jobs) == total
					mu.Unlock()
					if done {
						return
					}
					backoff.Wait() // empty but producers may still be running
					continue
				}
				backoff.Reset()
				mu.Lock()
				jobs = append(jobs, job)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	q.Release()

	fmt.Println(len(jobs))
	// Output:
	// 6
}

// ExampleNewUnboundedFunc demonstrates the teardown hook: items still
// queued when the last handle is released are handed to the hook.
func ExampleNewUnboundedFunc() {
	q := ulfq.NewUnboundedFunc[string](func(s string) {
		fmt.Println("dropped:", s)
	})

	for _, s := range []string{"a", "b", "c"} {
		q.Enqueue(&s)
	}

	first, _ := q.Dequeue()
	fmt.Println("popped:", first)

	q.Release()
	// Output:
	// popped: a
	// dropped: b
	// dropped: c
}
