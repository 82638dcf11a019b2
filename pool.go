// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

import "sync"

// Stack-pair pooling for Run calls. A fresh logical stack pair is needed
// per execution, but the backing slices are reusable: acquireStacks hands
// out zero-length stacks with retained capacity, and releaseStacks
// returns them after a run terminates. Pairs that grew past
// maxPooledFrames are dropped so one deep run does not pin memory.
//
// A run that ends by re-panicking a non-recoverable condition never
// releases its pair; its payload references die with it.

// maxPooledFrames caps the per-side capacity of a pooled stack pair.
const maxPooledFrames = 1 << 10

var stackPool = sync.Pool{
	New: func() any { return new(runStacks) },
}

func acquireStacks() *runStacks {
	return stackPool.Get().(*runStacks)
}

func releaseStacks(s *runStacks) {
	if cap(s.tags) > maxPooledFrames || cap(s.data) > maxPooledFrames {
		return
	}
	// Popped and truncated slots were already nilled; only live entries
	// (none on normal termination) need clearing.
	for i := range s.data {
		s.data[i] = nil
	}
	s.tags = s.tags[:0]
	s.data = s.data[:0]
	stackPool.Put(s)
}
