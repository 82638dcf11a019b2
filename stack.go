// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// frameTag is the discriminant of one pending continuation frame.
// Tags live on the continuation stack; the frame's payload (the erased
// user function) lives at the matching position on the data stack.
type frameTag byte

const (
	// mapFrame resumes by applying the popped transformation to the result.
	mapFrame frameTag = iota

	// bindFrame resumes by applying the popped function to the result and
	// dispatching on the node it returns.
	bindFrame

	// recoverFrame resumes only on the failure path; a success discards it.
	recoverFrame

	// terminusFrame marks the bottom of one execution. It appears exactly
	// once and has no data-stack entry.
	terminusFrame
)

// runStacks is the dual stack owned by a single Run call: tags on the
// continuation stack, opaque payloads on the data stack. The two grow
// independently but stay in lock-step for the three functional frame
// kinds — pushing or popping a mapFrame/bindFrame/recoverFrame moves
// exactly one data entry; terminusFrame touches only the tag side.
type runStacks struct {
	tags []frameTag
	data []Erased
}

// pushFrame pushes a functional frame: one tag, one payload.
func (s *runStacks) pushFrame(t frameTag, payload Erased) {
	s.tags = append(s.tags, t)
	s.data = append(s.data, payload)
}

// pushTerminus pushes the execution-boundary sentinel. Tag side only.
func (s *runStacks) pushTerminus() {
	s.tags = append(s.tags, terminusFrame)
}

// popTag pops the top continuation-stack tag.
func (s *runStacks) popTag() frameTag {
	i := len(s.tags) - 1
	t := s.tags[i]
	s.tags = s.tags[:i]
	return t
}

// popData pops the top data-stack payload, releasing the slot's reference.
func (s *runStacks) popData() Erased {
	i := len(s.data) - 1
	v := s.data[i]
	s.data[i] = nil
	s.data = s.data[:i]
	return v
}

// unwind is the nearest-handler search: scan the continuation stack from
// the top downward past every mapFrame/bindFrame, stop at the first
// recoverFrame or at terminusFrame, and truncate both stacks to that
// position. The stopped-at frame is popped from the tag side; a
// recoverFrame's payload stays on the data stack for the caller to pop.
//
// Skipped frames carry no recovery semantics, so they are discarded in
// bulk — O(frames skipped), no per-frame function invocation. Discarded
// payload slots are nilled so their references are released.
func (s *runStacks) unwind() frameTag {
	i := len(s.tags) - 1
	for s.tags[i] == mapFrame || s.tags[i] == bindFrame {
		i--
	}
	t := s.tags[i]

	// One data entry per skipped functional frame, all on top.
	skipped := len(s.tags) - 1 - i
	j := len(s.data)
	for k := j - skipped; k < j; k++ {
		s.data[k] = nil
	}
	s.data = s.data[:j-skipped]
	s.tags = s.tags[:i]
	return t
}
