// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

import "testing"

func TestStacksLockStep(t *testing.T) {
	s := &runStacks{}
	s.pushTerminus()
	s.pushFrame(mapFrame, "f1")
	s.pushFrame(bindFrame, "f2")
	s.pushFrame(recoverFrame, "h")

	if len(s.tags) != 4 {
		t.Fatalf("tag stack len = %d, want 4", len(s.tags))
	}
	if len(s.data) != 3 {
		t.Fatalf("data stack len = %d, want 3 (terminus has no payload)", len(s.data))
	}

	if tag := s.popTag(); tag != recoverFrame {
		t.Errorf("popTag = %v, want recoverFrame", tag)
	}
	if v := s.popData(); v != "h" {
		t.Errorf("popData = %v, want \"h\"", v)
	}
	if len(s.tags) != 3 || len(s.data) != 2 {
		t.Errorf("stacks out of lock-step: tags=%d data=%d", len(s.tags), len(s.data))
	}
}

func TestUnwindStopsAtRecover(t *testing.T) {
	s := &runStacks{}
	s.pushTerminus()
	s.pushFrame(recoverFrame, "h")
	s.pushFrame(mapFrame, "f1")
	s.pushFrame(bindFrame, "f2")
	s.pushFrame(mapFrame, "f3")

	if tag := s.unwind(); tag != recoverFrame {
		t.Fatalf("unwind = %v, want recoverFrame", tag)
	}
	// recoverFrame tag is popped; its payload stays for the caller.
	if len(s.tags) != 1 || s.tags[0] != terminusFrame {
		t.Errorf("tags after unwind = %v, want [terminusFrame]", s.tags)
	}
	if len(s.data) != 1 || s.data[0] != "h" {
		t.Errorf("data after unwind = %v, want [h]", s.data)
	}
	// Discarded slots must be released.
	for i := len(s.data); i < cap(s.data) && i < 4; i++ {
		if s.data[:cap(s.data)][i] != nil {
			t.Errorf("data slot %d not nilled after unwind", i)
		}
	}
}

func TestUnwindReachesTerminus(t *testing.T) {
	s := &runStacks{}
	s.pushTerminus()
	s.pushFrame(mapFrame, "f1")
	s.pushFrame(bindFrame, "f2")

	if tag := s.unwind(); tag != terminusFrame {
		t.Fatalf("unwind = %v, want terminusFrame", tag)
	}
	if len(s.tags) != 0 {
		t.Errorf("tags after terminus unwind = %v, want empty", s.tags)
	}
	if len(s.data) != 0 {
		t.Errorf("data after terminus unwind = %v, want empty", s.data)
	}
}

func TestReleaseStacksResets(t *testing.T) {
	s := acquireStacks()
	s.pushTerminus()
	s.pushFrame(mapFrame, "payload")
	releaseStacks(s)

	if len(s.tags) != 0 || len(s.data) != 0 {
		t.Errorf("released stacks not reset: tags=%d data=%d", len(s.tags), len(s.data))
	}
}

func TestReleaseStacksDropsOversized(t *testing.T) {
	s := &runStacks{
		tags: make([]frameTag, 0, maxPooledFrames+1),
		data: make([]Erased, 0, maxPooledFrames+1),
	}
	// Must not panic, must not pool; nothing observable beyond that, so
	// this is a smoke test for the capacity guard.
	releaseStacks(s)
}
