// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// The interpreter: a tail-dispatching loop over the node sum plus two
// resolution functions, succeeded and failed, all sharing one dual stack
// for the duration of a single Run call.
//
// Descending into a mapNode/bindNode/recoverNode pushes a frame and
// dispatches on the child; resolving a leaf pops frames one at a time
// until a terminal resolvedNode/failedNode exits the loop. Resolution
// threads an explicit depth counter: past maxStackDepth the pending
// outcome is reified as a fresh pureNode/failNode and handed back to the
// dispatch loop instead of recursing, so native stack usage stays
// O(maxStackDepth) no matter how many frames are chained, at the cost of
// one loop re-entry per threshold window.

// maxStackDepth is the depth-cutoff threshold of the trampoline.
const maxStackDepth = 512

// interp owns the stack pair of one execution.
type interp struct {
	stacks *runStacks
}

// loop is the tail-recursive dispatcher, expressed as a loop.
// The type switch is exhaustive over the closed node sum.
func (in *interp) loop(cur node) (Erased, error) {
	for {
		switch n := cur.(type) {
		case *pureNode:
			cur = in.succeeded(n.value, 0)
		case *delayNode:
			v, err := callThunk(n.thunk)
			if err != nil {
				cur = in.failed(err, 0)
			} else {
				cur = in.succeeded(v, 0)
			}
		case *failNode:
			cur = in.failed(n.err, 0)
		case *mapNode:
			in.stacks.pushFrame(mapFrame, n.f)
			cur = n.source
		case *bindNode:
			in.stacks.pushFrame(bindFrame, n.f)
			cur = n.source
		case *recoverNode:
			in.stacks.pushFrame(recoverFrame, n.h)
			cur = n.source
		case *resolvedNode:
			return n.value, nil
		case *failedNode:
			return nil, n.err
		default:
			panic("sio: unknown node type in dispatch")
		}
	}
}

// succeeded resolves a successful result against the pending frames.
// Self-resolution (mapFrame, recoverFrame) continues in place; only the
// crossing into failed consumes native stack, bounded by the depth cutoff.
func (in *interp) succeeded(result Erased, depth int) node {
	for {
		switch in.stacks.popTag() {
		case mapFrame:
			f := in.stacks.popData().(func(Erased) Erased)
			v, err := callMap(f, result)
			if depth > maxStackDepth {
				// Reify the outcome and return to the dispatch loop.
				if err != nil {
					return &failNode{err: err}
				}
				return &pureNode{value: v}
			}
			if err != nil {
				return in.failed(err, depth+1)
			}
			result = v
			depth++
		case bindFrame:
			f := in.stacks.popData().(func(Erased) node)
			next, err := callBind(f, result)
			if err != nil {
				if depth > maxStackDepth {
					return &failNode{err: err}
				}
				return in.failed(err, depth+1)
			}
			// The node goes straight back to the dispatch loop; no stack
			// grows per bind.
			return next
		case recoverFrame:
			// A handler never fires when its guarded computation
			// succeeded. Discard it, frame and payload both.
			in.stacks.popData()
		default: // terminusFrame
			return &resolvedNode{value: result}
		}
	}
}

// failed resolves an error against the pending frames: unwind to the
// nearest recoverFrame and run its handler, or reach the terminus and
// surface the error. A throwing handler re-enters the same search one
// frame further up, subject to the same depth cutoff.
func (in *interp) failed(err error, depth int) node {
	for {
		if in.stacks.unwind() != recoverFrame {
			return &failedNode{err: err}
		}
		h := in.stacks.popData().(func(error) node)
		next, herr := callRecover(h, err)
		if herr != nil {
			if depth > maxStackDepth {
				return &failNode{err: herr}
			}
			err = herr
			depth++
			continue
		}
		return next
	}
}
