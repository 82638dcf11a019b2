// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Fold re-interprets a computation graph against an external execution
// target. Where [Run] walks the graph with its own dual-stack
// interpreter, Fold delegates every step to the target's capabilities by
// structural recursion, so the graph can be ported onto a different
// engine without executing anything here. Delay thunks are wrapped in
// Defer and remain unexecuted until the target runs them.
//
// Fold shares [Run]'s failure classification: user functions invoked by
// the target run under the same panic capture, and non-recoverable
// values propagate.

// Target is the capability set an external engine must expose.
// Values of type F are that engine's computation representation.
type Target[F any] interface {
	// Pure lifts a value into the target.
	Pure(v Erased) F

	// RaiseError lifts a failure into the target.
	RaiseError(err error) F

	// Defer suspends the construction of a target computation.
	Defer(f func() F) F

	// FlatMap sequences a target computation with a continuation.
	FlatMap(m F, fn func(Erased) F) F

	// HandleErrorWith attaches an error handler to a target computation.
	HandleErrorWith(m F, fn func(error) F) F
}

// Fold ports m onto the target t.
func Fold[F, A any](m IO[A], t Target[F]) F {
	return foldNode(m.n, t)
}

func foldNode[F any](n node, t Target[F]) F {
	switch n := n.(type) {
	case *pureNode:
		return t.Pure(n.value)
	case *failNode:
		return t.RaiseError(n.err)
	case *delayNode:
		return t.Defer(func() F {
			v, err := callThunk(n.thunk)
			if err != nil {
				return t.RaiseError(err)
			}
			return t.Pure(v)
		})
	case *mapNode:
		return t.FlatMap(foldNode(n.source, t), func(a Erased) F {
			v, err := callMap(n.f, a)
			if err != nil {
				return t.RaiseError(err)
			}
			return t.Pure(v)
		})
	case *bindNode:
		return t.FlatMap(foldNode(n.source, t), func(a Erased) F {
			next, err := callBind(n.f, a)
			if err != nil {
				return t.RaiseError(err)
			}
			return foldNode(next, t)
		})
	case *recoverNode:
		return t.HandleErrorWith(foldNode(n.source, t), func(cause error) F {
			next, err := callRecover(n.h, cause)
			if err != nil {
				return t.RaiseError(err)
			}
			return foldNode(next, t)
		})
	default:
		// resolvedNode/failedNode exist only inside the interpreter loop.
		panic("sio: terminal node escaped the interpreter")
	}
}
