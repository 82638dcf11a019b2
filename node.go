// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Erased represents a type-erased value flowing through the interpreter.
// Node payloads use Erased so that heterogeneous value types move through
// a homogeneous evaluation pipeline. Concrete types are recovered via
// type assertions at node boundaries.
type Erased = any

// node is the closed sum of computation descriptions.
// Dispatch uses type switches, not tags — node is a pure marker interface.
// The marker method is unexported, so the sum cannot grow outside the package.
type node interface {
	node() // unexported marker method
}

// pureNode is an already-known result. No effect.
type pureNode struct {
	value Erased
}

func (*pureNode) node() {}

// delayNode is a suspended side-effecting thunk, run once per Run call.
type delayNode struct {
	thunk func() (Erased, error)
}

func (*delayNode) node() {}

// failNode is an already-known failure.
type failNode struct {
	err error
}

func (*failNode) node() {}

// mapNode applies F to the eventual result of Source.
type mapNode struct {
	source node
	f      func(Erased) Erased
}

func (*mapNode) node() {}

// bindNode runs Source, then feeds its result into F to obtain the next
// node to run (monadic bind).
type bindNode struct {
	source node
	f      func(Erased) node
}

func (*bindNode) node() {}

// recoverNode runs Source; on failure, feeds the error into H to obtain
// a replacement node.
type recoverNode struct {
	source node
	h      func(error) node
}

func (*recoverNode) node() {}

// resolvedNode and failedNode are terminal control signals produced only
// by the interpreter to unwind out of the dispatch loop. Constructors
// never build them; Fold never sees them.

type resolvedNode struct {
	value Erased
}

func (*resolvedNode) node() {}

type failedNode struct {
	err error
}

func (*failedNode) node() {}

// IO describes a synchronous effectful computation producing a value of
// type A. The description is immutable: composing computations never runs
// user code, and the same IO may be executed any number of times — each
// [Run] call is independent and re-executes every [Delay] thunk.
type IO[A any] struct {
	n node
}

// Pure lifts an already-known value into a computation.
func Pure[A any](a A) IO[A] {
	return IO[A]{n: &pureNode{value: a}}
}

// Delay suspends a side-effecting thunk. The thunk is not invoked until
// the computation is executed, and is re-invoked on every execution.
//
// A non-nil error result is a recoverable failure. A panic inside the
// thunk is classified: recoverable panic values are captured and wrapped
// in [*PanicError]; values implementing runtime.Error propagate out of
// [Run] untouched.
func Delay[A any](thunk func() (A, error)) IO[A] {
	return IO[A]{n: &delayNode{thunk: func() (Erased, error) {
		v, err := thunk()
		return v, err
	}}}
}

// Fail lifts an already-known failure into a computation.
func Fail[A any](err error) IO[A] {
	return IO[A]{n: &failNode{err: err}}
}

// FromResult lifts Go's (value, error) pair into a computation.
// A nil error produces Pure(a); a non-nil error produces Fail(err).
func FromResult[A any](a A, err error) IO[A] {
	if err != nil {
		return Fail[A](err)
	}
	return Pure(a)
}

// FromEither lifts an [Either] into a computation: Right becomes Pure,
// Left becomes Fail.
func FromEither[A any](e Either[error, A]) IO[A] {
	if a, ok := e.GetRight(); ok {
		return Pure(a)
	}
	err, _ := e.GetLeft()
	return Fail[A](err)
}

// FromOption lifts Go's comma-ok shape into a computation. When ok is
// false, onNone supplies the failure. Like a [Delay] thunk, onNone is
// deferred to execution time and re-invoked on every [Run].
func FromOption[A any](a A, ok bool, onNone func() error) IO[A] {
	if ok {
		return Pure(a)
	}
	return IO[A]{n: &delayNode{thunk: func() (Erased, error) {
		var zero A
		return zero, onNone()
	}}}
}
