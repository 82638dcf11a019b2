// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Run executes a computation to completion and returns its value or its
// terminal error — the failure that reached the bottom of the
// continuation stack with no enclosing [Recover].
//
// Each call owns a fresh stack pair, so the same IO may be run any number
// of times, concurrently included, provided its [Delay] thunks are safe
// to invoke concurrently. Every call re-executes every thunk; results are
// never cached. Non-recoverable panics propagate out of Run directly.
func Run[A any](m IO[A]) (A, error) {
	s := acquireStacks()
	s.pushTerminus()
	in := interp{stacks: s}
	v, err := in.loop(m.n)
	releaseStacks(s)
	if err != nil {
		var zero A
		return zero, err
	}
	if v == nil {
		var zero A
		return zero, nil
	}
	return v.(A), nil
}

// MustRun executes a computation and panics on a terminal error.
// Intended for graphs that are failure-free by construction.
func MustRun[A any](m IO[A]) A {
	v, err := Run(m)
	if err != nil {
		panic("sio: MustRun: " + err.Error())
	}
	return v
}
