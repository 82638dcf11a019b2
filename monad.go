// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Monad operations for computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map is kept as a primitive node rather than derived through Bind so the
// interpreter can resolve a transformation without building an
// intermediate pureNode per step.
//
// Construction is inert: Map, Bind, and Recover allocate one node and
// never invoke f, never inspect m. All user code runs under [Run].

// Map applies a pure function to the eventual result of m.
//
// A panic inside f is classified at execution time: recoverable values
// become failures flowing to the nearest [Recover]; runtime.Error values
// propagate out of [Run] untouched.
func Map[A, B any](m IO[A], f func(A) B) IO[B] {
	return IO[B]{n: &mapNode{
		source: m.n,
		f: func(a Erased) Erased {
			// Comma-ok: a nil interface result maps to A's zero value,
			// mirroring Run's handling of a nil terminal value.
			v, _ := a.(A)
			return f(v)
		},
	}}
}

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to obtain the next computation.
//
// Bind is stack-safe: chains of any length execute within a fixed native
// stack budget.
func Bind[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return IO[B]{n: &bindNode{
		source: m.n,
		f: func(a Erased) node {
			v, _ := a.(A)
			return f(v).n
		},
	}}
}

// Recover attaches an error handler to m. On failure, h receives the
// error and supplies a replacement computation; on success, h is never
// invoked. A handler that itself fails produces a new error handled by
// the nearest enclosing Recover, never re-caught by the handler that
// raised it.
func Recover[A any](m IO[A], h func(error) IO[A]) IO[A] {
	return IO[A]{n: &recoverNode{
		source: m.n,
		h: func(err error) node {
			return h(err).n
		},
	}}
}
