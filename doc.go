// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sio provides a stack-safe, strictly synchronous IO monad in Go.
//
// The core type [IO] is an immutable description of a sequence of
// effectful steps — pure values, suspended thunks, failures,
// transformations, sequencing, and error recovery — built by composition
// and executed by [Run]. Nothing runs at construction time; [Run] walks
// the description with a defunctionalized interpreter whose pending
// continuations live on an explicit dual stack instead of the native call
// stack, so chains of any length execute in bounded stack space.
//
// # Design Philosophy
//
// sio provides:
//   - A closed node algebra: six computation variants, exhaustively
//     dispatched by one interpreter loop
//   - A dual-stack continuation model: byte-sized frame tags on one
//     stack, their opaque payloads in lock-step on another
//   - A depth-bounded trampoline: resolution threads a depth counter and
//     reifies the pending outcome back into a leaf node past a fixed
//     threshold, returning control to the dispatch loop
//
// # Execution Model
//
// Strictly single-threaded and synchronous: every step runs to a value or
// an error before the next is considered; there is no suspension point,
// no cancellation, no memoization. An [IO] value is immutable and safe to
// share — each [Run] call owns a fresh stack pair and re-executes every
// [Delay] thunk, so concurrent runs of the same graph are independent
// (thunk thread-safety is the caller's responsibility).
//
// # Core Operations
//
// Leaf constructors:
//
//   - [Pure]: Lift an already-known value
//   - [Delay]: Suspend a side-effecting thunk
//   - [Fail]: Lift an already-known failure
//
// Lifting helpers:
//
//   - [FromResult]: Lift Go's (value, error) pair
//   - [FromEither]: Lift an [Either]
//   - [FromOption]: Lift Go's comma-ok shape
//
// Composition:
//
//   - [Map]: Transform the eventual result
//   - [Bind]: Sequence with a result-dependent continuation
//   - [Recover]: Attach an error handler
//
// Derived combinators:
//
//   - [Then], [ProductL], [Product], [Map2]: Sequencing and pairing
//   - [As], [Void], [Unit], [Flatten]: Result shaping
//   - [Attempt]: Materialize the outcome as [Either]
//   - [HandleError], [Redeem], [RedeemWith]: Outcome folding
//
// Execution:
//
//   - [Run]: Execute to a value or a terminal error
//   - [MustRun]: Execute, panicking on a terminal error
//
// # Error Handling
//
// Failures flow to the nearest enclosing [Recover]: on an error the
// interpreter unwinds the continuation stack in a single pass, discarding
// Map/Bind frames in bulk — O(frames skipped), no per-frame invocation —
// and runs the first handler it finds. A handler that itself fails is
// subject to the next enclosing handler, never re-caught by the one that
// threw. An error with no enclosing handler surfaces as [Run]'s error
// result.
//
// Panics inside thunks, functions, and handlers are classified: values
// implementing runtime.Error are non-recoverable and propagate out of
// [Run] untouched, bypassing every handler; all other panic values are
// captured and wrapped in [*PanicError].
//
// # Resource Safety
//
//   - [Bracket]: Acquire-release-use with guaranteed cleanup
//   - [OnError]: Run cleanup only on error
//
// # Porting to Another Engine
//
// [Fold] re-interprets a computation graph against any external engine
// exposing the [Target] capability set (pure, raiseError, defer, flatMap,
// handleErrorWith) by structural recursion, without executing anything
// here.
//
// # Example
//
//	calls := 0
//	comp := sio.Bind(
//		sio.Delay(func() (int, error) { calls++; return calls, nil }),
//		func(n int) sio.IO[int] {
//			return sio.Pure(n * 2)
//		},
//	)
//
//	result, err := sio.Run(comp)
//	// result == 2, err == nil; running comp again yields 4
package sio
