// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

import (
	"fmt"
	"runtime"
)

// Failure classification.
//
// Every user-supplied function — Delay thunk, Map/Bind function, Recover
// handler — runs under a deferred recover. A recovered panic value is
// classified: values implementing runtime.Error indicate the execution
// environment itself is in a bad state and are re-panicked immediately,
// bypassing every Recover frame at any point in execution, including
// mid-unwind. Every other panic value is a recoverable failure, wrapped
// in [*PanicError] and routed through the normal error path. Errors
// returned from a Delay thunk are always recoverable.

// PanicError wraps a panic value captured inside a computation.
type PanicError struct {
	// Value is the original value passed to panic.
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("sio: recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value to errors.Is/errors.As when it is
// itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// fatal reports whether a panic value is non-recoverable.
func fatal(p any) bool {
	_, ok := p.(runtime.Error)
	return ok
}

// capture converts a recovered panic value into a recoverable failure,
// re-panicking non-recoverable values.
func capture(p any) error {
	if fatal(p) {
		panic(p)
	}
	return &PanicError{Value: p}
}

// callThunk invokes a Delay thunk under classification.
func callThunk(thunk func() (Erased, error)) (v Erased, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, capture(p)
		}
	}()
	return thunk()
}

// callMap applies a Map function under classification.
func callMap(f func(Erased) Erased, a Erased) (v Erased, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, capture(p)
		}
	}()
	return f(a), nil
}

// callBind applies a Bind function under classification.
func callBind(f func(Erased) node, a Erased) (n node, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = nil, capture(p)
		}
	}()
	return f(a), nil
}

// callRecover applies a Recover handler under classification.
func callRecover(h func(error) node, cause error) (n node, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = nil, capture(p)
		}
	}()
	return h(cause), nil
}
