// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Resource safety primitives for exception-safe resource management.
// These provide the minimal interface for bracketed resource handling.

// Bracket provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where
// release is guaranteed to run whether use succeeds or fails. A failure
// from use is re-raised after release completes.
func Bracket[R, A any](
	acquire IO[R],
	release func(R) IO[struct{}],
	use func(R) IO[A],
) IO[A] {
	return Bind(acquire, func(resource R) IO[A] {
		return Bind(Attempt(use(resource)), func(outcome Either[error, A]) IO[A] {
			return Then(release(resource), FromEither(outcome))
		})
	})
}

// OnError runs cleanup only if the computation fails.
// The original error is re-raised after cleanup.
func OnError[A any](
	body IO[A],
	cleanup func(error) IO[struct{}],
) IO[A] {
	return Recover(body, func(err error) IO[A] {
		return Then(cleanup(err), Fail[A](err))
	})
}
