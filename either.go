// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Either holds one of two values: Left, conventionally the failure
// channel, or Right, the success channel. [Attempt] reifies a
// computation's outcome into Either[error, A]; [FromEither] lifts one
// back into a computation.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left builds the failure side. The zero Either is also a Left, holding
// E's zero value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right builds the success side.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether the success side is populated.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether the failure side is populated.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the success value in comma-ok form.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the failure value in comma-ok form.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither collapses both sides into a single result, invoking
// exactly one of the two branches.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither transforms the success side; a Left passes through unchanged.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither chains a success-side step that may itself fail.
// The first Left short-circuits the chain.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither transforms the failure side; a Right passes through
// unchanged.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Pair is a tuple of two values, produced by [Product].
type Pair[A, B any] struct {
	Fst A
	Snd B
}
