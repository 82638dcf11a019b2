// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio

// Derived combinators, all expressible through Map, Bind, and Recover.
// They add no interpreter surface; the engine sees only the six node
// kinds these expand to.

// Then sequences two computations, discarding the first result.
func Then[A, B any](m IO[A], n IO[B]) IO[B] {
	return Bind(m, func(_ A) IO[B] {
		return n
	})
}

// ProductL sequences two computations, keeping the first result.
func ProductL[A, B any](m IO[A], n IO[B]) IO[A] {
	return Bind(m, func(a A) IO[A] {
		return As(n, a)
	})
}

// Product runs m then n and pairs their results.
func Product[A, B any](m IO[A], n IO[B]) IO[Pair[A, B]] {
	return Map2(m, n, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// Map2 combines the results of two computations with f. ma runs first;
// a failure in ma prevents mb from running.
func Map2[A, B, C any](ma IO[A], mb IO[B], f func(A, B) C) IO[C] {
	return Bind(ma, func(a A) IO[C] {
		return Map(mb, func(b B) C {
			return f(a, b)
		})
	})
}

// As replaces the result of m with a constant.
func As[A, B any](m IO[A], b B) IO[B] {
	return Map(m, func(_ A) B {
		return b
	})
}

// Void discards the result of m.
func Void[A any](m IO[A]) IO[struct{}] {
	return As(m, struct{}{})
}

// Unit is the computation that does nothing and produces nothing.
func Unit() IO[struct{}] {
	return Pure(struct{}{})
}

// Flatten collapses a nested computation.
func Flatten[A any](m IO[IO[A]]) IO[A] {
	return Bind(m, func(inner IO[A]) IO[A] {
		return inner
	})
}

// Attempt materializes the outcome of m: any failure becomes a Left
// instead of propagating, so the resulting computation never fails.
func Attempt[A any](m IO[A]) IO[Either[error, A]] {
	return Recover(Map(m, Right[error, A]), func(err error) IO[Either[error, A]] {
		return Pure(Left[error, A](err))
	})
}

// HandleError recovers from a failure with a pure fallback value.
func HandleError[A any](m IO[A], h func(error) A) IO[A] {
	return Recover(m, func(err error) IO[A] {
		return Pure(h(err))
	})
}

// Redeem folds both outcomes of m into a value in one pass.
func Redeem[A, B any](m IO[A], onErr func(error) B, onOk func(A) B) IO[B] {
	return RedeemWith(m,
		func(err error) IO[B] { return Pure(onErr(err)) },
		func(a A) IO[B] { return Pure(onOk(a)) },
	)
}

// RedeemWith folds both outcomes of m into a new computation in one
// pass. Unlike Recover after Bind, a failure raised by onOk is not
// handled by onErr.
func RedeemWith[A, B any](m IO[A], onErr func(error) IO[B], onOk func(A) IO[B]) IO[B] {
	return Bind(Attempt(m), func(outcome Either[error, A]) IO[B] {
		if a, ok := outcome.GetRight(); ok {
			return onOk(a)
		}
		err, _ := outcome.GetLeft()
		return onErr(err)
	})
}
