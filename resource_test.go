// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sio_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/sio"
)

func TestBracketReleasesOnSuccess(t *testing.T) {
	var log []string
	acquire := sio.Delay(func() (string, error) {
		log = append(log, "acquire")
		return "res", nil
	})
	release := func(r string) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			log = append(log, "release "+r)
			return struct{}{}, nil
		})
	}
	use := func(r string) sio.IO[int] {
		return sio.Delay(func() (int, error) {
			log = append(log, "use "+r)
			return 42, nil
		})
	}

	got := sio.MustRun(sio.Bracket(acquire, release, use))
	if got != 42 {
		t.Errorf("Bracket = %v, want 42", got)
	}
	want := []string{"acquire", "use res", "release res"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestBracketReleasesOnFailure(t *testing.T) {
	boom := errors.New("boom")
	released := false
	release := func(string) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			released = true
			return struct{}{}, nil
		})
	}
	use := func(string) sio.IO[int] {
		return sio.Fail[int](boom)
	}

	_, err := sio.Run(sio.Bracket(sio.Pure("res"), release, use))
	if !errors.Is(err, boom) {
		t.Errorf("Bracket failure = %v, want boom re-raised", err)
	}
	if !released {
		t.Error("release did not run after use failed")
	}
}

func TestBracketReleasesOnPanicInUse(t *testing.T) {
	released := false
	release := func(string) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			released = true
			return struct{}{}, nil
		})
	}
	use := func(string) sio.IO[int] {
		return sio.Delay(func() (int, error) {
			panic("use blew up")
		})
	}

	_, err := sio.Run(sio.Bracket(sio.Pure("res"), release, use))
	var pe *sio.PanicError
	if !errors.As(err, &pe) {
		t.Errorf("Bracket panic = %v, want *PanicError re-raised", err)
	}
	if !released {
		t.Error("release did not run after use panicked")
	}
}

func TestBracketAcquireFailureSkipsUse(t *testing.T) {
	boom := errors.New("no resource")
	usedOrReleased := false
	release := func(string) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			usedOrReleased = true
			return struct{}{}, nil
		})
	}
	use := func(string) sio.IO[int] {
		return sio.Delay(func() (int, error) {
			usedOrReleased = true
			return 0, nil
		})
	}

	_, err := sio.Run(sio.Bracket(sio.Fail[string](boom), release, use))
	if !errors.Is(err, boom) {
		t.Errorf("acquire failure = %v, want boom", err)
	}
	if usedOrReleased {
		t.Error("use or release ran although acquire failed")
	}
}

func TestOnErrorRunsCleanupAndReRaises(t *testing.T) {
	boom := errors.New("boom")
	var cleaned error
	comp := sio.OnError(sio.Fail[int](boom), func(err error) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			cleaned = err
			return struct{}{}, nil
		})
	})

	_, err := sio.Run(comp)
	if !errors.Is(err, boom) {
		t.Errorf("OnError = %v, want boom re-raised", err)
	}
	if !errors.Is(cleaned, boom) {
		t.Errorf("cleanup saw %v, want boom", cleaned)
	}
}

func TestOnErrorSkipsCleanupOnSuccess(t *testing.T) {
	cleaned := false
	comp := sio.OnError(sio.Pure(42), func(error) sio.IO[struct{}] {
		return sio.Delay(func() (struct{}, error) {
			cleaned = true
			return struct{}{}, nil
		})
	})

	if got := sio.MustRun(comp); got != 42 {
		t.Errorf("OnError success = %v, want 42", got)
	}
	if cleaned {
		t.Error("cleanup ran although the body succeeded")
	}
}

func TestNestedBracketReleaseOrder(t *testing.T) {
	var log []string
	mk := func(name string) (sio.IO[string], func(string) sio.IO[struct{}]) {
		acquire := sio.Delay(func() (string, error) {
			log = append(log, "acquire "+name)
			return name, nil
		})
		release := func(r string) sio.IO[struct{}] {
			return sio.Delay(func() (struct{}, error) {
				log = append(log, "release "+r)
				return struct{}{}, nil
			})
		}
		return acquire, release
	}

	outerAcq, outerRel := mk("outer")
	innerAcq, innerRel := mk("inner")
	comp := sio.Bracket(outerAcq, outerRel, func(string) sio.IO[int] {
		return sio.Bracket(innerAcq, innerRel, func(string) sio.IO[int] {
			return sio.Pure(1)
		})
	})

	sio.MustRun(comp)
	want := []string{"acquire outer", "acquire inner", "release inner", "release outer"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}
