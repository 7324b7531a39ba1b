package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

type manyTimesOptions struct {
	timeout   time.Duration
	minRounds int
}

type ManyTimesOption func(o *manyTimesOptions)

func StopAfter(timeout time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.timeout = timeout
	}
}

func MinRounds(n int) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.minRounds = n
	}
}

// TestManyTimes repeats test until timeout passes, but at least min rounds.
// Cleanups registered by test run after every round.
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	o := manyTimesOptions{
		timeout:   time.Second,
		minRounds: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	start := time.Now()
	for round := 1; ; round++ {
		runTest(t, test)

		if t.Failed() || (round >= o.minRounds && time.Since(start) > o.timeout) {
			return
		}
	}
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
