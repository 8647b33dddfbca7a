// Package leaktest provides goroutine leak checks for tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleInterval = 10 * time.Millisecond
	settleTimeout  = time.Second
)

// GoroutineChecker records the goroutine count at creation and compares
// against it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if, after goroutines are given up to a second to exit,
// more than tolerance extra goroutines remain
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before + tolerance)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until the goroutine count drops to target or the timeout
// passes, returning the last count seen
func settle(target int) int {
	deadline := time.Now().Add(settleTimeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(settleInterval)
	}
}
