// Package leaktest detects goroutines left running by workers, pools and timers under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleInterval = 10 * time.Millisecond
	// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
	DefaultSettleTimeout = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline taken at construction
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultSettleTimeout,
		t:       t,
	}
}

// WithTimeout overrides how long Check waits before reporting a leak
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check fails the test if more than tolerance goroutines outlive the baseline.
// Goroutines get until the timeout to exit, since stopped timers and pool workers unwind asynchronously.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	after, ok := waitForCount(limit, g.timeout)
	if !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func waitForCount(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= limit {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(settleInterval)
	}
}
